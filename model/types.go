package model

import "encoding/base64"

// Verse is the text returned by the verse lookup service for one reference.
type Verse struct {
	Reference   string
	Text        string
	Translation string
}

// AudioBuffer holds MP3 encoded speech for a single request.
type AudioBuffer []byte

// Base64 returns the buffer encoded for embedding in a data URI.
func (a AudioBuffer) Base64() string {
	return base64.StdEncoding.EncodeToString(a)
}
