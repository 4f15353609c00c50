package output

import (
	"fmt"
	"html"

	"github.com/Mystique1337/bible-explainer/model"
)

const (
	AudioFilename = "bible_explanation.mp3"
	audioMIME     = "audio/mp3"
)

// DataURI embeds the audio so the page needs no second request.
func DataURI(audio model.AudioBuffer) string {
	return "data:" + audioMIME + ";base64," + audio.Base64()
}

// DownloadLink is an anchor that saves the audio as AudioFilename.
func DownloadLink(audio model.AudioBuffer, filename string) string {
	if filename == "" {
		filename = AudioFilename
	}
	return fmt.Sprintf(`<a href="%s" download="%s">Download Explanation Audio</a>`,
		DataURI(audio), html.EscapeString(filename))
}
