package tts

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/Mystique1337/bible-explainer/model"
)

const (
	EngineGoogle     = "google"
	EngineElevenLabs = "elevenlabs"
)

// ErrEmptyText is returned when there is nothing to speak.
var ErrEmptyText = errors.New("no text to synthesize")

// Synthesizer turns text into a complete MP3 buffer.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (model.AudioBuffer, error)
}

// Config selects the speech engine.
type Config struct {
	Engine string
	Lang   string

	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	ElevenLabsModelID string

	HTTPClient *http.Client
}

func New(cfg Config) (Synthesizer, error) {
	switch cfg.Engine {
	case EngineGoogle, "":
		return NewGoogleClient(cfg.Lang, cfg.HTTPClient), nil
	case EngineElevenLabs:
		c, err := NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, cfg.ElevenLabsModelID, cfg.HTTPClient)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, errors.Errorf("unknown tts engine %q", cfg.Engine)
	}
}
