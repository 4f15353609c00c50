package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/Mystique1337/bible-explainer/model"
)

const (
	DefaultElevenLabsURL     = "https://api.elevenlabs.io"
	DefaultElevenLabsVoiceID = "JBFqnCBsd6RMkjVDRZzb"
	DefaultElevenLabsModelID = "eleven_multilingual_v2"
)

type ElevenLabsClient struct {
	BaseURL    string
	APIKey     string
	VoiceId    string
	ModelId    string
	HTTPClient *http.Client
}

func NewElevenLabsClient(apiKey string, voiceId string, modelId string, httpClient *http.Client) (*ElevenLabsClient, error) {
	if apiKey == "" {
		return nil, errors.New("elevenlabs api key is required")
	}
	if voiceId == "" {
		voiceId = DefaultElevenLabsVoiceID
	}
	if modelId == "" {
		modelId = DefaultElevenLabsModelID
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ElevenLabsClient{
		BaseURL:    DefaultElevenLabsURL,
		APIKey:     apiKey,
		VoiceId:    voiceId,
		ModelId:    modelId,
		HTTPClient: httpClient,
	}, nil
}

// Synthesize requests MP3 output and buffers the whole response.
func (client *ElevenLabsClient) Synthesize(ctx context.Context, text string) (model.AudioBuffer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	base, err := url.Parse(fmt.Sprintf("%s/v1/text-to-speech/%s", strings.TrimRight(client.BaseURL, "/"), client.VoiceId))
	if err != nil {
		return nil, errors.Wrap(err, "parse elevenlabs url")
	}
	q := base.Query()
	q.Set("output_format", "mp3_44100_128")
	base.RawQuery = q.Encode()

	payload := map[string]interface{}{
		"text":     text,
		"model_id": client.ModelId,
		"voice_settings": map[string]float64{
			"stability":        0.75,
			"similarity_boost": 0.7,
		},
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base.String(), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("xi-api-key", client.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "elevenlabs request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("elevenlabs: bad status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read audio")
	}
	if len(audio) == 0 {
		return nil, errors.New("elevenlabs returned no audio")
	}
	return audio, nil
}
