package verse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/Mystique1337/bible-explainer/model"
)

const DefaultBaseURL = "https://bible-api.com"

// ErrNotFound is returned when the lookup service answers with anything but 200.
var ErrNotFound = errors.New("verse not found")

// TransportError wraps network and decoding failures talking to the lookup service.
type TransportError struct {
	err error
}

func (e *TransportError) Error() string {
	if e.err == nil {
		return "verse lookup failed"
	}
	return "verse lookup: " + e.err.Error()
}

func (e *TransportError) Unwrap() error { return e.err }

type lookupResponse struct {
	Reference       string `json:"reference"`
	Text            string `json:"text"`
	TranslationName string `json:"translation_name"`
}

// Client fetches verse text from a bible-api.com compatible service.
type Client struct {
	BaseURL     string
	Translation string
	HTTPClient  *http.Client
}

func NewClient(baseURL string, translation string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Translation: translation,
		HTTPClient:  httpClient,
	}
}

// referenceEscaper escapes only what would otherwise break the URL. Book,
// chapter and verse punctuation is left for the service to parse.
var referenceEscaper = strings.NewReplacer("%", "%25", " ", "%20", "?", "%3F", "#", "%23")

// Fetch looks up a reference such as "John 3:16". The reference is passed
// through as typed apart from URL escaping.
func (c *Client) Fetch(ctx context.Context, reference string) (model.Verse, error) {
	endpoint := c.BaseURL + "/" + referenceEscaper.Replace(reference)
	if c.Translation != "" {
		endpoint += "?translation=" + url.QueryEscape(c.Translation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Verse{}, &TransportError{err: errors.Wrap(err, "build request")}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return model.Verse{}, &TransportError{err: errors.Wrap(err, "request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Verse{}, errors.Wrapf(ErrNotFound, "status %s", resp.Status)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Verse{}, &TransportError{err: errors.Wrap(err, "decode response")}
	}
	if body.Text == "" {
		return model.Verse{}, ErrNotFound
	}

	return model.Verse{
		Reference:   body.Reference,
		Text:        body.Text,
		Translation: body.TranslationName,
	}, nil
}
