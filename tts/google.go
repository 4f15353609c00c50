package tts

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Mystique1337/bible-explainer/model"
)

const (
	DefaultGoogleURL = "https://translate.google.com/translate_tts"
	DefaultLanguage  = "en"

	// the public endpoint rejects longer inputs
	maxPieceLen = 100
)

// GoogleClient speaks text through the Google Translate TTS endpoint, the
// same service gTTS uses.
type GoogleClient struct {
	Endpoint    string
	Lang        string
	Parallelism int
	HTTPClient  *http.Client

	limiter *rate.Limiter
}

func NewGoogleClient(lang string, httpClient *http.Client) *GoogleClient {
	if lang == "" {
		lang = DefaultLanguage
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GoogleClient{
		Endpoint:    DefaultGoogleURL,
		Lang:        lang,
		Parallelism: 4,
		HTTPClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Limit(8), 4),
	}
}

// Synthesize returns the MP3 for text. Long text is requested in pieces and
// the MP3 segments are joined in order.
func (g *GoogleClient) Synthesize(ctx context.Context, text string) (model.AudioBuffer, error) {
	pieces := splitText(text, maxPieceLen)
	if len(pieces) == 0 {
		return nil, ErrEmptyText
	}

	parts := make([][]byte, len(pieces))
	eg, ctx := errgroup.WithContext(ctx)
	if g.Parallelism > 0 {
		eg.SetLimit(g.Parallelism)
	}
	for i, piece := range pieces {
		eg.Go(func() error {
			if g.limiter != nil {
				if err := g.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			b, err := g.fetchPiece(ctx, piece, i, len(pieces))
			if err != nil {
				return errors.WithMessagef(err, "piece %d/%d", i+1, len(pieces))
			}
			parts[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "google tts")
	}
	return bytes.Join(parts, nil), nil
}

func (g *GoogleClient) fetchPiece(ctx context.Context, piece string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", piece)
	q.Set("tl", g.Lang)
	q.Set("client", "tw-ob")
	q.Set("ttsspeed", "1")
	q.Set("total", strconv.Itoa(total))
	q.Set("idx", strconv.Itoa(idx))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(piece)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "http://translate.google.com/")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("bad status: %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read audio")
	}
	if len(b) == 0 {
		return nil, errors.New("empty audio segment")
	}
	return b, nil
}

// splitText breaks text into pieces of at most limit runes, cutting on
// whitespace and only splitting inside a word when the word alone is too long.
func splitText(text string, limit int) []string {
	var pieces []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > limit {
			flush()
			r := []rune(word)
			pieces = append(pieces, string(r[:limit]))
			word = string(r[limit:])
		}
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > limit {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	flush()
	return pieces
}
