package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Mystique1337/bible-explainer/llm"
	"github.com/Mystique1337/bible-explainer/model"
	"github.com/Mystique1337/bible-explainer/verse"
)

// Request is what the user submitted.
type Request struct {
	Reference string
	APIKey    string
	Model     string
}

// ProgressFunc is told about each stage as it starts.
type ProgressFunc func(Stage)

// Orchestrator runs verse lookup, explanation and speech synthesis in order.
// The first failure ends the run; nothing is retried or remembered between
// runs.
type Orchestrator struct {
	fetcher     VerseFetcher
	explainer   ExplanationProvider
	synthesizer SpeechSynthesizer
}

func NewOrchestrator(f VerseFetcher, e ExplanationProvider, s SpeechSynthesizer) *Orchestrator {
	return &Orchestrator{
		fetcher:     f,
		explainer:   e,
		synthesizer: s,
	}
}

// Provider exposes the explanation backend so the presenter can ask for the
// inputs it needs.
func (o *Orchestrator) Provider() ExplanationProvider { return o.explainer }

func (o *Orchestrator) Run(ctx context.Context, req Request) Result {
	return o.RunWithProgress(ctx, req, nil)
}

func (o *Orchestrator) RunWithProgress(ctx context.Context, req Request, progress ProgressFunc) Result {
	res := Result{
		ID:        uuid.NewString(),
		Reference: strings.TrimSpace(req.Reference),
		Stage:     StageAwaitingInput,
	}
	enter := func(s Stage) {
		res.Stage = s
		if progress != nil {
			progress(s)
		}
	}
	fail := func(kind ErrorKind, err error) Result {
		res.Kind = kind
		res.Err = err
		log.Printf("❌ [%s] %s failed (%s): %v", res.ID, res.Stage, kind, err)
		return res
	}

	// 1. input
	enter(StageAwaitingInput)
	if err := o.checkInput(res.Reference, req); err != nil {
		return fail(KindMissingInput, err)
	}

	// 2. verse
	enter(StageFetching)
	log.Printf("📖 [%s] Fetching verse %q", res.ID, res.Reference)
	v, err := guard(func() (model.Verse, error) {
		return o.fetcher.Fetch(ctx, res.Reference)
	})
	if err != nil {
		var te *verse.TransportError
		switch {
		case errors.Is(err, verse.ErrNotFound):
			return fail(KindVerseNotFound, err)
		case errors.As(err, &te):
			return fail(KindVerseFetchTransport, err)
		default:
			return fail(KindVerseFetchTransport, errors.Wrap(err, "fetch verse"))
		}
	}
	res.Verse = v

	// 3. explanation
	enter(StageExplaining)
	log.Printf("[%s] Generating explanation with %s", res.ID, o.explainer.Name())
	explanation, err := guard(func() (string, error) {
		return o.explainer.Explain(ctx, res.Verse.Text, llm.Params{APIKey: req.APIKey, Model: req.Model})
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			return fail(KindExplanationUnavailable, err)
		}
		return fail(KindExplanationUpstream, err)
	}
	res.Explanation = explanation

	// 4. audio
	enter(StageSynthesizing)
	log.Printf("[%s] Creating audio for %d characters", res.ID, len(explanation))
	audio, err := guard(func() (model.AudioBuffer, error) {
		return o.synthesizer.Synthesize(ctx, explanation)
	})
	if err != nil {
		return fail(KindAudioSynthesis, err)
	}
	if len(audio) == 0 {
		return fail(KindAudioSynthesis, errors.New("synthesizer returned no audio"))
	}
	res.Audio = audio

	enter(StageDone)
	log.Printf("✅ [%s] Done: %d bytes of audio", res.ID, len(audio))
	return res
}

func (o *Orchestrator) checkInput(reference string, req Request) error {
	if reference == "" {
		return ErrMissingReference
	}
	if o.explainer.NeedsCredential() && strings.TrimSpace(req.APIKey) == "" {
		return ErrMissingCredential
	}
	models := o.explainer.Models()
	if len(models) == 0 {
		return nil
	}
	if req.Model == "" {
		return ErrMissingModel
	}
	for _, m := range models {
		if m == req.Model {
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownModel, "%q", req.Model)
}

// guard runs one stage, turning a panic into an error so a misbehaving
// backend cannot take the request handler down.
func guard[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
