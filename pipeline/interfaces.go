package pipeline

//go:generate mockgen -destination=../mocks/pipeline.go -package=mocks github.com/Mystique1337/bible-explainer/pipeline VerseFetcher,ExplanationProvider,SpeechSynthesizer

import (
	"context"

	"github.com/Mystique1337/bible-explainer/llm"
	"github.com/Mystique1337/bible-explainer/model"
)

// VerseFetcher looks up verse text for a reference.
type VerseFetcher interface {
	Fetch(ctx context.Context, reference string) (model.Verse, error)
}

// ExplanationProvider is satisfied by every llm backend.
type ExplanationProvider interface {
	Name() string
	NeedsCredential() bool
	Models() []string
	Explain(ctx context.Context, verse string, p llm.Params) (string, error)
}

// SpeechSynthesizer is satisfied by every tts engine.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (model.AudioBuffer, error)
}
