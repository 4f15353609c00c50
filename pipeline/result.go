package pipeline

import (
	"github.com/pkg/errors"

	"github.com/Mystique1337/bible-explainer/llm"
	"github.com/Mystique1337/bible-explainer/model"
)

// Stage is a state of one pipeline run.
type Stage int

const (
	StageAwaitingInput Stage = iota
	StageFetching
	StageExplaining
	StageSynthesizing
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageAwaitingInput:
		return "awaiting_input"
	case StageFetching:
		return "fetching"
	case StageExplaining:
		return "explaining"
	case StageSynthesizing:
		return "synthesizing"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrorKind classifies why a run failed.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMissingInput
	KindVerseNotFound
	KindVerseFetchTransport
	KindExplanationUnavailable
	KindExplanationUpstream
	KindAudioSynthesis
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingInput:
		return "missing_input"
	case KindVerseNotFound:
		return "verse_not_found"
	case KindVerseFetchTransport:
		return "verse_fetch_transport_error"
	case KindExplanationUnavailable:
		return "explanation_unavailable"
	case KindExplanationUpstream:
		return "explanation_upstream_error"
	case KindAudioSynthesis:
		return "audio_synthesis_error"
	default:
		return "unknown"
	}
}

var (
	ErrMissingReference  = errors.New("verse reference is required")
	ErrMissingCredential = errors.New("api key is required")
	ErrMissingModel      = errors.New("model selection is required")
	ErrUnknownModel      = errors.New("selected model is not offered")
)

// Result is the outcome of one run. Stage is StageDone on success, otherwise
// the stage that failed, with Kind and Err describing the failure.
type Result struct {
	ID          string
	Reference   string
	Stage       Stage
	Kind        ErrorKind
	Err         error
	Verse       model.Verse
	Explanation string
	Audio       model.AudioBuffer
}

func (r Result) OK() bool { return r.Stage == StageDone && r.Kind == KindNone }

// Message is the text shown to the user for a failed run.
func (r Result) Message() string {
	switch r.Kind {
	case KindNone:
		return ""
	case KindMissingInput:
		switch {
		case errors.Is(r.Err, ErrMissingCredential):
			return "Please enter your API key to continue."
		case errors.Is(r.Err, ErrMissingModel):
			return "Please choose a model to continue."
		case errors.Is(r.Err, ErrUnknownModel):
			return "The selected model is not available. Please choose another one."
		default:
			return "Please enter a Bible verse reference above to begin."
		}
	case KindVerseNotFound:
		return "Sorry, the verse could not be found. Please check your input."
	case KindVerseFetchTransport:
		return "There was an error retrieving the verse."
	case KindExplanationUnavailable:
		return "The explanation model is not available right now. Please try again later."
	case KindExplanationUpstream:
		var ue *llm.UpstreamError
		if errors.As(r.Err, &ue) {
			return "Error generating explanation: " + ue.Detail
		}
		if r.Err != nil {
			return "Error generating explanation: " + r.Err.Error()
		}
		return "Error generating explanation."
	case KindAudioSynthesis:
		return "Sorry, the explanation could not be converted to audio."
	default:
		return "Something went wrong."
	}
}
