package output

import (
	"log"

	"github.com/Mystique1337/bible-explainer/pipeline"
)

// JSONWriter is the part of a websocket connection the progress output uses.
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// Event is one message on the progress stream.
type Event struct {
	Event  string   `json:"event"` // "stage" or "result"
	Stage  string   `json:"stage,omitempty"`
	Label  string   `json:"label,omitempty"`
	Result *Payload `json:"result,omitempty"`
}

// Payload is the JSON rendering of a pipeline result.
type Payload struct {
	ID          string `json:"id"`
	OK          bool   `json:"ok"`
	Stage       string `json:"stage"`
	Error       string `json:"error,omitempty"`
	Message     string `json:"message,omitempty"`
	Reference   string `json:"reference"`
	Verse       string `json:"verse,omitempty"`
	Translation string `json:"translation,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	AudioBase64 string `json:"audio_base64,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

func NewPayload(res pipeline.Result) *Payload {
	p := &Payload{
		ID:          res.ID,
		OK:          res.OK(),
		Stage:       res.Stage.String(),
		Message:     res.Message(),
		Reference:   res.Reference,
		Verse:       res.Verse.Text,
		Translation: res.Verse.Translation,
		Explanation: res.Explanation,
	}
	if !res.OK() {
		p.Error = res.Kind.String()
	}
	if len(res.Audio) > 0 {
		p.AudioBase64 = res.Audio.Base64()
		p.Filename = AudioFilename
	}
	return p
}

// StageLabel is the spinner text shown while a stage runs.
func StageLabel(s pipeline.Stage) string {
	switch s {
	case pipeline.StageFetching:
		return "Fetching verse..."
	case pipeline.StageExplaining:
		return "Generating explanation..."
	case pipeline.StageSynthesizing:
		return "Creating audio..."
	case pipeline.StageDone:
		return "Done."
	default:
		return ""
	}
}

// ProgressOutput streams stage changes and the final result to a client.
type ProgressOutput struct {
	ws JSONWriter
}

func NewProgressOutput(ws JSONWriter) *ProgressOutput {
	return &ProgressOutput{ws: ws}
}

func (o *ProgressOutput) SendStage(s pipeline.Stage) {
	if s == pipeline.StageAwaitingInput {
		return
	}
	msg := Event{Event: "stage", Stage: s.String(), Label: StageLabel(s)}
	if err := o.ws.WriteJSON(msg); err != nil {
		log.Printf("ProgressOutput stage write error: %v", err)
	}
}

func (o *ProgressOutput) SendResult(res pipeline.Result) error {
	return o.ws.WriteJSON(Event{Event: "result", Result: NewPayload(res)})
}
