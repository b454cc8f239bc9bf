package backend

import (
	"clinicportal-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// Envelope is the single normalized shape all clinic backend responses are
// rewritten into before any service code sees them. Recognized is false when
// the raw payload matched none of the known backend envelope shapes; in that
// case Data preserves the payload verbatim and downstream code must tolerate
// the missing fields.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
	Recognized bool            `json:"-"`
}

// rawEnvelope probes for the backend's legacy shapes: a boolean status flag
// (current format) or a SUCCESS/FAILURE string marker (older format).
type rawEnvelope struct {
	Status  json.RawMessage `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

// NormalizeEnvelope is an explicit tagged-union parser: boolean shape first,
// then the string-enum shape, then pass-through. It never guesses beyond
// those three cases.
func NormalizeEnvelope(body []byte) *Envelope {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil || raw.Status == nil {
		return passthroughEnvelope(body)
	}

	var boolStatus bool
	if err := json.Unmarshal(raw.Status, &boolStatus); err == nil {
		return &Envelope{
			Success:    boolStatus,
			Message:    raw.Message,
			Data:       raw.Data,
			Errors:     raw.Errors,
			Recognized: true,
		}
	}

	var stringStatus string
	if err := json.Unmarshal(raw.Status, &stringStatus); err == nil {
		switch stringStatus {
		case constvars.EnvelopeStatusSuccess:
			return &Envelope{
				Success:    true,
				Message:    raw.Message,
				Data:       raw.Data,
				Recognized: true,
			}
		case constvars.EnvelopeStatusFailure:
			return &Envelope{
				Success:    false,
				Message:    raw.Message,
				Errors:     raw.Errors,
				Recognized: true,
			}
		}
	}

	return passthroughEnvelope(body)
}

func passthroughEnvelope(body []byte) *Envelope {
	return &Envelope{Data: body}
}
