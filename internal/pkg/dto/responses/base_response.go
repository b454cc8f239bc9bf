package responses

// ResponseDTO is the envelope every portal response is wrapped in. It mirrors
// the normalized shape the portal itself expects from the clinic backend, so
// pages consume a single contract end to end.
type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}
