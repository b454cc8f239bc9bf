package backend

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEnvelope_BooleanStatus(t *testing.T) {
	t.Run("true status maps to success", func(t *testing.T) {
		envelope := NormalizeEnvelope([]byte(`{"status":true,"message":"ok","data":{"uuid":"abc"}}`))

		assert.True(t, envelope.Success)
		assert.True(t, envelope.Recognized)
		assert.Equal(t, "ok", envelope.Message)
		assert.JSONEq(t, `{"uuid":"abc"}`, string(envelope.Data))
	})

	t.Run("false status maps to failure with errors", func(t *testing.T) {
		envelope := NormalizeEnvelope([]byte(`{"status":false,"message":"bad input","errors":["mobile is required"]}`))

		assert.False(t, envelope.Success)
		assert.True(t, envelope.Recognized)
		assert.Equal(t, "bad input", envelope.Message)
		assert.Equal(t, []string{"mobile is required"}, envelope.Errors)
	})
}

func TestNormalizeEnvelope_StringStatus(t *testing.T) {
	t.Run("SUCCESS marker", func(t *testing.T) {
		envelope := NormalizeEnvelope([]byte(`{"status":"SUCCESS","message":"done","data":[1,2]}`))

		assert.True(t, envelope.Success)
		assert.True(t, envelope.Recognized)
		assert.Equal(t, "done", envelope.Message)
	})

	t.Run("FAILURE marker", func(t *testing.T) {
		envelope := NormalizeEnvelope([]byte(`{"status":"FAILURE","message":"nope"}`))

		assert.False(t, envelope.Success)
		assert.True(t, envelope.Recognized)
		assert.Equal(t, "nope", envelope.Message)
	})

	t.Run("unknown marker falls through to passthrough", func(t *testing.T) {
		body := []byte(`{"status":"PENDING","message":"later"}`)
		envelope := NormalizeEnvelope(body)

		assert.False(t, envelope.Recognized)
		assert.Equal(t, json.RawMessage(body), envelope.Data)
	})
}

func TestNormalizeEnvelope_Passthrough(t *testing.T) {
	t.Run("body without status field is preserved verbatim", func(t *testing.T) {
		body := []byte(`[{"uuid":"p1"},{"uuid":"p2"}]`)
		envelope := NormalizeEnvelope(body)

		assert.False(t, envelope.Recognized)
		assert.False(t, envelope.Success)
		assert.Equal(t, json.RawMessage(body), envelope.Data)
	})

	t.Run("invalid JSON is preserved verbatim", func(t *testing.T) {
		body := []byte(`not json at all`)
		envelope := NormalizeEnvelope(body)

		assert.False(t, envelope.Recognized)
		assert.Equal(t, json.RawMessage(body), envelope.Data)
	})

	t.Run("numeric status is preserved verbatim", func(t *testing.T) {
		body := []byte(`{"status":200,"message":"weird"}`)
		envelope := NormalizeEnvelope(body)

		assert.False(t, envelope.Recognized)
		assert.Equal(t, json.RawMessage(body), envelope.Data)
	})
}
