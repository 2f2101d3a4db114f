//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status code and, for 2xx responses,
// decodes the body into target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if wantStatus >= 200 && wantStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
			"failed to decode response body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and that the error envelope's
// message contains wantMsg (skipped when wantMsg is empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"failed to decode error body: %s", w.Body.String())

	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}
