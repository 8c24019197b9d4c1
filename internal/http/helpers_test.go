package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/label-service/internal/domain/dto"
)

// doJSON sends a request with an optional JSON body through router.
func doJSON(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into T.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NotEmpty(t, envelope.RequestID)

	var data T
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	return data
}

// decodeError unmarshals an error envelope.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// newTestRouter builds the full router with rate limiting and idempotency
// stopped at test end.
func newTestRouter(t *testing.T, routes Routes, health *HealthHandler, cfg RouterConfig) *gin.Engine {
	t.Helper()

	if health == nil {
		health = NewHealthHandler()
	}
	router := NewRouter(routes, health, cfg)
	t.Cleanup(router.Close)
	return router.Engine
}
