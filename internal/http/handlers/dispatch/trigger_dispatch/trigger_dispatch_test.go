package triggerdispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	service "dodoensemble/internal/core/services/dispatch_reminders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const SECRET = "test-dispatch-secret"

type stubService struct {
	sent     int
	err      error
	runCount int
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.runCount++
	if s.err != nil {
		return result, s.err
	}
	result.NotificationsSent = s.sent
	return result, nil
}

func TestSuccessfulDispatch(t *testing.T) {
	stub := &stubService{sent: 3}
	handler := New(stub, SECRET)

	req := httptest.NewRequest(http.MethodPost, "/api/send-reminders", nil)
	req.Header.Set(SECRET_HEADER, SECRET)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.runCount)

	var result Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.NotificationsSent)
	assert.Contains(t, result.Message, "3")
}

func TestInvalidSecret(t *testing.T) {
	cases := []struct {
		id     string
		secret string
	}{
		{id: "missing header", secret: ""},
		{id: "wrong secret", secret: "nope"},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{sent: 3}
			handler := New(stub, SECRET)

			req := httptest.NewRequest(http.MethodPost, "/api/send-reminders", nil)
			if testcase.secret != "" {
				req.Header.Set(SECRET_HEADER, testcase.secret)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, 0, stub.runCount)
		})
	}
}

func TestNonPostMethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			stub := &stubService{sent: 1}
			handler := New(stub, SECRET)

			req := httptest.NewRequest(method, "/api/send-reminders", nil)
			req.Header.Set(SECRET_HEADER, SECRET)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, 0, stub.runCount)
		})
	}
}

func TestServiceFailure(t *testing.T) {
	stub := &stubService{err: assert.AnError}
	handler := New(stub, SECRET)

	req := httptest.NewRequest(http.MethodPost, "/api/send-reminders", nil)
	req.Header.Set(SECRET_HEADER, SECRET)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
