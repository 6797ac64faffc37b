package loginwithname

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ratelimiter "dodoensemble/internal/core/domain/rate_limiter"
	"dodoensemble/internal/core/domain/user"
	service "dodoensemble/internal/core/services/log_in_with_name"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{
		ID:        user.ID(1),
		Name:      "Dodo",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	result.Token = user.SessionToken("test-token")
	return result, nil
}

func TestSuccessfulLogIn(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"name": "Dodo"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, "Dodo", stub.input.Name)

	var result Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "test-token", result.Token)
	assert.Equal(t, "Dodo", result.User.Name)
}

func TestInvalidRequests(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{id: "empty body", body: ``, expectedStatus: http.StatusBadRequest},
		{id: "no name", body: `{}`, expectedStatus: http.StatusBadRequest},
		{id: "blank name", body: `{"name": ""}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "unknown name",
			body:           `{"name": "Stranger"}`,
			serviceErr:     user.ErrInvalidName,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"name": "Dodo"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(testcase.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, testcase.expectedStatus, rec.Code)
		})
	}
}
