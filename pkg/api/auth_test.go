package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(headers map[string]string) *echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestExtractAccount(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "no headers",
			headers:  nil,
			expected: "",
		},
		{
			name:     "forwarded user",
			headers:  map[string]string{"X-Forwarded-User": "alice"},
			expected: "alice",
		},
		{
			name:     "forwarded email fallback",
			headers:  map[string]string{"X-Forwarded-Email": "alice@example.com"},
			expected: "alice@example.com",
		},
		{
			name:     "remote user fallback",
			headers:  map[string]string{"X-Remote-User": "alice"},
			expected: "alice",
		},
		{
			name: "forwarded user wins over email",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "bob@example.com",
			},
			expected: "alice",
		},
		{
			name: "forwarded email wins over remote user",
			headers: map[string]string{
				"X-Forwarded-Email": "alice@example.com",
				"X-Remote-User":     "bob",
			},
			expected: "alice@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(tt.headers)
			assert.Equal(t, tt.expected, extractAccount(c))
		})
	}
}

func TestRequireAccount(t *testing.T) {
	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		c := newTestContext(nil)
		handler := requireAccount()(func(c *echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		})

		err := handler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("stores the account for handlers", func(t *testing.T) {
		c := newTestContext(map[string]string{"X-Forwarded-User": "alice"})
		called := false
		handler := requireAccount()(func(c *echo.Context) error {
			called = true
			assert.Equal(t, "alice", accountID(c))
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
	})
}
