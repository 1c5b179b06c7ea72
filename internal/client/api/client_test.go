package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchdesk/stitchdesk/internal/client/token"
	"github.com/stitchdesk/stitchdesk/internal/common"
	"github.com/stitchdesk/stitchdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *token.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := token.NewMemStore()
	c := New(Options{
		BaseURL:      srv.URL,
		AssetBaseURL: "https://cdn.example.com/storage",
		Timeout:      5 * time.Second,
	}, tokens, testLogger())
	return c, tokens
}

func TestClient_InjectsBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, tokens.Set("tok-123"))
	require.NoError(t, c.Get(context.Background(), "/clients", nil, nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoAuthHeaderWhenTokenAbsent(t *testing.T) {
	var hadHeader bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.Get(context.Background(), "/login", nil, nil))
	assert.False(t, hadHeader)
}

func TestClient_SetsRequestID(t *testing.T) {
	var first, second string
	calls := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls == 0 {
			first = r.Header.Get(common.RequestIDHeaderName)
		} else {
			second = r.Header.Get(common.RequestIDHeaderName)
		}
		calls++
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.Get(context.Background(), "/clients", nil, nil))
	require.NoError(t, c.Get(context.Background(), "/clients", nil, nil))

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestClient_401ClearsToken(t *testing.T) {
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	require.NoError(t, tokens.Set("stale"))

	err := c.Get(context.Background(), "/orders", nil, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, ok := tokens.Get()
	assert.False(t, ok, "token must be cleared after a 401")
}

func TestClient_404IsNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := c.Get(context.Background(), "/clients/99", nil, nil)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestClient_422KeepsFieldErrors(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The given data was invalid.","errors":{"email":["The email field is required."],"name":["The name field is required."]}}`))
	}))

	err := c.Post(context.Background(), "/clients", map[string]string{}, nil)
	require.ErrorIs(t, err, common.ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "The given data was invalid.", ve.Message)
	assert.Equal(t, []string{"The email field is required."}, ve.Fields["email"])
	assert.Equal(t, []string{"The name field is required."}, ve.Fields["name"])
}

func TestClient_ServerErrorCarriesMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))

	err := c.Get(context.Background(), "/clients", nil, nil)
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusInternalServerError, ae.Status)
	assert.Equal(t, "boom", ae.Message)
}

func TestClient_ServerErrorFallbackMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := c.Get(context.Background(), "/clients", nil, nil)
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), ae.Message)
}

func TestClient_TimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := New(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, token.NewMemStore(), testLogger())

	err := c.Get(context.Background(), "/clients", nil, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestClient_ConnectionRefusedIsUnavailable(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, token.NewMemStore(), testLogger())

	err := c.Get(context.Background(), "/clients", nil, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestClient_QueryParamsSent(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{}`))
	}))

	q := url.Values{}
	q.Set("page", "2")
	q.Set("per_page", "10")
	q.Set("search", "nike")
	require.NoError(t, c.Get(context.Background(), "/clients", q, nil))

	assert.Equal(t, "2", got.Get("page"))
	assert.Equal(t, "10", got.Get("per_page"))
	assert.Equal(t, "nike", got.Get("search"))
}

func TestClient_DecodesResponseBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":7,"name":"Acme Apparel"}}`))
	}))

	var out struct {
		Data struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, c.Get(context.Background(), "/clients/7", nil, &out))
	assert.Equal(t, 7, out.Data.ID)
	assert.Equal(t, "Acme Apparel", out.Data.Name)
}

func TestClient_MalformedBodyFailsLoudly(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":`))
	}))

	var out map[string]any
	err := c.Get(context.Background(), "/clients", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_ExtraHookRuns(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	var seen int
	c.OnResponse(func(resp *http.Response) { seen = resp.StatusCode })

	_ = c.Get(context.Background(), "/clients", nil, nil)
	assert.Equal(t, http.StatusTeapot, seen)
}

func TestClient_AssetURL(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, "https://cdn.example.com/storage/logos/a.png", c.AssetURL("/logos/a.png"))
	assert.Equal(t, "https://cdn.example.com/storage/logos/a.png", c.AssetURL("logos/a.png"))
}
