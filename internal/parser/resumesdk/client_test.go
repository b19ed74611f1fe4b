package resumesdk_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/config"
	"resumehub/internal/parser/resumesdk"
)

func newClient(url string) *config.ParserConfig {
	return &config.ParserConfig{
		URL:         url,
		SecretID:    "test-id",
		SecretKey:   "test-key",
		TimeoutSecs: 5,
	}
}

func TestParseSuccess(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": {"profile": {"name": "A"}}}`))
	}))
	defer srv.Close()

	client := resumesdk.NewClient(newClient(srv.URL))
	got, err := client.Parse(context.Background(), "cv.pdf", []byte("binary"))
	require.NoError(t, err)

	result, ok := got["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", result["profile"].(map[string]any)["name"])

	// Request body carries the filename and base64 content.
	assert.Equal(t, "cv.pdf", gotBody["file_name"])
	decoded, err := base64.StdEncoding.DecodeString(gotBody["file_cont"].(string))
	require.NoError(t, err)
	assert.Equal(t, "binary", string(decoded))

	// The Authorization header is a JSON envelope with id, date and signature.
	var auth map[string]string
	require.NoError(t, json.Unmarshal([]byte(gotAuth), &auth))
	assert.Equal(t, "test-id", auth["id"])
	assert.NotEmpty(t, auth["x-date"])
	assert.NotEmpty(t, auth["signature"])
}

func TestParseNon2xxReturnsErrorMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := resumesdk.NewClient(newClient(srv.URL))
	got, err := client.Parse(context.Background(), "cv.pdf", []byte("x"))
	require.NoError(t, err)

	assert.Equal(t, "HTTP 500", got["error"])
	assert.Equal(t, "upstream exploded", got["detail"])
}

func TestParseUndecodableBodyReturnsErrorMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := resumesdk.NewClient(newClient(srv.URL))
	got, err := client.Parse(context.Background(), "cv.pdf", []byte("x"))
	require.NoError(t, err)

	assert.Equal(t, "parse json failed", got["error"])
	assert.Equal(t, "not json at all", got["raw"])
}

func TestParseTransportFaultReturnsError(t *testing.T) {
	client := resumesdk.NewClient(newClient("http://127.0.0.1:1"))
	_, err := client.Parse(context.Background(), "cv.pdf", []byte("x"))
	assert.Error(t, err)
}
