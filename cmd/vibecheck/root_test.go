package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

	"github.com/casualjim/vibecheck"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var numberPattern = regexp.MustCompile(`the number (-?\d+) is even or odd`)

func parityServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.Equal(t, "/v1/chat/completions", r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		body, err := io.ReadAll(r.Body)
		if !assert.NoError(t, err) {
			return
		}
		prompt := gjson.GetBytes(body, "messages.1.content").String()
		m := numberPattern.FindStringSubmatch(prompt)
		if !assert.Len(t, m, 2) {
			http.Error(w, "no number", http.StatusBadRequest)
			return
		}
		n, _ := strconv.ParseInt(m[1], 10, 64)
		content := `{"isEven": ` + strconv.FormatBool(n%2 == 0) + `, "confidence": 0.8, "reasoning": "it felt right"}`
		if n == 13 {
			content = "thirteen is unlucky, not a parity"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-cli",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   gjson.GetBytes(body, "model").String(),
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Setenv(vibecheck.EnvAPIKey, "")

	t.Run("classifies every argument in order", func(t *testing.T) {
		server := parityServer(t)
		out, err := execute(t, "--api-key", "sk-cli", "--base-url", server.URL+"/v1", "-o", "json", "--", "4", "13", "-9")
		require.NoError(t, err)

		doc := gjson.Parse(out)
		require.True(t, doc.IsArray())
		require.Len(t, doc.Array(), 3)
		assert.Equal(t, int64(4), doc.Get("0.number").Int())
		assert.True(t, doc.Get("0.isEven").Bool())
		assert.Equal(t, "model", doc.Get("0.source").String())
		assert.Equal(t, "fallback", doc.Get("1.source").String())
		assert.False(t, doc.Get("1.isEven").Bool())
		assert.Equal(t, int64(-9), doc.Get("2.number").Int())
	})

	t.Run("rejects arguments that are not integers", func(t *testing.T) {
		_, err := execute(t, "--api-key", "sk-cli", "4.5")
		require.ErrorIs(t, err, vibecheck.ErrInvalidInput)
	})

	t.Run("requires an api key", func(t *testing.T) {
		_, err := execute(t, "4")
		require.ErrorIs(t, err, vibecheck.ErrMissingAPIKey)
	})

	t.Run("rejects a malformed base url", func(t *testing.T) {
		_, err := execute(t, "--api-key", "sk-cli", "--base-url", "http://[::1", "4")
		var cerr *vibecheck.ConfigError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "base_url", cerr.Field)
	})

	t.Run("rejects unknown output formats", func(t *testing.T) {
		_, err := execute(t, "--api-key", "sk-cli", "-o", "yaml", "4")
		require.ErrorContains(t, err, `unknown output format "yaml"`)
	})

	t.Run("rejects unknown log levels", func(t *testing.T) {
		_, err := execute(t, "--log-level", "loud", "4")
		require.ErrorContains(t, err, "invalid log level")
	})

	t.Run("requires at least one number", func(t *testing.T) {
		_, err := execute(t)
		require.Error(t, err)
	})
}
