package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /engines/davinci":
			_, _ = w.Write([]byte(`{"id":"davinci","object":"engine"}`))
		case "POST /engines/ada/completions":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = w.Write([]byte(`{"echo":"` + body["prompt"].(string) + `"}`))
		case "GET /files/f1/content":
			_, _ = w.Write([]byte("a\nb\nc"))
		case "GET /files/f2/content":
			_, _ = w.Write([]byte("x\ny"))
		case "GET /fine-tunes/ft1":
			_, _ = w.Write([]byte(`{"id":"ft1","result_files":[{"id":"f3"}]}`))
		case "GET /fine-tunes/ft-empty":
			_, _ = w.Write([]byte(`{"id":"ft-empty","result_files":[]}`))
		case "GET /files/f3/content":
			_, _ = w.Write([]byte("step,loss"))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("OPENAI_API_KEY", "sk-cli")
	t.Setenv("OPENAI_API_URL", srv.URL)
	return srv
}

func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.httpClient = srv.Client()
	code := a.run(context.Background(), args)
	return stdout.String(), stderr.String(), code
}

func TestEngines_JSON(t *testing.T) {
	srv := newTestServer(t)

	out, _, code := runCLI(t, srv, "engines", "davinci")
	require.Equal(t, 0, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"id": "davinci", "object": "engine"}, got)
}

func TestEngines_YAML(t *testing.T) {
	srv := newTestServer(t)

	out, _, code := runCLI(t, srv, "engines", "davinci", "--output", "yaml")
	require.Equal(t, 0, code)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "davinci", got["id"])
}

func TestCompletions_Params(t *testing.T) {
	srv := newTestServer(t)

	out, _, code := runCLI(t, srv, "completions", "ada", "--params", `{"prompt":"hello"}`)
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"echo": "hello"`)
}

func TestCompletions_BadParams(t *testing.T) {
	srv := newTestServer(t)

	_, errOut, code := runCLI(t, srv, "completions", "ada", "--params", `{not json`)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "parse --params")
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]any
		wantErr string
	}{
		{name: "empty", raw: "  ", want: map[string]any{}},
		{name: "object", raw: `{"n":2}`, want: map[string]any{"n": float64(2)}},
		{name: "null", raw: "null", wantErr: "must be a JSON object"},
		{name: "array", raw: "[1]", wantErr: "parse --params"},
		{name: "string", raw: `"x"`, wantErr: "parse --params"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, map[string]any(got))
		})
	}
}

func TestCompletions_NullParamsNotSent(t *testing.T) {
	srv := newTestServer(t)

	_, errOut, code := runCLI(t, srv, "completions", "ada", "--params", "null")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "must be a JSON object")
}

func TestFilesContent_Concurrent(t *testing.T) {
	srv := newTestServer(t)

	out, _, code := runCLI(t, srv, "files", "content", "f1", "f2")
	require.Equal(t, 0, code)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"c", "y"}, got)
}

func TestFineTunesResults(t *testing.T) {
	srv := newTestServer(t)

	out, _, code := runCLI(t, srv, "finetunes", "results", "ft1")
	require.Equal(t, 0, code)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"step", "loss"}, got)

	_, errOut, code := runCLI(t, srv, "finetunes", "results", "ft-empty")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no result files")
}

func TestAPIErrorPrintsBody(t *testing.T) {
	srv := newTestServer(t)

	out, errOut, code := runCLI(t, srv, "files")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(errOut, "error: API error 401: invalid key"))
	assert.Contains(t, errOut, `"message": "invalid key"`)
}

func TestUnknownOutputFormat(t *testing.T) {
	srv := newTestServer(t)

	_, errOut, code := runCLI(t, srv, "engines", "davinci", "-o", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown output format "xml"`)
}
