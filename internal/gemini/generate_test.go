package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateServer returns a mock server that replies with a single candidate
// carrying answer as its text, recording the decoded request into captured.
func generateServer(t *testing.T, answer string, captured *generateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-3-pro-preview:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{{Content: content{Parts: []part{{Text: answer}}}}},
		})
	}))
}

func TestGenerateJSONWithFileAttachment(t *testing.T) {
	var captured generateRequest
	server := generateServer(t, `{"pin_count": 48}`, &captured)
	defer server.Close()

	att := FileAttachment("application/pdf", "https://files.example.com/abc123")
	schema := json.RawMessage(`{"type":"object","additionalProperties":true}`)

	raw, err := testClient(server).GenerateJSON(context.Background(), "gemini-3-pro-preview", "List the pins.", att, schema, 0.4)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pin_count": 48}`, string(raw))

	require.Len(t, captured.Contents, 1)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 2)

	require.NotNil(t, parts[0].FileData)
	assert.Equal(t, "https://files.example.com/abc123", parts[0].FileData.FileURI)
	assert.Equal(t, "application/pdf", parts[0].FileData.MimeType)
	assert.Nil(t, parts[0].InlineData)
	assert.Equal(t, "List the pins.", parts[1].Text)

	assert.InDelta(t, 0.4, captured.GenerationConfig.Temperature, 1e-9)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	assert.JSONEq(t, string(schema), string(captured.GenerationConfig.ResponseJSONSchema))
}

func TestGenerateJSONWithInlineAttachment(t *testing.T) {
	var captured generateRequest
	server := generateServer(t, `{}`, &captured)
	defer server.Close()

	data := []byte("%PDF-1.7 fake content")
	att := InlineAttachment("application/pdf", data)

	_, err := testClient(server).GenerateJSON(context.Background(), "gemini-3-pro-preview", "Summarize.", att, json.RawMessage(`{}`), 1.0)
	require.NoError(t, err)

	parts := captured.Contents[0].Parts
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), parts[0].InlineData.Data)
	assert.Equal(t, "application/pdf", parts[0].InlineData.MimeType)
	assert.Nil(t, parts[0].FileData)
}

func TestGenerateJSONTrimsWhitespace(t *testing.T) {
	var captured generateRequest
	server := generateServer(t, "\n  {\"ok\": true}\n", &captured)
	defer server.Close()

	raw, err := testClient(server).GenerateJSON(context.Background(), "gemini-3-pro-preview", "p", FileAttachment("application/pdf", "uri"), json.RawMessage(`{}`), 1.0)
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(raw))
}

func TestGenerateJSONInvalidModelOutput(t *testing.T) {
	var captured generateRequest
	server := generateServer(t, "I cannot answer that.", &captured)
	defer server.Close()

	_, err := testClient(server).GenerateJSON(context.Background(), "gemini-3-pro-preview", "p", FileAttachment("application/pdf", "uri"), json.RawMessage(`{}`), 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestGenerateJSONNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	_, err := testClient(server).GenerateJSON(context.Background(), "gemini-3-pro-preview", "p", FileAttachment("application/pdf", "uri"), json.RawMessage(`{}`), 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerateJSONServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "API key not valid"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := testClient(server).GenerateJSON(context.Background(), "gemini-3-pro-preview", "p", FileAttachment("application/pdf", "uri"), json.RawMessage(`{}`), 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}
