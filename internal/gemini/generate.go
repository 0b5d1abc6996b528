package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// jsonMimeType constrains the model to emit a JSON document.
const jsonMimeType = "application/json"

// inlineData carries base64 content directly in the request.
type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// fileData references a previously uploaded file.
type fileData struct {
	MimeType string `json:"mime_type"`
	FileURI  string `json:"file_uri"`
}

// part is one element of a content's parts array. Exactly one field is set.
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
	FileData   *fileData   `json:"file_data,omitempty"`
}

// Attachment is the document half of a generation request: either the raw
// bytes embedded inline or a reference to an uploaded file.
type Attachment struct {
	part part
}

// InlineAttachment embeds data directly in the request body as base64.
func InlineAttachment(mimeType string, data []byte) Attachment {
	return Attachment{part: part{InlineData: &inlineData{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}}
}

// FileAttachment references an uploaded file by URI.
func FileAttachment(mimeType, uri string) Attachment {
	return Attachment{part: part{FileData: &fileData{
		MimeType: mimeType,
		FileURI:  uri,
	}}}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature        float64         `json:"temperature"`
	ResponseMimeType   string          `json:"responseMimeType"`
	ResponseJSONSchema json.RawMessage `json:"responseJsonSchema"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// GenerateJSON asks model to answer prompt about the attached document,
// constrained to schema, and returns the JSON text of the first candidate.
// The document part precedes the prompt part, which tends to improve
// grounding on long PDFs.
func (c *Client) GenerateJSON(ctx context.Context, model, prompt string, att Attachment, schema json.RawMessage, temperature float64) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{att.part, {Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:        temperature,
			ResponseMimeType:   jsonMimeType,
			ResponseJSONSchema: schema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, model, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation request failed: %w", httpError(resp))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: generation response contained no candidates", ErrProtocol)
	}

	raw := json.RawMessage(strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text))
	if !json.Valid(raw) {
		return nil, fmt.Errorf("model returned invalid JSON: %s", truncate(string(raw), errBodyLimit))
	}
	return raw, nil
}

// truncate bounds s for inclusion in an error message.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
