// Package mistral is the remote extraction adapter: one synchronous
// chat/completions call that asks a hosted model to return the booking
// fields as JSON. It performs no retries and no partial recovery; every
// failure is a typed error and the caller decides whether to fall back.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripdeck/internal/common"
	"tripdeck/internal/extract"
)

// ExtractDraft implements extract.TextExtractor. The filename hint is
// ignored; the remote contract is text-only.
func (c *Client) ExtractDraft(ctx context.Context, text, _ string) (extract.Draft, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return extract.Draft{}, common.ErrCredentialMissing
	}

	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("mistral.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt()},
			{"role": "user", "content": buildUserPrompt(text)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("mistral.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.Draft{}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content json.RawMessage `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("mistral.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return extract.Draft{}, common.WrapError(common.ErrRemoteResponse, err.Error())
	}
	if len(cc.Choices) == 0 {
		c.log.Error("mistral.extract.no_choices", "req_id", rid, "raw", string(raw))
		return extract.Draft{}, common.WrapError(common.ErrRemoteResponse, "no choices in response")
	}

	fields, err := decodeContent(cc.Choices[0].Message.Content)
	if err != nil {
		c.log.Error("mistral.extract.content_error", "req_id", rid, "error", err)
		return extract.Draft{}, err
	}

	schemaDoc, _ := json.Marshal(fields)
	if err := extract.ValidateJSONAgainstSchema(extract.BuildDraftJSONSchema(), schemaDoc); err != nil {
		c.log.Error("mistral.extract.schema_validation_failed", "req_id", rid, "error", err)
		return extract.Draft{}, common.WrapError(common.ErrRemoteResponse, err.Error())
	}

	out := extract.DraftFromMap(fields)
	c.log.Info("mistral.extract.ok",
		"req_id", rid,
		"type", out.Type,
		"title", out.Title,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// decodeContent parses the message content as a JSON object, handling the
// case where the model returned a JSON-encoded string that needs a second
// parse pass.
func decodeContent(content json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, common.WrapError(common.ErrRemoteResponse, "empty message content")
	}

	// content is usually a JSON string holding the object.
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, common.WrapError(common.ErrRemoteResponse, err.Error())
		}
		trimmed = bytes.TrimSpace([]byte(s))
	}

	var m map[string]any
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, common.WrapError(common.ErrRemoteResponse, err.Error())
	}

	// Double-encoded: the string itself held another JSON string.
	if len(m) == 0 {
		return nil, common.WrapError(common.ErrRemoteResponse, "content is not a JSON object")
	}
	return m, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.WrapError(common.ErrRemoteRequest, err.Error())
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("mistral response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.WrapError(common.ErrRemoteRequest,
			fmt.Sprintf("status %d: %s", resp.StatusCode, buf.String()))
	}
	return buf.Bytes(), nil
}
