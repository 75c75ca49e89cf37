package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// send performs one request. Transport and context errors are returned as-is;
// a non-2xx status becomes an *APIError after the observers have seen it.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, respBody)
		c.logger.Warn("api error", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		c.observers.notify(apiErr)
		return nil, apiErr
	}
	return respBody, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: unknownErrorMessage}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	apiErr.Errors = env.Errors
	apiErr.Sync = env.Sync
	if len(env.Errors) > 0 && env.Errors[0].Message != "" {
		apiErr.Message = env.Errors[0].Message
	}
	return apiErr
}

// do wraps in (when non-nil) as {"data": in} and returns the decoded envelope.
func (c *Client) do(ctx context.Context, method, path string, in any) (*envelope, error) {
	body, contentType, err := encodeBody(in)
	if err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	respBody, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(respBody)
}

// exec is do for calls without a result; the response body is not inspected.
func (c *Client) exec(ctx context.Context, method, path string, in any) error {
	body, contentType, err := encodeBody(in)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	_, err = c.send(ctx, method, path, body, contentType)
	return err
}

func encodeBody(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "", nil
	}
	b, err := json.Marshal(requestEnvelope{Data: in})
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(b), "application/json", nil
}

func decodeEnvelope(body []byte) (*envelope, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &DecodeError{Err: io.ErrUnexpectedEOF}
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &env, nil
}

func hasData(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// one decodes a single entity; a missing or null data field is an error.
func one[T any](env *envelope) (*T, error) {
	if !hasData(env.Data) {
		return nil, &DecodeError{Err: errMissingData}
	}
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &v, nil
}

// list decodes a sequence; a missing or null data field becomes an empty
// slice, never nil.
func list[T any](env *envelope) ([]T, error) {
	out := []T{}
	if !hasData(env.Data) {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func getOne[T any](ctx context.Context, c *Client, method, path string, in any) (*T, error) {
	env, err := c.do(ctx, method, path, in)
	if err != nil {
		return nil, err
	}
	return one[T](env)
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return list[T](env)
}
