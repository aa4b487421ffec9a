// Package api is the console's request pipeline against the DMA REST backend.
//
// Every call goes through a single path: JSON encoding, bearer-credential
// injection when a session token exists, tolerant JSON decoding of the
// response, and uniform normalization of failures into one human-readable
// message. There are no retries, timeouts or cancellation beyond what the
// caller's context carries: one attempt per call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// TokenSource yields the current session token; "" means unauthenticated.
// The session store satisfies this.
type TokenSource interface {
	Token() string
}

// Feed receives the pipeline's failure entries. The activity log satisfies
// this. Success logging stays with the caller.
type Feed interface {
	Add(message string, payload any)
}

// Client executes requests against one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	feed    Feed
}

// New builds a Client. tokens and feed may not be nil; the http.Client
// carries no timeout, a hung request stays pending until the server answers.
func New(baseURL string, tokens TokenSource, feed Feed) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		feed:    feed,
	}
}

// do executes one request and returns the decoded response payload.
//
// The response body is parsed as JSON regardless of status; a non-JSON body
// yields an absent payload (res.Exists() == false), not an error. A non-2xx
// status is normalized to a message preferring the body's "message" field,
// then "error", then the HTTP status line; that message is appended to the
// feed and returned as a *StatusError.
func (c *Client) do(ctx context.Context, method, path string, body any) (gjson.Result, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var payload gjson.Result
	if gjson.ValidBytes(data) {
		payload = gjson.ParseBytes(data)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errorMessage(payload, resp.Status)
		c.feed.Add(fmt.Sprintf("Error %d: %s", resp.StatusCode, msg), nil)
		return gjson.Result{}, &StatusError{Code: resp.StatusCode, Message: msg}
	}

	return payload, nil
}

// errorMessage picks the surfaced text: body "message", then body "error",
// then the status line.
func errorMessage(payload gjson.Result, statusLine string) string {
	if m := payload.Get("message"); m.Exists() && m.String() != "" {
		return m.String()
	}
	if m := payload.Get("error"); m.Exists() && m.String() != "" {
		return m.String()
	}
	return statusLine
}
