// Package modelrunner talks to any OpenAI-compatible chat completions endpoint,
// such as the Vertex AI OpenAPI endpoint or a local llama.cpp server.
//
// The client returns the raw response body: classifying the payload is left
// to the response parser so every provider goes through the same rules.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const chatCompletionsPath = "/chat/completions"

// Client is a thin client for OpenAI-compatible chat completions APIs.
type Client struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	http        *http.Client
}

// NewClient creates a new client. A nil tokenSource sends unauthenticated requests.
func NewClient(baseURL string, tokenSource oauth2.TokenSource, httpClient *http.Client) Client {
	return Client{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		http:        httpClient,
	}
}

// StaticToken returns a token source that always yields the given bearer token.
// An empty key yields nil.
func StaticToken(apiKey string) oauth2.TokenSource {
	if apiKey == "" {
		return nil
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"})
}

// ChatCompletions sends a non-streaming request and returns the raw JSON body.
func (c Client) ChatCompletions(ctx context.Context, req ChatRequest) ([]byte, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	httpReq, err := c.newPostRequest(ctx, chatCompletionsPath, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	if !gjson.ValidBytes(respBody) {
		return nil, errors.New("invalid response body: not JSON")
	}

	return respBody, nil
}

func (c Client) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("fetch access token: %w", err)
		}
		token.SetAuthHeader(req)
	}
	return req, nil
}
