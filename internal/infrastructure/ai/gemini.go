// Package ai talks to the hosted language model behind the chat feature.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/portalkit/portalkit/internal/domain/chat"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

const (
	generativeLanguageScope = "https://www.googleapis.com/auth/generative-language"
	maxRawReplyLength       = 800
	unconfiguredReplyPrefix = "(AI provider not configured) You said: "
)

var _ chat.Provider = (*GeminiClient)(nil)

type GeminiConfig struct {
	BaseURL      string
	Model        string
	APIKey       string
	UseGoogleADC bool
	Timeout      time.Duration
	RetryCount   int
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the generateContent endpoint, authenticating with an
// API key or with Google application default credentials. With neither it
// echoes the prompt.
type GeminiClient struct {
	http        *resty.Client
	model       string
	apiKey      string
	tokenSource oauth2.TokenSource
	logger      logger.Interface
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log logger.Interface) (*GeminiClient, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	g := &GeminiClient{
		http:   client,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: log,
	}

	if cfg.APIKey == "" && cfg.UseGoogleADC {
		ts, err := google.DefaultTokenSource(ctx, generativeLanguageScope)
		if err != nil {
			return nil, fmt.Errorf("failed to load application default credentials: %w", err)
		}
		g.tokenSource = ts
	}

	return g, nil
}

// Configured reports whether replies come from the model.
func (g *GeminiClient) Configured() bool {
	return g.apiKey != "" || g.tokenSource != nil
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return unconfiguredReplyPrefix + prompt, nil
	}

	req := g.http.R().
		SetContext(ctx).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})

	if g.apiKey != "" {
		req.SetQueryParam("key", g.apiKey)
	} else {
		token, err := g.tokenSource.Token()
		if err != nil {
			g.logger.Errorw("failed to obtain access token", "error", err)
			return "", fmt.Errorf("%w: %v", chat.ErrProviderFailed, err)
		}
		req.SetAuthToken(token.AccessToken)
	}

	resp, err := req.Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		g.logger.Errorw("ai request failed", "model", g.model, "error", err)
		return "", fmt.Errorf("%w: %v", chat.ErrProviderFailed, err)
	}
	if resp.IsError() {
		g.logger.Errorw("ai provider returned error", "model", g.model, "status", resp.StatusCode())
		return "", fmt.Errorf("%w: status %d", chat.ErrProviderFailed, resp.StatusCode())
	}

	return extractReply(resp.Body()), nil
}

// extractReply returns the first candidate's text, or a truncated copy of
// the raw body when the response has another shape.
func extractReply(body []byte) string {
	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err == nil &&
		len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		return parsed.Candidates[0].Content.Parts[0].Text
	}

	raw := string(body)
	if len(raw) > maxRawReplyLength {
		raw = raw[:maxRawReplyLength]
	}
	return raw
}
