package remediation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Bahjat/header-insight-tool/internal/model"
	"github.com/Bahjat/header-insight-tool/internal/platform/errs"
)

const (
	// DefaultEndpoint is Groq's OpenAI-compatible chat completion endpoint.
	DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	// Model is the completion model every request asks for.
	Model = "llama-3.1-8b-instant"

	maxTokens      = 300
	temperature    = 0.2
	requestTimeout = 20 * time.Second

	rawSnippetRunes = 500
	maxResponseBody = 1 << 20
)

// MissingKeyMessage is reported instead of a summary when no API key is configured.
const MissingKeyMessage = "GROQ_API_KEY not set. Add it to .env"

// Client asks the completion service for remediation advice.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient returns a Client that authenticates with apiKey. An empty
// endpoint selects DefaultEndpoint. An empty apiKey is allowed; every
// Summarize call then fails with errs.Unavailable without touching the network.
func NewClient(apiKey, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize returns normalized remediation markdown for the analysis. Every
// failure is an *errs.AppError whose Message is suitable for end users; see
// Describe.
func (c *Client) Summarize(ctx context.Context, analysis model.HeaderAnalysis) (string, error) {
	if c.apiKey == "" {
		return "", &errs.AppError{Kind: errs.Unavailable, Message: MissingKeyMessage}
	}

	payload, err := json.Marshal(chatRequest{
		Model: Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(analysis)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", callError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", callError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", callError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", callError(err)
	}

	var parsed chatResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK {
		msg := ""
		if decodeErr == nil && parsed.Error != nil {
			msg = parsed.Error.Message
		}
		if msg == "" {
			msg = snippet(raw)
		}
		return "", &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: resp.StatusCode,
			Message:        fmt.Sprintf("Groq API error %d: %s", resp.StatusCode, msg),
		}
	}

	if decodeErr != nil || len(parsed.Choices) == 0 {
		return "", &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "No choices in Groq response. Raw: " + snippet(raw),
			Cause:   decodeErr,
		}
	}

	content := parsed.Choices[0].Message.Content
	if content == "" {
		return "", &errs.AppError{Kind: errs.ParsingFailed, Message: "Groq returned empty content in choices."}
	}

	return Normalize(content), nil
}

// Describe turns a Summarize failure into the text shown in place of a summary.
func Describe(err error) string {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return callError(err).Message
}

func callError(err error) *errs.AppError {
	kind := errs.Unreachable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = errs.Timeout
	}
	return &errs.AppError{
		Kind:    kind,
		Message: fmt.Sprintf("Error calling Groq API: %v", err),
		Cause:   err,
	}
}

// snippet returns at most the first 500 characters of body.
func snippet(body []byte) string {
	runes := []rune(string(body))
	if len(runes) > rawSnippetRunes {
		runes = runes[:rawSnippetRunes]
	}
	return string(runes)
}
