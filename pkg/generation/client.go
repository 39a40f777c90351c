// Package generation talks to the hosted text-completion endpoint that
// writes the marketing copy
package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrUnavailable wraps every failure of the remote endpoint.
var ErrUnavailable = errors.New("generation service unavailable")

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
)

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Debug       bool
}

type Client struct {
	client      openai.Client
	model       string
	temperature float64
}

// New builds a client for any OpenAI-compatible endpoint. Extra options are
// appended after the ones derived from cfg.
func New(cfg Config, opts ...option.RequestOption) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	options := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
	}
	if cfg.APIKey != "" {
		options = append(options, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.Debug {
		options = append(options, option.WithDebugLog(nil))
	}
	options = append(options, opts...)

	return &Client{
		client:      openai.NewClient(options...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt and waits for the complete reply. The reply is
// streamed and accumulated; a broken stream yields an error and no text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	stream := c.client.Chat.Completions.NewStreaming(ctx, NewParams(c.model, c.temperature, prompt))
	defer stream.Close()

	acc := openai.ChatCompletionAccumulator{}
	for stream.Next() {
		acc.AddChunk(stream.Current())
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(acc.Choices) == 0 {
		return "", fmt.Errorf("%w: reply has no choices", ErrUnavailable)
	}
	return acc.Choices[0].Message.Content, nil
}
