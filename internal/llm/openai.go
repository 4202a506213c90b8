// Package llm answers free-form game questions through the OpenAI chat API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/suzi-bot/suzi/internal/apierr"
)

const systemPrompt = "Você é a Suzi, uma assistente de mesa de RPG e jogos. " +
	"Responda em português, de forma curta e direta, sempre sobre jogos."

// Client wraps the OpenAI API client.
type Client struct {
	client      *openai.Client
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// New creates a client. If timeout <= 0 a default of 30 seconds is used.
func New(apiKey string, maxTokens int, temperature float64, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:      openai.NewClient(apiKey),
		maxTokens:   maxTokens,
		temperature: float32(temperature),
		timeout:     timeout,
	}
}

// Answer returns a short generated answer to a game question. Failures are
// classified into the closed reason set.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: question},
			},
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		},
	)
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", apierr.New(apierr.ReasonUnknown, fmt.Errorf("no response from OpenAI"))
	}
	return resp.Choices[0].Message.Content, nil
}

func classify(err error) error {
	var reqErr *openai.APIError
	if errors.As(err, &reqErr) {
		return apierr.New(apierr.FromStatus(reqErr.HTTPStatusCode), err)
	}
	return apierr.New(apierr.FromTransport(err), err)
}
