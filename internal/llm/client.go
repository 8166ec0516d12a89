// Package llm wraps the chat model used for free-form farmer conversations
// and for the advisory narrative in generated reports. The provider speaks the
// OpenAI chat API; the base URL selects the actual backend.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/sahilvr03/GIS-AGENT/internal/advisory"
	"github.com/sahilvr03/GIS-AGENT/internal/logger"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

const systemPrompt = `You are FarmBot, a comprehensive agricultural assistant for Pakistani farmers with these enhanced capabilities:

1. Comprehensive Analysis:
   - NDVI-based crop health monitoring
   - Soil moisture analysis using NDMI
   - Temperature stress detection
   - Weather-integrated pest risk assessment
   - Multi-temporal analysis for change detection

2. Farmer-Centric Services:
   - Bilingual interface (Urdu/English) - respond in user's preferred language
   - Government scheme information (Kissan Package, Tubewell Subsidy, etc.)
   - Crop-specific recommendations for Pakistani crops (wheat, rice, cotton)
   - Islamic farming ethics integration
   - Irrigation scheduling based on soil moisture and weather

3. Professional Outputs:
   - Actionable insights tailored to Pakistani farming
   - Multi-parameter analysis results
   - Error handling with user-friendly messages

4. Cultural Relevance:
   - Respectful communication (Janab, Bhai, etc.)
   - Islamic phrases and farming ethics
   - Local crop varieties (wheat, rice, cotton, maize)
   - Pakistani agricultural practices

Key Response Guidelines:
1. For general questions: explain concepts in simple terms and provide Urdu translations for key terms.
2. For government scheme queries: list available schemes in the user's language with eligibility criteria and benefits.

Always maintain a respectful, helpful tone mixing Urdu and English naturally.`

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client handles chat model interactions.
type Client struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// NewClient creates a chat client. An empty API key yields a disabled client;
// callers check Enabled before use.
func NewClient(apiKey, baseURL, model string) *Client {
	c := &Client{
		model: model,
		log:   logger.GetGlobalLogger().WithComponent("llm"),
	}
	if apiKey == "" {
		return c
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	c.client = openai.NewClientWithConfig(cfg)
	return c
}

// Enabled reports whether a backend is configured.
func (c *Client) Enabled() bool {
	return c.client != nil
}

// SystemPrompt returns the assistant instructions sent with every chat.
func (c *Client) SystemPrompt() string {
	return systemPrompt
}

// Chat sends the conversation history plus the new user message and returns
// the assistant reply.
func (c *Client) Chat(ctx context.Context, history []Message, userMessage string) (string, error) {
	if c.client == nil {
		return "", errors.New("chat model not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    c.buildMessages(history, userMessage),
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from chat model")
	}
	return resp.Choices[0].Message.Content, nil
}

// ChatStream streams the assistant reply token by token through onToken and
// returns the full reply once the stream ends.
func (c *Client) ChatStream(ctx context.Context, history []Message, userMessage string, onToken func(string)) (string, error) {
	if c.client == nil {
		return "", errors.New("chat model not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    c.buildMessages(history, userMessage),
		Temperature: 0.4,
		Stream:      true,
	})
	if err != nil {
		return "", fmt.Errorf("chat stream failed: %w", err)
	}
	defer stream.Close()

	var full string
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return full, fmt.Errorf("chat stream interrupted: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		token := resp.Choices[0].Delta.Content
		if token == "" {
			continue
		}
		full += token
		if onToken != nil {
			onToken(token)
		}
	}
	return full, nil
}

func (c *Client) buildMessages(history []Message, userMessage string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})
	return messages
}

// GenerateAdvisory produces a short markdown advisory for an analysis batch,
// used as the narrative section of HTML reports. Recent agromet bulletins are
// embedded in the prompt when supplied. Returns an empty string without error
// when no backend is configured, so report generation works offline.
func (c *Client) GenerateAdvisory(ctx context.Context, batch *models.AnalysisBatch, lang models.Language, bulletins []advisory.Advisory) (string, error) {
	if c.client == nil {
		return "", nil
	}

	prompt := buildAdvisoryPrompt(batch, lang, bulletins)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	c.log.Debugf("requesting advisory for %d points", len(batch.Keys))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   2000,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("advisory generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from chat model")
	}
	return resp.Choices[0].Message.Content, nil
}
