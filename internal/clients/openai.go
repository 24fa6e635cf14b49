package clients

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const completionRequestTimeout = 60 * time.Second

// OpenAIClient is the completion gateway: exactly one request/response
// exchange per call, no retry, no streaming.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient builds a gateway from the environment. OPENAI_BASE_URL
// redirects requests to a local endpoint such as LMStudio.
func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("[OpenAIClient] missing OPENAI_API_KEY in environment")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: completionRequestTimeout}),
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{client: openai.NewClient(opts...)}, nil
}

// Complete sends one user message to the given model and returns the primary
// text payload of the reply. An empty choice list counts as a failure.
func (c *OpenAIClient) Complete(ctx context.Context, model, prompt string, temperature float64) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			}),
			Model:       openai.F(openai.ChatModel(model)),
			Temperature: openai.Float(temperature),
		})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	// An empty body is the decoder's business, not a transport failure.
	return chatCompletion.Choices[0].Message.Content, nil
}
