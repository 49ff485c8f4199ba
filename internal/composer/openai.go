package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spacesedan/blogpulse/config"
	"github.com/spacesedan/blogpulse/internal/textutil"
)

const (
	openAIRequestTimeout = 60 * time.Second

	defaultModel    = "gpt-4o-mini"
	defaultMaxWords = 60
	excerptLimit    = 800
)

const systemPrompt = `You are a concise comment-writer. You write short, natural, ` +
	`human-sounding blog comments that show genuine engagement with the content. ` +
	`Output ONLY the comment text. No headings, no markdown, no extra commentary.`

// OpenAIComposer generates comments through an OpenAI-compatible chat
// completions endpoint. An OpenRouter key with its base URL works the same
// way through the config.
type OpenAIComposer struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg config.OpenAIConfig) (*OpenAIComposer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("[Composer] missing API key: set OPENAI_API_KEY or OPENROUTER_API_KEY")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: openAIRequestTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &OpenAIComposer{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Compose asks the model for a 1-2 sentence comment on the article and
// cleans the response into plain ready-to-post text.
func (c *OpenAIComposer) Compose(ctx context.Context, req Request) (string, error) {
	maxWords := req.MaxWords
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}

	chat, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(req, maxWords)),
		}),
		Model:       openai.F(openai.ChatModel(c.model)),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("[Composer] completion request failed: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", errors.New("[Composer] model returned no choices")
	}

	out := CleanResponse(chat.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("[Composer] model returned no comment text")
	}

	slog.Debug("[Composer] Generated comment", slog.Int("length", len(out)))
	return out, nil
}

func buildPrompt(req Request, maxWords int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, natural, human-sounding comment (1-2 sentences, ~30-%d words) for the article at %s.", maxWords, req.URL)
	if len(req.Topics) > 0 {
		fmt.Fprintf(&b, " The comment should reference the following topics: %s.", strings.Join(req.Topics, ", "))
	}
	if req.Excerpt != "" {
		excerpt := req.Excerpt
		if runes := []rune(excerpt); len(runes) > excerptLimit {
			excerpt = string(runes[:excerptLimit]) + "..."
		}
		fmt.Fprintf(&b, " Article excerpt: %s", excerpt)
	}
	b.WriteString("\n\nImportant: Output ONLY the comment text. No headings or extra commentary.")
	return b.String()
}

// CleanResponse normalizes raw model output into plain comment text: code
// fences and wrapping quotes go first, leftover markdown second.
func CleanResponse(raw string) string {
	out := strings.TrimSpace(raw)

	out = strings.TrimPrefix(out, "```text")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	out = strings.TrimSpace(out)

	if len(out) >= 2 && out[0] == '"' && out[len(out)-1] == '"' {
		out = out[1 : len(out)-1]
	}

	return strings.TrimSpace(textutil.StripMarkdown(out))
}
