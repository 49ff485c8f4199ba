package config

import "os"

// GraphConfig carries the Facebook Graph API credentials and endpoint
// settings a publisher needs. Components receive it at construction so
// tests never have to touch the process environment.
type GraphConfig struct {
	AppID      string
	AppSecret  string
	PageID     string
	PageToken  string
	UserToken  string
	APIVersion string
	BaseURL    string
}

// OpenAIConfig configures the comment composer's LLM backend. When no
// OpenAI key is present the OpenRouter key and base URL are used instead.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// GraphFromEnv builds a GraphConfig from the environment. The legacy
// FACEBOOK_ID / FACEBOOK_TOKEN names are honored as fallbacks.
func GraphFromEnv() GraphConfig {
	return GraphConfig{
		AppID:     os.Getenv("FB_APP_ID"),
		AppSecret: os.Getenv("FB_APP_SECRET"),
		PageID:    firstEnv("FB_PAGE_ID", "FACEBOOK_ID"),
		PageToken: firstEnv("FB_PAGE_TOKEN", "FACEBOOK_TOKEN"),
		UserToken: os.Getenv("FB_USER_TOKEN"),
	}
}

// OpenAIFromEnv builds an OpenAIConfig from the environment.
func OpenAIFromEnv() OpenAIConfig {
	cfg := OpenAIConfig{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  os.Getenv("LLM_MODEL"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
		cfg.BaseURL = os.Getenv("OPENROUTER_BASE_URL")
		if cfg.BaseURL == "" && cfg.APIKey != "" {
			cfg.BaseURL = "https://openrouter.ai/api/v1"
		}
	}
	return cfg
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
