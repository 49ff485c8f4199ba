package config

import "testing"

func TestGraphFromEnvPrefersNewNames(t *testing.T) {
	t.Setenv("FB_PAGE_ID", "new-id")
	t.Setenv("FACEBOOK_ID", "legacy-id")
	t.Setenv("FB_PAGE_TOKEN", "new-token")
	t.Setenv("FACEBOOK_TOKEN", "legacy-token")

	cfg := GraphFromEnv()
	if cfg.PageID != "new-id" {
		t.Errorf("PageID=%q, want new-id", cfg.PageID)
	}
	if cfg.PageToken != "new-token" {
		t.Errorf("PageToken=%q, want new-token", cfg.PageToken)
	}
}

func TestGraphFromEnvLegacyFallback(t *testing.T) {
	t.Setenv("FB_PAGE_ID", "")
	t.Setenv("FACEBOOK_ID", "legacy-id")
	t.Setenv("FB_PAGE_TOKEN", "")
	t.Setenv("FACEBOOK_TOKEN", "legacy-token")

	cfg := GraphFromEnv()
	if cfg.PageID != "legacy-id" {
		t.Errorf("PageID=%q, want legacy-id", cfg.PageID)
	}
	if cfg.PageToken != "legacy-token" {
		t.Errorf("PageToken=%q, want legacy-token", cfg.PageToken)
	}
}

func TestOpenAIFromEnvOpenRouterFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "router-key")
	t.Setenv("OPENROUTER_BASE_URL", "")

	cfg := OpenAIFromEnv()
	if cfg.APIKey != "router-key" {
		t.Errorf("APIKey=%q, want router-key", cfg.APIKey)
	}
	if cfg.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("BaseURL=%q, want the OpenRouter default", cfg.BaseURL)
	}
}

func TestOpenAIFromEnvPrefersOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("OPENROUTER_API_KEY", "router-key")

	cfg := OpenAIFromEnv()
	if cfg.APIKey != "oa-key" {
		t.Errorf("APIKey=%q, want oa-key", cfg.APIKey)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL=%q, want empty for the OpenAI default", cfg.BaseURL)
	}
}
