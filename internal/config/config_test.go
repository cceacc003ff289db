package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 3002 || cfg.HTTP.WriteTimeoutSec != 90 {
		t.Errorf("http defaults = %+v", cfg.HTTP)
	}
	if cfg.Catalog.Path != "shopping.db" {
		t.Errorf("catalog.path = %q", cfg.Catalog.Path)
	}
	if cfg.LLM.Provider != ProviderOllama || cfg.LLM.Model != "llama3.2" || cfg.LLM.TimeoutSec != 60 {
		t.Errorf("llm defaults = %+v", cfg.LLM)
	}
	if cfg.Search.MatchMode != "union" || cfg.Static.Dir != "public" {
		t.Errorf("search/static defaults = %+v %+v", cfg.Search, cfg.Static)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"write timeout too short", func(c *Config) { c.HTTP.WriteTimeoutSec = 30 }, "must exceed llm.timeout_sec"},
		{"cache without addrs", func(c *Config) { c.Cache.Enabled = true }, "cache.addrs"},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "bard" }, "llm.provider"},
		{"openai without key", func(c *Config) { c.LLM.Provider = ProviderOpenAI }, "llm.api_key"},
		{"temperature", func(c *Config) { c.LLM.Temperature = 3 }, "llm.temperature"},
		{"budget action", func(c *Config) { c.LLM.Budget.Action = "invalid_action" },
			`llm.budget.action must be "warn" or "reject", got "invalid_action"`},
		{"negative budget", func(c *Config) { c.LLM.Budget.DailyTokens = -1 }, "must not be negative"},
		{"match mode", func(c *Config) { c.Search.MatchMode = "xor" }, "search.match_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ValidBudgetActions(t *testing.T) {
	for _, action := range []string{"", "warn", "reject"} {
		t.Run("action="+action, func(t *testing.T) {
			cfg := validConfig()
			cfg.LLM.Budget = BudgetConfig{DailyTokens: 1000, Action: action}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid action %q: %v", action, err)
			}
		})
	}
}

func TestValidate_OpenAICompatibleWithoutKey(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Provider = ProviderOpenAI
	cfg.LLM.BaseURL = "http://localhost:11434/v1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("base_url without api_key must be accepted: %v", err)
	}
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_MODEL", "mistral")

	cfg, err := Parse([]byte(`
http:
  port: 9000
catalog:
  path: ${STOREFRONT_TEST_DB:-/tmp/shop.db}
llm:
  model: ${STOREFRONT_TEST_MODEL}
  budget:
    daily_tokens: 5000
    action: reject
search:
  match_mode: intersect
  stopwords: [a, the]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.HTTP.Port != 9000 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Catalog.Path != "/tmp/shop.db" {
		t.Errorf("catalog.path = %q", cfg.Catalog.Path)
	}
	if cfg.LLM.Model != "mistral" {
		t.Errorf("llm.model = %q", cfg.LLM.Model)
	}
	if !cfg.LLM.Budget.Enabled() || cfg.LLM.Budget.Action != "reject" {
		t.Errorf("budget = %+v", cfg.LLM.Budget)
	}
	if cfg.Search.MatchMode != "intersect" || len(cfg.Search.Stopwords) != 2 {
		t.Errorf("search = %+v", cfg.Search)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [unclosed")); err == nil {
		t.Error("expected YAML error")
	}
	if _, err := Parse([]byte("llm:\n  provider: bard\n")); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoad_RepoConfigs(t *testing.T) {
	for _, env := range []string{"local", "prod"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", "test-key")
			if _, err := Load(env); err != nil {
				t.Fatalf("Load(%s): %v", env, err)
			}
		})
	}
}
