package storefront

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_NoGenerator(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no language model configured")
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"nil generator", []Option{WithGenerator(nil)}},
		{"openai without model", []Option{WithOpenAI("sk-test", "", "")}},
		{"unknown match mode", []Option{WithOllama("", ""), WithMatchMode("any")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(context.Background(), tt.opts...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithOllama("http://ollama:11434", "mistral").apply(cfg)
	if cfg.provider != "ollama" || cfg.baseURL != "http://ollama:11434" || cfg.model != "mistral" {
		t.Errorf("ollama cfg = %+v", cfg)
	}

	cfg2 := &clientConfig{}
	WithOpenAI("sk-test", "", "gpt-4o-mini").apply(cfg2)
	if cfg2.provider != "openai" || cfg2.apiKey != "sk-test" || cfg2.model != "gpt-4o-mini" {
		t.Errorf("openai cfg = %+v", cfg2)
	}

	cfg3 := &clientConfig{}
	WithCatalogPath("shop.db").apply(cfg3)
	WithMatchMode(MatchIntersect).apply(cfg3)
	WithStopwords("a", "the").apply(cfg3)
	WithLLMTimeout(5 * time.Second).apply(cfg3)
	WithTokenBudget(1000, 20000, true).apply(cfg3)
	WithRedisCache("localhost:6379", "pass", time.Hour).apply(cfg3)
	if cfg3.catalogPath != "shop.db" || cfg3.matchMode != MatchIntersect || len(cfg3.stopwords) != 2 {
		t.Errorf("cfg = %+v", cfg3)
	}
	if cfg3.timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg3.timeout)
	}
	if cfg3.dailyTokens != 1000 || cfg3.monthlyTokens != 20000 || !cfg3.rejectOnLimit {
		t.Errorf("budget = %d/%d/%v", cfg3.dailyTokens, cfg3.monthlyTokens, cfg3.rejectOnLimit)
	}
	if len(cfg3.cacheAddrs) != 1 || cfg3.cachePassword != "pass" || cfg3.cacheTTL != time.Hour {
		t.Errorf("cache = %v/%q/%v", cfg3.cacheAddrs, cfg3.cachePassword, cfg3.cacheTTL)
	}

	cfg4 := &clientConfig{}
	logger := slog.Default()
	WithLogger(logger).apply(cfg4)
	if cfg4.logger != logger {
		t.Error("expected logger to be set")
	}

	cfg5 := &clientConfig{}
	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg5)
	if cfg5.metricsReg != reg {
		t.Error("expected metricsReg to be set")
	}
}

func TestClient_Close_NilResources(t *testing.T) {
	c := &Client{}
	c.Close()
}

func TestGeneratorAdapter(t *testing.T) {
	mock := &mockGenerator{
		fn: func(_ context.Context, prompt string) (Completion, error) {
			return Completion{Text: "ok: " + prompt, PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5}, nil
		},
	}

	adapter := &generatorAdapter{inner: mock}
	res, err := adapter.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "ok: hi" || res.TotalTokens != 5 {
		t.Errorf("res = %+v", res)
	}
}

func TestGeneratorAdapter_Error(t *testing.T) {
	mock := &mockGenerator{
		fn: func(context.Context, string) (Completion, error) {
			return Completion{}, errors.New("provider down")
		},
	}

	adapter := &generatorAdapter{inner: mock}
	if _, err := adapter.Generate(context.Background(), "hi"); err == nil {
		t.Fatal("expected error from adapter")
	}
}

func TestGeneratorAdapter_HealthCheck(t *testing.T) {
	down := errors.New("down")
	adapter := &generatorAdapter{inner: &mockGenerator{healthy: down}}
	if err := adapter.HealthCheck(context.Background()); !errors.Is(err, down) {
		t.Errorf("err = %v, want %v", err, down)
	}
}

func TestClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	var prompts []string
	gen := &mockGenerator{
		fn: func(_ context.Context, prompt string) (Completion, error) {
			prompts = append(prompts, prompt)
			return Completion{Text: "Take the MacBook Pro M2.", TotalTokens: 120}, nil
		},
	}

	c, err := New(ctx, WithGenerator(gen), WithTokenBudget(1000, 0, true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	for _, p := range []Product{
		{Name: "MacBook Pro M2", Price: 1299.99, Category: "Laptops"},
		{Name: "Dell XPS 15", Price: 1599.99, Category: "Laptops"},
		{Name: "iPhone 15 Pro", Price: 999.99, Category: "Smartphones"},
	} {
		if _, err := c.Products().Add(ctx, p); err != nil {
			t.Fatalf("Add(%s): %v", p.Name, err)
		}
	}

	rec, err := c.Recommend(ctx, "alice", "I need a laptop under $1500")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.Degraded || rec.Response != "Take the MacBook Pro M2." {
		t.Errorf("rec = %+v", rec)
	}
	if len(prompts) != 1 || !strings.Contains(prompts[0], "MacBook Pro M2") {
		t.Errorf("prompts = %q", prompts)
	}

	history, err := c.History(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Message != "I need a laptop under $1500" {
		t.Errorf("history = %+v", history)
	}

	u := c.Usage(ctx, PeriodDay)
	if u.TokensUsed != 120 || u.TokensLimit != 1000 || u.TokensRemaining != 880 {
		t.Errorf("usage = %+v", u)
	}

	h := c.Health(ctx)
	if h.Status != "ok" || h.Checks["catalog"] != "ok" || h.Checks["llm"] != "ok" {
		t.Errorf("health = %+v", h)
	}
	if _, ok := h.Checks["cache"]; ok {
		t.Error("cache check reported without a cache")
	}

	ok, err := c.Products().Delete(ctx, rec.Preview.Matches[0].Product.ID)
	if err != nil || !ok {
		t.Errorf("Delete = %v, %v", ok, err)
	}
}

func TestClient_EndToEnd_ProviderFailure(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{
		fn: func(context.Context, string) (Completion, error) {
			return Completion{}, errors.New("model offline")
		},
	}
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()

	c, err := New(ctx,
		WithGenerator(gen),
		WithPrometheus(reg),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	rec, err := c.Recommend(ctx, "", "laptop")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !rec.Degraded || rec.Response == "" {
		t.Errorf("rec = %+v", rec)
	}

	ops := c.obs.metrics.operations
	if got := testutil.ToFloat64(ops.WithLabelValues("recommend", "degraded")); got != 1 {
		t.Errorf("recommend/degraded = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("recommend", "ok")); got != 0 {
		t.Errorf("recommend/ok = %v, want 0", got)
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "storefront call degraded") {
		t.Errorf("expected a degraded warning, logs = %q", logs.String())
	}
}

func TestObserver_NilSafe(t *testing.T) {
	var obs *observer
	obs.observe("test", time.Now(), statusOK, nil)
	obs.observe("test", time.Now(), statusError, errors.New("err"))
	obs.observeRecommend(time.Now(), Recommendation{Degraded: true}, nil)
}

func TestRecommendStatus(t *testing.T) {
	tests := []struct {
		name string
		rec  Recommendation
		err  error
		want status
	}{
		{"answered", Recommendation{Response: "Take the Pixel."}, nil, statusOK},
		{"apology", Recommendation{Response: "sorry", Degraded: true}, nil, statusDegraded},
		{"catalog down", Recommendation{}, errors.New("catalog"), statusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recommendStatus(tt.rec, tt.err); got != tt.want {
				t.Errorf("recommendStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHealthStatusOutcome(t *testing.T) {
	tests := []struct {
		in   string
		want status
	}{
		{"ok", statusOK},
		{"degraded", statusDegraded},
		{"error", statusError},
		{"", statusError},
	}
	for _, tt := range tests {
		if got := healthStatus(HealthStatus{Status: tt.in}); got != tt.want {
			t.Errorf("healthStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observeRecommend(time.Now().Add(-10*time.Millisecond),
		Recommendation{Preview: Preview{Matches: make([]Match, 3)}}, nil)
	obs.observeRecommend(time.Now(), Recommendation{Degraded: true}, nil)
	obs.observeRecommend(time.Now(), Recommendation{}, errors.New("fail"))

	ops := obs.metrics.operations
	for _, st := range []string{"ok", "degraded", "error"} {
		if got := testutil.ToFloat64(ops.WithLabelValues("recommend", st)); got != 1 {
			t.Errorf("recommend/%s = %v, want 1", st, got)
		}
	}
	if got := testutil.CollectAndCount(obs.metrics.matches); got != 1 {
		t.Errorf("matches series = %d, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "storefront_sdk_recommendation_matches" {
			h := f.GetMetric()[0].GetHistogram()
			if h.GetSampleCount() != 2 || h.GetSampleSum() != 3 {
				t.Errorf("matches count=%d sum=%v, want 2 and 3", h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("first newObserver: %v", err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second newObserver: %v", err)
	}

	first.observe("usage", time.Now(), statusOK, nil)
	second.observe("usage", time.Now(), statusOK, nil)
	if got := testutil.ToFloat64(first.metrics.operations.WithLabelValues("usage", "ok")); got != 2 {
		t.Errorf("shared counter = %v, want 2", got)
	}
}

func TestObserver_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	obs, err := newObserver(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("preview", time.Now(), statusOK, nil)
	obs.observe("health", time.Now(), statusDegraded, nil)
	obs.observe("products.add", time.Now(), statusError, errors.New("duplicate"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d: %q", len(lines), buf.String())
	}
	want := []string{"level=DEBUG", "level=WARN", "level=WARN"}
	for i, w := range want {
		if !strings.Contains(lines[i], w) {
			t.Errorf("line %d = %q, want %s", i, lines[i], w)
		}
	}
	if !strings.Contains(lines[2], "error=duplicate") {
		t.Errorf("error line = %q", lines[2])
	}
}
