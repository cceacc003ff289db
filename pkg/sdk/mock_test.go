package storefront

import (
	"context"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/exchange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
	domusage "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/usage"
	chatuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/chat"
	healthuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/health"
	searchuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
)

// --- chatUseCase mock ---

type mockChatUC struct {
	recommendFn func(ctx context.Context, userID, message string) (chatuc.Recommendation, error)
	previewFn   func(ctx context.Context, message string) (searchuc.Interpretation, error)
	historyFn   func(ctx context.Context, userID string, limit int) ([]exchange.Exchange, error)
}

func (m *mockChatUC) Recommend(ctx context.Context, userID, message string) (chatuc.Recommendation, error) {
	return m.recommendFn(ctx, userID, message)
}

func (m *mockChatUC) Preview(ctx context.Context, message string) (searchuc.Interpretation, error) {
	return m.previewFn(ctx, message)
}

func (m *mockChatUC) History(ctx context.Context, userID string, limit int) ([]exchange.Exchange, error) {
	return m.historyFn(ctx, userID, limit)
}

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	listFn   func(ctx context.Context, limit int) ([]product.Product, error)
	createFn func(ctx context.Context, name string, price float64, category, specs, imageURL string) (product.Product, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (m *mockCatalogUC) List(ctx context.Context, limit int) ([]product.Product, error) {
	return m.listFn(ctx, limit)
}

func (m *mockCatalogUC) Create(
	ctx context.Context, name string, price float64, category, specs, imageURL string,
) (product.Product, error) {
	return m.createFn(ctx, name, price, category, specs, imageURL)
}

func (m *mockCatalogUC) Delete(ctx context.Context, id int64) (int64, error) {
	return m.deleteFn(ctx, id)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- usageUseCase mock ---

type mockUsageUC struct {
	report     domusage.Report
	lastPeriod domusage.Period
}

func (m *mockUsageUC) GetReport(_ context.Context, period domusage.Period) domusage.Report {
	m.lastPeriod = period
	return m.report
}

// --- public Generator mock ---

type mockGenerator struct {
	fn      func(ctx context.Context, prompt string) (Completion, error)
	healthy error
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (Completion, error) {
	return m.fn(ctx, prompt)
}

func (m *mockGenerator) HealthCheck(context.Context) error { return m.healthy }

// --- helpers ---

func testClient(chatSvc chatUseCase, catalogSvc catalogUseCase) *Client {
	return &Client{
		chatSvc:    chatSvc,
		catalogSvc: catalogSvc,
	}
}
