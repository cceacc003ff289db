package generation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
)

func TestBudgetTracker_RejectWhenExceeded(t *testing.T) {
	bt := NewBudgetTracker("test", 100, 0, BudgetActionReject, zap.NewNop())
	bt.Record(100)

	if err := bt.Check(context.Background()); !errors.Is(err, domain.ErrLLMQuotaExceeded) {
		t.Fatalf("expected ErrLLMQuotaExceeded, got %v", err)
	}
}

func TestBudgetTracker_WarnWhenExceeded(t *testing.T) {
	bt := NewBudgetTracker("test", 100, 0, BudgetActionWarn, zap.NewNop())
	bt.Record(200)

	if err := bt.Check(context.Background()); err != nil {
		t.Fatalf("expected nil error for warn action, got %v", err)
	}
}

func TestBudgetTracker_MonthlyReject(t *testing.T) {
	bt := NewBudgetTracker("test", 0, 500, BudgetActionReject, zap.NewNop())
	bt.Record(500)

	if err := bt.Check(context.Background()); !errors.Is(err, domain.ErrLLMQuotaExceeded) {
		t.Fatalf("expected ErrLLMQuotaExceeded for monthly limit, got %v", err)
	}
}

func TestBudgetTracker_Remaining(t *testing.T) {
	tests := []struct {
		name        string
		daily       int64
		monthly     int64
		record      int64
		wantDaily   int64
		wantMonthly int64
	}{
		{"limited", 1000, 10000, 300, 700, 9700},
		{"unlimited", 0, 0, 300, -1, -1},
		{"overspent clamps to zero", 100, 0, 250, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt := NewBudgetTracker("test", tt.daily, tt.monthly, BudgetActionWarn, zap.NewNop())
			bt.Record(tt.record)

			if got := bt.RemainingDaily(); got != tt.wantDaily {
				t.Errorf("RemainingDaily() = %d, want %d", got, tt.wantDaily)
			}
			if got := bt.RemainingMonthly(); got != tt.wantMonthly {
				t.Errorf("RemainingMonthly() = %d, want %d", got, tt.wantMonthly)
			}
		})
	}
}

func TestBudgetTracker_DayRollover(t *testing.T) {
	bt := NewBudgetTracker("test", 100, 1000, BudgetActionReject, zap.NewNop())
	day := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	bt.now = func() time.Time { return day }
	bt.daily.start = truncateToDay(day)
	bt.monthly.start = truncateToMonth(day)

	bt.Record(100)
	if err := bt.Check(context.Background()); err == nil {
		t.Fatal("expected rejection before rollover")
	}

	day = day.Add(2 * time.Hour)
	if err := bt.Check(context.Background()); err != nil {
		t.Fatalf("expected daily counter reset, got %v", err)
	}
	if got := bt.MonthlyUsed(); got != 100 {
		t.Errorf("MonthlyUsed() = %d, want 100", got)
	}
}

// --- Mock BudgetStore ---

type mockBudgetStore struct {
	mu     sync.Mutex
	data   map[string]int64
	getErr error
	incErr error
}

func newMockBudgetStore() *mockBudgetStore {
	return &mockBudgetStore{data: make(map[string]int64)}
}

func (m *mockBudgetStore) IncrBy(_ context.Context, key string, val int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.incErr != nil {
		return m.incErr
	}
	m.data[key] += val
	return nil
}

func (m *mockBudgetStore) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.data[key], nil
}

// --- Persistence tests ---

func TestBudgetTracker_WithStore_LoadsValues(t *testing.T) {
	store := newMockBudgetStore()
	bt := NewBudgetTracker("prov", 1000, 10000, BudgetActionReject, zap.NewNop())
	now := bt.now()
	store.data[bt.key(&bt.daily, now)] = 300
	store.data[bt.key(&bt.monthly, now)] = 5000

	bt.WithStore(context.Background(), store)

	if bt.DailyUsed() != 300 {
		t.Errorf("expected daily_used=300, got %d", bt.DailyUsed())
	}
	if bt.MonthlyUsed() != 5000 {
		t.Errorf("expected monthly_used=5000, got %d", bt.MonthlyUsed())
	}
}

func TestBudgetTracker_WithStore_LoadErrorKeepsZero(t *testing.T) {
	store := newMockBudgetStore()
	store.getErr = errors.New("connection refused")

	bt := NewBudgetTracker("prov", 1000, 0, BudgetActionReject, zap.NewNop()).
		WithStore(context.Background(), store)

	if bt.DailyUsed() != 0 {
		t.Errorf("expected daily_used=0, got %d", bt.DailyUsed())
	}
}

func TestBudgetTracker_RecordPersists(t *testing.T) {
	store := newMockBudgetStore()
	bt := NewBudgetTracker("prov", 0, 0, BudgetActionWarn, zap.NewNop()).
		WithStore(context.Background(), store)

	bt.Record(42)
	bt.Record(8)

	now := bt.now()
	if got := store.data[bt.key(&bt.daily, now)]; got != 50 {
		t.Errorf("daily key = %d, want 50", got)
	}
	if got := store.data[bt.key(&bt.monthly, now)]; got != 50 {
		t.Errorf("monthly key = %d, want 50", got)
	}
}

func TestBudgetTracker_RecordStoreErrorKeepsMemory(t *testing.T) {
	store := newMockBudgetStore()
	store.incErr = errors.New("readonly replica")
	bt := NewBudgetTracker("prov", 100, 0, BudgetActionReject, zap.NewNop()).
		WithStore(context.Background(), store)

	bt.Record(100)

	if err := bt.Check(context.Background()); !errors.Is(err, domain.ErrLLMQuotaExceeded) {
		t.Fatalf("expected in-memory rejection, got %v", err)
	}
}

func TestBudgetTracker_KeyFormat(t *testing.T) {
	bt := NewBudgetTracker("ollama", 0, 0, BudgetActionWarn, zap.NewNop())
	at := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	if got, want := bt.key(&bt.daily, at), "storefront:llm_budget:ollama:daily:2026-01-05"; got != want {
		t.Errorf("daily key = %q, want %q", got, want)
	}
	if got, want := bt.key(&bt.monthly, at), "storefront:llm_budget:ollama:monthly:2026-01"; got != want {
		t.Errorf("monthly key = %q, want %q", got, want)
	}
}
