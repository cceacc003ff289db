package ranked

import (
	"testing"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierName, "name"},
		{TierCategory, "category"},
		{TierOther, "other"},
		{Tier(0), "other"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestTierOrdering(t *testing.T) {
	if !(TierName < TierCategory && TierCategory < TierOther) {
		t.Fatal("tiers must sort name < category < other")
	}
}

func TestNew(t *testing.T) {
	p := product.Reconstruct(3, "Dell XPS 15", 1599.99, "Laptops", "", "")
	r := New(p, TierCategory)
	if r.Product().ID() != 3 {
		t.Errorf("Product().ID() = %d", r.Product().ID())
	}
	if r.Tier() != TierCategory {
		t.Errorf("Tier() = %v", r.Tier())
	}
}
