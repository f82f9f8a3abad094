package domain

import "testing"

func TestCatalog_PriceFor(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name      string
		kind      Kind
		tier      string
		wantPrice float64
		wantOK    bool
	}{
		{"ticket ignores tier", KindTicket, "Gold", 100, true},
		{"ticket empty tier", KindTicket, "", 100, true},
		{"bronze b", KindTable, "Bronze B", 1050, true},
		{"bronze a", KindTable, "Bronze A", 1100, true},
		{"silver", KindTable, "Silver", 1490, true},
		{"gold", KindTable, "Gold", 2396, true},
		{"platinum b", KindTable, "Platinum B", 3346, true},
		{"platinum a", KindTable, "Platinum A", 4524, true},
		{"unknown tier", KindTable, "Diamond", 0, false},
		{"table with empty tier", KindTable, "", 0, false},
		{"unknown kind", Kind("Booth"), "Gold", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := c.PriceFor(tt.kind, tt.tier)
			if ok != tt.wantOK {
				t.Fatalf("PriceFor(%q, %q) ok = %v, want %v", tt.kind, tt.tier, ok, tt.wantOK)
			}
			if price != tt.wantPrice {
				t.Fatalf("PriceFor(%q, %q) price = %v, want %v", tt.kind, tt.tier, price, tt.wantPrice)
			}
		})
	}
}

func TestNewCatalog_Overrides(t *testing.T) {
	c := NewCatalog(120, map[string]float64{"Gold": 2500, "Diamond": 9999})

	if got := c.TicketPrice(); got != 120 {
		t.Fatalf("ticket price = %v, want 120", got)
	}
	if price, _ := c.PriceFor(KindTable, "Gold"); price != 2500 {
		t.Fatalf("Gold price = %v, want 2500", price)
	}
	// Overrides cannot introduce new tiers.
	if _, ok := c.PriceFor(KindTable, "Diamond"); ok {
		t.Fatal("unexpected Diamond tier")
	}
	// Untouched tiers keep defaults.
	if price, _ := c.PriceFor(KindTable, "Silver"); price != 1490 {
		t.Fatalf("Silver price = %v, want 1490", price)
	}
}
