package inventory

import "testing"

func strPtr(s string) *string { return &s }

func TestMatches(t *testing.T) {
	knife := Item{
		Name:       "Karambit | Doppler",
		MarketName: "Karambit | Doppler (Factory New)",
		Type:       strPtr("Knife"),
		Exterior:   strPtr("Karambit | Doppler (Factory New)"),
		Tradable:   true,
		Marketable: true,
	}
	token := Item{
		Name:       "Operation Token",
		MarketName: "Operation Token",
		Tradable:   false,
		Marketable: false,
	}

	tests := []struct {
		name  string
		item  Item
		query string
		want  bool
	}{
		{"substring on name", knife, "karambit", true},
		{"substring on type", knife, "knife", true},
		{"substring on exterior", knife, "factory new", true},
		{"case insensitive", knife, "DOPPLER", true},
		{"no match", knife, "awp", false},
		{"nil type and exterior skipped", token, "knife", false},
		{"literal tradeable", knife, "tradeable", true},
		{"literal tradeable negative", token, "tradeable", false},
		{"literal marketable", knife, "marketable", true},
		{"literal no trade", token, "no trade", true},
		{"literal no trade negative", knife, "no trade", false},
		{"literal no market", token, "no market", true},
		{"literal no market negative", knife, "no market", false},
		{"empty query matches", token, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.item, tt.query); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.item.Name, tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterNoMarketLiteral(t *testing.T) {
	items := []Item{
		{Name: "souvenir package", Marketable: false},
		{Name: "sticker", Marketable: true},
	}

	got := Filter(items, "no market")
	if len(got) != 1 || got[0].Name != "souvenir package" {
		t.Fatalf("Filter(no market) = %v, want only the non-marketable item", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	items := []Item{
		{Name: "AK-47 | Redline"},
		{Name: "AK-47 | Slate"},
		{Name: "M4A4 | Howl"},
	}

	got := Filter(items, "ak-47")
	if len(got) != 2 || got[0].Name != "AK-47 | Redline" || got[1].Name != "AK-47 | Slate" {
		t.Fatalf("Filter(ak-47) = %v, want the two AKs in order", got)
	}
}
