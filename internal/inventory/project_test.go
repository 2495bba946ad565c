package inventory

import (
	"testing"

	"github.com/nmoreno/steamvault/internal/steam"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		raw  steam.RawItem
		want Item
	}{
		{
			name: "full item",
			raw: steam.RawItem{
				Name:           "AK-47 | Redline",
				MarketHashName: "AK-47 | Redline (Field-Tested)",
				IconURL:        "abc123",
				Tradable:       1,
				Marketable:     1,
				Type:           "Rifle",
			},
			want: Item{
				Name:       "AK-47 | Redline",
				MarketName: "AK-47 | Redline (Field-Tested)",
				Image:      strPtr("https://steamcommunity-a.akamaihd.net/economy/image/abc123"),
				Tradable:   true,
				Marketable: true,
				Type:       strPtr("Rifle"),
				Exterior:   strPtr("AK-47 | Redline (Field-Tested)"),
			},
		},
		{
			name: "market name falls back to name",
			raw:  steam.RawItem{Name: "Clutch Case"},
			want: Item{Name: "Clutch Case", MarketName: "Clutch Case"},
		},
		{
			name: "missing name uses placeholder",
			raw:  steam.RawItem{Tradable: 1},
			want: Item{Name: "Sin nombre", MarketName: "Sin nombre", Tradable: true},
		},
		{
			name: "no icon means no image",
			raw:  steam.RawItem{Name: "Sticker", Marketable: 1},
			want: Item{Name: "Sticker", MarketName: "Sticker", Marketable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.raw)

			if got.Name != tt.want.Name || got.MarketName != tt.want.MarketName {
				t.Errorf("Project() names = (%q, %q), want (%q, %q)", got.Name, got.MarketName, tt.want.Name, tt.want.MarketName)
			}
			if got.Tradable != tt.want.Tradable || got.Marketable != tt.want.Marketable {
				t.Errorf("Project() flags = (%v, %v), want (%v, %v)", got.Tradable, got.Marketable, tt.want.Tradable, tt.want.Marketable)
			}
			if !eqPtr(got.Image, tt.want.Image) {
				t.Errorf("Project() image = %v, want %v", deref(got.Image), deref(tt.want.Image))
			}
			if !eqPtr(got.Type, tt.want.Type) {
				t.Errorf("Project() type = %v, want %v", deref(got.Type), deref(tt.want.Type))
			}
			if !eqPtr(got.Exterior, tt.want.Exterior) {
				t.Errorf("Project() exterior = %v, want %v", deref(got.Exterior), deref(tt.want.Exterior))
			}
		})
	}
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestProjectAllPreservesOrder(t *testing.T) {
	raw := []steam.RawItem{{Name: "first"}, {Name: "second"}, {Name: "third"}}
	items := ProjectAll(raw)

	if len(items) != 3 {
		t.Fatalf("ProjectAll returned %d items, want 3", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Name != want {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, want)
		}
	}
}
