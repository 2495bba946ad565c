package inventory

import "github.com/nmoreno/steamvault/internal/steam"

const (
	// placeholderName is used when the upstream item has no name
	placeholderName = "Sin nombre"

	imageCDNPrefix = "https://steamcommunity-a.akamaihd.net/economy/image/"
)

// Item is the normalized, caller-facing shape of an inventory item.
// Optional fields are pointers so absent values serialize as null.
type Item struct {
	Name       string  `json:"name"`
	MarketName string  `json:"marketName"`
	Image      *string `json:"image"`
	Tradable   bool    `json:"tradable"`
	Marketable bool    `json:"marketable"`
	Type       *string `json:"type"`
	Exterior   *string `json:"exterior"`
}

// Project derives an Item from a raw upstream record. It is pure and
// cannot fail: absent optional fields propagate as nil or fall back to
// the documented defaults.
func Project(raw steam.RawItem) Item {
	name := raw.Name
	if name == "" {
		name = placeholderName
	}

	marketName := raw.MarketHashName
	if marketName == "" {
		marketName = name
	}

	item := Item{
		Name:       name,
		MarketName: marketName,
		Tradable:   raw.Tradable != 0,
		Marketable: raw.Marketable != 0,
	}
	if raw.IconURL != "" {
		url := imageCDNPrefix + raw.IconURL
		item.Image = &url
	}
	if raw.Type != "" {
		t := raw.Type
		item.Type = &t
	}
	if raw.MarketHashName != "" {
		ext := raw.MarketHashName
		item.Exterior = &ext
	}
	return item
}

// ProjectAll maps a raw item slice preserving order
func ProjectAll(raw []steam.RawItem) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		items = append(items, Project(r))
	}
	return items
}
