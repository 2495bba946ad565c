package steam

// RawItem is an item description exactly as the community inventory
// endpoint returns it. The cache stores these untouched; projection to
// the API shape happens at the edge.
type RawItem struct {
	Name           string `json:"name"`
	MarketHashName string `json:"market_hash_name"`
	IconURL        string `json:"icon_url"`
	Tradable       int    `json:"tradable"`
	Marketable     int    `json:"marketable"`
	Type           string `json:"type"`
}

// InventoryPage is one page of an owner's inventory. NextCursor is the
// last asset id of the page, "" when the upstream did not provide one.
type InventoryPage struct {
	Items      []RawItem `json:"items"`
	NextCursor string    `json:"next_cursor"`
	HasMore    bool      `json:"has_more"`
}

// inventoryResponse is the upstream wire shape
type inventoryResponse struct {
	Descriptions []RawItem `json:"descriptions"`
	LastAssetID  string    `json:"last_assetid"`
	MoreItems    bool      `json:"more_items"`
}

// PriceOverview is the market price-overview payload, stored in the
// cache verbatim. All fields are formatted strings and may be empty.
type PriceOverview struct {
	LowestPrice string `json:"lowest_price,omitempty"`
	MedianPrice string `json:"median_price,omitempty"`
	Volume      string `json:"volume,omitempty"`
}
