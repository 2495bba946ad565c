package cache

import (
	"crypto/md5"
	"fmt"
)

// PageKey identifies one page of one owner's paginated inventory.
// Cursor is "" for the first page, otherwise the last asset id returned
// by the previous page. Two keys address the same cache slot iff every
// component matches exactly, the page size included.
type PageKey struct {
	SteamID   string
	AppID     int
	ContextID int
	Lang      string
	PageSize  int
	Cursor    string
}

// String builds the stable cache key for an inventory page
func (k PageKey) String() string {
	return fmt.Sprintf("steam_inventory_%s_%d_%d_%s_%d_%s",
		k.SteamID, k.AppID, k.ContextID, k.Lang, k.PageSize, k.Cursor)
}

// ChainKey identifies the owner's page chain: everything but the cursor.
func (k PageKey) ChainKey() string {
	return fmt.Sprintf("%s_%d_%d_%s_%d", k.SteamID, k.AppID, k.ContextID, k.Lang, k.PageSize)
}

// PriceKey builds the cache key for a market price lookup. Market names
// contain spaces, pipes and parentheses, so the name is hashed.
func PriceKey(appID int, marketName string) string {
	return fmt.Sprintf("steam_price_%d_%x", appID, md5.Sum([]byte(marketName)))
}
