// Package inventory implements the caching engine in front of the
// Steam inventory and price endpoints: stale-while-revalidate page
// serving, the incremental full-inventory walk, and search over cached
// or live data.
package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nmoreno/steamvault/internal/cache"
	"github.com/nmoreno/steamvault/internal/config"
	"github.com/nmoreno/steamvault/internal/steam"
)

// ErrUnavailable means the inventory could not be served: nothing
// cached and the upstream fetch failed or came back empty.
var ErrUnavailable = errors.New("inventory not available")

// Source is the upstream boundary the engine drives. *steam.Client
// satisfies it.
type Source interface {
	FetchPage(ctx context.Context, steamID string, appID, contextID int, lang string, count int, startAssetID string) (*steam.InventoryPage, error)
	FetchPrice(ctx context.Context, appID int, marketName string) (*steam.PriceOverview, error)
}

// Page is one served inventory page after projection
type Page struct {
	Items      []Item
	HasMore    bool
	NextCursor string
}

// SearchResult is a filtered item set plus its provenance
type SearchResult struct {
	Items     []Item
	FromCache bool
}

// PriceResult carries a price overview or an explicit unavailable marker
type PriceResult struct {
	Overview  *steam.PriceOverview
	Available bool
}

type Service struct {
	cfg    config.Config
	cache  cache.Store
	source Source
	chains *chainIndex
	log    zerolog.Logger
}

func New(cfg config.Config, store cache.Store, source Source, log zerolog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		cache:  store,
		source: source,
		chains: newChainIndex(),
		log:    log.With().Str("component", "inventory").Logger(),
	}
}

func (s *Service) pageKey(steamID string, pageSize int, cursor string) cache.PageKey {
	return cache.PageKey{
		SteamID:   steamID,
		AppID:     s.cfg.AppID,
		ContextID: s.cfg.ContextID,
		Lang:      s.cfg.Lang,
		PageSize:  pageSize,
		Cursor:    cursor,
	}
}

// store caches a fetched page and records its chain link
func (s *Service) store(key cache.PageKey, page *steam.InventoryPage) {
	s.cache.Put(key.String(), page, s.cfg.InventoryTTL)
	s.chains.Set(key.ChainKey(), key.Cursor, page.NextCursor, page.HasMore)
}

// GetPage serves one inventory page with stale-while-revalidate
// semantics. A cached entry is returned immediately whether fresh or
// expired, and a background refresh of the same key is scheduled
// unconditionally. On a miss the page is fetched synchronously; a
// failed miss caches nothing and returns ErrUnavailable.
func (s *Service) GetPage(ctx context.Context, steamID string, pageSize int, cursor string) (*Page, error) {
	if pageSize < 1 {
		pageSize = s.cfg.DefaultPageSize
	}
	key := s.pageKey(steamID, pageSize, cursor)

	if entry, _ := s.cache.Get(key.String()); entry != nil {
		page := entry.Value.(*steam.InventoryPage)
		s.revalidate(key)
		return buildPage(page), nil
	}

	page, err := s.source.FetchPage(ctx, steamID, s.cfg.AppID, s.cfg.ContextID, s.cfg.Lang, pageSize, cursor)
	if err != nil {
		s.log.Warn().Err(err).Str("steam_id", steamID).Str("cursor", cursor).Msg("inventory fetch failed")
		return nil, ErrUnavailable
	}
	s.store(key, page)
	return buildPage(page), nil
}

// revalidate refreshes one page key in a detached goroutine. No caller
// ever awaits it; its outcome is visible only through cache state on
// later lookups. Failures leave the previous entry untouched.
func (s *Service) revalidate(key cache.PageKey) {
	taskID := uuid.NewString()
	go func() {
		fresh, err := s.source.FetchPage(context.Background(), key.SteamID, key.AppID, key.ContextID, key.Lang, key.PageSize, key.Cursor)
		if err != nil {
			s.log.Warn().Err(err).Str("task_id", taskID).Str("key", key.String()).Msg("background refresh failed")
			return
		}
		s.store(key, fresh)
		s.log.Debug().Str("task_id", taskID).Str("key", key.String()).Int("items", len(fresh.Items)).Msg("background refresh done")
	}()
}

func buildPage(page *steam.InventoryPage) *Page {
	return &Page{
		Items:      ProjectAll(page.Items),
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	}
}

// SearchCached filters whatever part of the owner's inventory is
// already cached at the walk page size, without any network traffic.
// It follows the recorded page chain from the first page and stops
// silently at the first missing or expired page, so results are
// bounded by what previous walks and refreshes left behind.
func (s *Service) SearchCached(steamID, query string) SearchResult {
	var items []Item
	cursor := ""
	chainKey := s.pageKey(steamID, s.cfg.WalkPageSize, "").ChainKey()

	for n := 0; n < s.cfg.MaxWalkPages; n++ {
		key := s.pageKey(steamID, s.cfg.WalkPageSize, cursor)
		entry, fresh := s.cache.Get(key.String())
		if !fresh {
			break
		}
		page := entry.Value.(*steam.InventoryPage)
		items = append(items, ProjectAll(page.Items)...)

		lk, ok := s.chains.Next(chainKey, cursor)
		if !ok || !lk.hasMore || lk.next == "" {
			break
		}
		cursor = lk.next
	}

	return SearchResult{Items: Filter(items, query), FromCache: true}
}

// SearchLive walks the complete inventory from the upstream,
// re-populating the cache page by page, and filters the full result.
func (s *Service) SearchLive(ctx context.Context, steamID, query string) SearchResult {
	raw := s.walkAll(ctx, steamID)
	return SearchResult{Items: Filter(ProjectAll(raw), query), FromCache: false}
}

// GetPrice looks up a market price with plain cache-or-fetch, no
// revalidation. Failed lookups are cached as a negative entry for the
// full price TTL so a broken or rate-limited upstream is not hammered
// on every request.
func (s *Service) GetPrice(ctx context.Context, marketName string) PriceResult {
	key := cache.PriceKey(s.cfg.AppID, marketName)

	if entry, fresh := s.cache.Get(key); fresh {
		overview := entry.Value.(*steam.PriceOverview)
		return PriceResult{Overview: overview, Available: overview != nil}
	}

	overview, err := s.source.FetchPrice(ctx, s.cfg.AppID, marketName)
	if err != nil {
		s.log.Warn().Err(err).Str("market_name", marketName).Msg("price fetch failed")
		// only upstream failures are negative-cached; a caller abort
		// must not hide the price from everyone else for a full TTL
		if ctx.Err() == nil {
			s.cache.Put(key, (*steam.PriceOverview)(nil), s.cfg.PriceTTL)
		}
		return PriceResult{}
	}

	s.cache.Put(key, overview, s.cfg.PriceTTL)
	return PriceResult{Overview: overview, Available: true}
}
