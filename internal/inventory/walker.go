package inventory

import (
	"context"
	"errors"

	"github.com/nmoreno/steamvault/internal/steam"
)

// walkAll fetches the owner's entire inventory at the walk page size,
// caching every page and recording its chain link on the way. The walk
// ends when the upstream reports no more data, returns an empty page,
// fails, or the page bound is hit; a failure truncates the walk and
// the items accumulated so far are returned. Pages are never retried.
func (s *Service) walkAll(ctx context.Context, steamID string) []steam.RawItem {
	var all []steam.RawItem
	cursor := ""

	for n := 0; n < s.cfg.MaxWalkPages; n++ {
		page, err := s.source.FetchPage(ctx, steamID, s.cfg.AppID, s.cfg.ContextID, s.cfg.Lang, s.cfg.WalkPageSize, cursor)
		if err != nil {
			// an empty page is the end of the data, not a failure
			if !errors.Is(err, steam.ErrEmptyInventory) {
				s.log.Warn().Err(err).Str("steam_id", steamID).Int("pages", n).Msg("walk truncated")
			}
			break
		}

		s.store(s.pageKey(steamID, s.cfg.WalkPageSize, cursor), page)
		all = append(all, page.Items...)

		if !page.HasMore || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	return all
}
