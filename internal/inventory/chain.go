package inventory

import "sync"

// pageLink records where one cached page points: the cursor of the page
// after it and whether the upstream reported more data.
type pageLink struct {
	next    string
	hasMore bool
}

// chainIndex keeps, per owner dataset, the pagination linkage between
// populated pages. Whoever stores a page records its outgoing link here,
// so cached search traverses a real index instead of re-deriving
// cursors from cached page bodies. Chains are keyed by the full page
// identity minus the cursor; pages populated at a different page size
// belong to a different chain.
type chainIndex struct {
	mu    sync.RWMutex
	links map[string]map[string]pageLink
}

func newChainIndex() *chainIndex {
	return &chainIndex{links: make(map[string]map[string]pageLink)}
}

// Set records the link out of the page at cursor. When a re-populated
// page changes its successor, the old successor links are dropped so
// the chain truncates there instead of accumulating unreachable tails.
func (ci *chainIndex) Set(chainKey, cursor, next string, hasMore bool) {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	chain, ok := ci.links[chainKey]
	if !ok {
		chain = make(map[string]pageLink)
		ci.links[chainKey] = chain
	}
	old, existed := chain[cursor]
	chain[cursor] = pageLink{next: next, hasMore: hasMore}
	if !existed || old.next == next {
		return
	}
	for c := old.next; c != "" && c != next && c != cursor; {
		lk, ok := chain[c]
		if !ok {
			break
		}
		delete(chain, c)
		c = lk.next
	}
}

// Next returns the link out of the page at cursor, if one was recorded
func (ci *chainIndex) Next(chainKey, cursor string) (pageLink, bool) {
	ci.mu.RLock()
	defer ci.mu.RUnlock()
	lk, ok := ci.links[chainKey][cursor]
	return lk, ok
}
