package inventory

import "strings"

// Matches reports whether a projected item satisfies the search query.
// The query matches case-insensitively as a substring of name, type or
// exterior; nil optional fields skip their check. Four literal queries
// additionally test the boolean flags. A single passing check matches.
func Matches(item Item, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if item.Type != nil && strings.Contains(strings.ToLower(*item.Type), q) {
		return true
	}
	if item.Exterior != nil && strings.Contains(strings.ToLower(*item.Exterior), q) {
		return true
	}

	switch q {
	case "tradeable":
		return item.Tradable
	case "marketable":
		return item.Marketable
	case "no trade":
		return !item.Tradable
	case "no market":
		return !item.Marketable
	}
	return false
}

// Filter keeps the items matching query, preserving order
func Filter(items []Item, query string) []Item {
	matched := make([]Item, 0, len(items))
	for _, it := range items {
		if Matches(it, query) {
			matched = append(matched, it)
		}
	}
	return matched
}
