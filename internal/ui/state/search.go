// Package state holds the pure search-overlay logic: flattening the tile
// tree into searchable entries and resolving a query to matches.
package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tiledeck/internal/tiles"
)

// Entry is one searchable tile with its grid coordinates.
type Entry struct {
	Category string
	CatIdx   int
	TileIdx  int
	Name     string
}

// Entries flattens the tree into search entries in navigation order.
func Entries(tree *tiles.Tree) []Entry {
	if tree == nil {
		return nil
	}
	out := make([]Entry, 0, tree.TileCount())
	for ci, cat := range tree.Categories {
		for ti, tile := range cat.Tiles {
			out = append(out, Entry{Category: cat.Name, CatIdx: ci, TileIdx: ti, Name: tile.Name})
		}
	}
	return out
}

// Matches returns the entries matching the query, fuzzy first and a
// substring scan as fallback. An empty query matches everything.
func Matches(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Entry(nil), entries...)
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		out := make([]Entry, 0, len(matched))
		for i, entry := range entries {
			if _, ok := matched[i]; ok {
				out = append(out, entry)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	lower := strings.ToLower(trimmed)
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), lower) {
			out = append(out, entry)
		}
	}
	return out
}

// BestMatch returns the entry the selection should jump to for the query:
// exact name, then prefix, then substring, then the closest fuzzy rank.
func BestMatch(entries []Entry, query string) (Entry, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(entries) == 0 {
		return Entry{}, false
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name, trimmed) {
			return entry, true
		}
	}
	lower := strings.ToLower(trimmed)
	for _, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Name), lower) {
			return entry, true
		}
	}
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), lower) {
			return entry, true
		}
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return Entry{}, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return Entry{}, false
	}
	return entries[best.OriginalIndex], true
}
