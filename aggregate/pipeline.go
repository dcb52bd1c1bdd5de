// Package aggregate derives artist, album and genre views from a flat song
// set. Every function is pure: (songs, filter) in, (page, total) out. The
// repositories push the cheap match stages down to the store and feed the
// remaining songs through these pipelines.
package aggregate

import (
	"sort"
	"strings"

	"github.com/tsegayberhanu/echodash/domain"
)

// group is one partition of the song set under a grouping key.
type group struct {
	Key   string
	Songs []domain.Song
}

// listPipeline is the shared shape of every derived listing:
// filter -> group -> derive -> post-filter -> sort -> paginate.
// Entity variants parameterize the stages instead of duplicating the loop.
type listPipeline[T any] struct {
	key    func(domain.Song) string
	keep   func(string) bool
	derive func(group) (T, bool)
	post   []func(T) bool
	less   func(a, b T) bool
	page   int
	limit  int
}

func (p listPipeline[T]) run(songs []domain.Song) ([]T, int) {
	groups := groupBy(songs, p.key, p.keep)

	items := make([]T, 0, len(groups))
	for _, g := range groups {
		item, ok := p.derive(g)
		if !ok {
			continue
		}
		keep := true
		for _, f := range p.post {
			if !f(item) {
				keep = false
				break
			}
		}
		if keep {
			items = append(items, item)
		}
	}

	if p.less != nil {
		sort.SliceStable(items, func(i, j int) bool { return p.less(items[i], items[j]) })
	}

	total := len(items)
	return paginate(items, p.page, p.limit), total
}

// groupBy partitions songs by key, dropping rejected keys. Groups come out
// ordered by key so every later stable sort has a deterministic tie-break.
func groupBy(songs []domain.Song, key func(domain.Song) string, keep func(string) bool) []group {
	index := make(map[string]int)
	var groups []group
	for _, s := range songs {
		k := key(s)
		if keep != nil && !keep(k) {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{Key: k})
		}
		groups[i].Songs = append(groups[i].Songs, s)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// distinctCount counts distinct values of field across songs, skipping
// values rejected by keep (nil keeps everything, including empties).
func distinctCount(songs []domain.Song, field func(domain.Song) string, keep func(string) bool) int {
	seen := make(map[string]struct{})
	for _, s := range songs {
		v := field(s)
		if keep != nil && !keep(v) {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// distinctValues is distinctCount keeping the values, sorted ascending.
func distinctValues(songs []domain.Song, field func(domain.Song) string, keep func(string) bool) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, s := range songs {
		v := field(s)
		if keep != nil && !keep(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// dominantArtist tallies songs per resolvable artist and returns the most
// frequent one. Ties go to the lexicographically smallest name; false when
// no song carries a resolvable artist.
func dominantArtist(songs []domain.Song) (string, bool) {
	counts := make(map[string]int)
	for _, s := range songs {
		if domain.IsPlaceholder(s.Artist, domain.UnknownArtist) {
			continue
		}
		counts[s.Artist]++
	}
	best, bestCount := "", 0
	for artist, n := range counts {
		if n > bestCount || (n == bestCount && artist < best) {
			best, bestCount = artist, n
		}
	}
	return best, bestCount > 0
}

func notEmpty(v string) bool { return v != "" }

func notPlaceholder(sentinel string) func(string) bool {
	return func(v string) bool { return !domain.IsPlaceholder(v, sentinel) }
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// inRange applies an optional [min, max] window.
func inRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// Field accessors shared by the pipelines.
func songArtist(s domain.Song) string { return s.Artist }
func songAlbum(s domain.Song) string  { return s.Album }
func songGenre(s domain.Song) string  { return s.Genre }

// Order helpers honoring the requested direction; ties are left to the
// stable sort's key order.
func strOrdered(order string, a, b string) bool {
	if order == "asc" {
		return a < b
	}
	return a > b
}

func intOrdered(order string, a, b int) bool {
	if order == "asc" {
		return a < b
	}
	return a > b
}

// sortSongsByTitle orders a detail-view song list by title ascending.
func sortSongsByTitle(songs []domain.Song) []domain.Song {
	out := make([]domain.Song, len(songs))
	copy(out, songs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}
