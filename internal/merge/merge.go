// Package merge deduplicates articles gathered from multiple sources and
// keeps the best-quality representative of each duplicate group. The result
// is independent of input order: the comparator is a total, deterministic
// order over any pair of duplicates.
package merge

import (
	"regexp"
	"sort"
	"strings"

	"news_aggregator/internal/domain"
)

const canonicalTitleLen = 50

var punctuation = regexp.MustCompile(`[^a-z0-9\s]`)
var whitespace = regexp.MustCompile(`\s+`)

// CanonicalKey identifies duplicates across sources: normalized title
// prefix plus URL. Two articles sharing the key are the same story.
func CanonicalKey(a domain.Article) string {
	title := strings.ToLower(a.Title)
	title = punctuation.ReplaceAllString(title, "")
	title = whitespace.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	if len(title) > canonicalTitleLen {
		title = title[:canonicalTitleLen]
	}
	return title + "|" + a.URL
}

// Merge collapses duplicates, keeping the higher-quality article of each
// colliding group. Candidates within a group are reduced in a canonical
// intrinsic order, so the winner never depends on the interleaving the
// fan-out happened to produce. Output order follows first appearance of
// each key, which makes Merge idempotent.
func Merge(articles []domain.Article) []domain.Article {
	groups := make(map[string][]domain.Article, len(articles))
	order := make([]string, 0, len(articles))

	for _, a := range articles {
		key := CanonicalKey(a)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}

	out := make([]domain.Article, 0, len(order))
	for _, key := range order {
		out = append(out, resolve(groups[key]))
	}
	return out
}

// resolve picks the surviving article for one duplicate group.
func resolve(group []domain.Article) domain.Article {
	if len(group) == 1 {
		return group[0]
	}

	sorted := append([]domain.Article(nil), group...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return intrinsicLess(sorted[i], sorted[j])
	})

	winner := sorted[0]
	for _, challenger := range sorted[1:] {
		if better(challenger, winner) {
			winner = challenger
		}
	}
	return winner
}

// intrinsicLess is a total order over article content, used only to fix
// the reduction sequence inside a duplicate group.
func intrinsicLess(a, b domain.Article) bool {
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	if a.URL != b.URL {
		return a.URL < b.URL
	}
	if a.Views != b.Views {
		return a.Views < b.Views
	}
	if len(a.Body) != len(b.Body) {
		return len(a.Body) < len(b.Body)
	}
	if len(a.Tickers) != len(b.Tickers) {
		return len(a.Tickers) < len(b.Tickers)
	}
	return a.ImageURL < b.ImageURL
}

// better reports whether challenger should replace incumbent. Each quality
// factor contributes one point to whichever side wins it: view count,
// image presence, body length, ticker count. A zero total falls through to
// an intrinsic tie-break (source name, then URL) so the winner does not
// depend on which article arrived first.
func better(challenger, incumbent domain.Article) bool {
	score := 0

	score += cmpSign(challenger.Views, incumbent.Views)
	score += cmpSign(int64(boolToInt(challenger.ImageURL != "")), int64(boolToInt(incumbent.ImageURL != "")))
	score += cmpSign(int64(len(challenger.Body)), int64(len(incumbent.Body)))
	score += cmpSign(int64(len(challenger.Tickers)), int64(len(incumbent.Tickers)))

	if score != 0 {
		return score > 0
	}

	if challenger.Source != incumbent.Source {
		return challenger.Source < incumbent.Source
	}
	return challenger.URL < incumbent.URL
}

func cmpSign(a, b int64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Keys returns the sorted canonical keys of articles; useful for
// comparing merge results as sets.
func Keys(articles []domain.Article) []string {
	keys := make([]string, len(articles))
	for i, a := range articles {
		keys[i] = CanonicalKey(a)
	}
	sort.Strings(keys)
	return keys
}
