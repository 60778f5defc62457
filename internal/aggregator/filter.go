package aggregator

import (
	"regexp"
	"sort"
	"strings"

	"news_aggregator/internal/domain"
)

// applyQuery runs the pure filter -> sort -> paginate stage over the
// merged list. The returned total is the filtered, pre-pagination count so
// clients can compute page counts.
func applyQuery(articles []domain.Article, query domain.Query) ([]domain.Article, int) {
	filtered := filterArticles(articles, query)
	sortArticles(filtered, query)
	return paginate(filtered, query.Offset, query.Limit), len(filtered)
}

func filterArticles(articles []domain.Article, query domain.Query) []domain.Article {
	wanted := make(map[string]bool, len(query.Tickers))
	for _, t := range query.Tickers {
		wanted[strings.ToUpper(t)] = true
	}

	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if !query.From.IsZero() && a.PublishedAt.Before(query.From) {
			continue
		}
		if !query.To.IsZero() && a.PublishedAt.After(query.To) {
			continue
		}
		if query.Sentiment != "" && a.Sentiment != query.Sentiment {
			continue
		}
		if len(wanted) > 0 && !hasAnyTicker(a, wanted) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func hasAnyTicker(a domain.Article, wanted map[string]bool) bool {
	for _, t := range a.Tickers {
		if wanted[strings.ToUpper(t)] {
			return true
		}
	}
	return false
}

func sortArticles(articles []domain.Article, query domain.Query) {
	asc := query.SortOrder == domain.SortAsc

	var less func(a, b domain.Article) bool
	switch query.SortBy {
	case domain.SortByViews:
		less = func(a, b domain.Article) bool { return a.Views < b.Views }
	case domain.SortByRelevance:
		scores := relevanceScores(articles, query.Search)
		less = func(a, b domain.Article) bool { return scores[a.ID] < scores[b.ID] }
	default:
		less = func(a, b domain.Article) bool { return a.PublishedAt.Before(b.PublishedAt) }
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if asc {
			return less(articles[i], articles[j])
		}
		return less(articles[j], articles[i])
	})
}

// relevanceScores counts case-insensitive search-term occurrences, title
// hits weighing three and summary hits two.
func relevanceScores(articles []domain.Article, search string) map[string]int {
	scores := make(map[string]int, len(articles))
	if search == "" {
		return scores
	}

	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(search))
	if err != nil {
		return scores
	}

	for _, a := range articles {
		score := 3*len(pattern.FindAllStringIndex(a.Title, -1)) +
			2*len(pattern.FindAllStringIndex(a.Summary, -1))
		scores[a.ID] = score
	}
	return scores
}

func paginate(articles []domain.Article, offset, limit int) []domain.Article {
	if offset >= len(articles) {
		return []domain.Article{}
	}
	end := offset + limit
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}
