package merge

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_aggregator/internal/domain"
)

func article(title, url, src string) domain.Article {
	return domain.Article{
		Title:    title,
		URL:      url,
		Source:   src,
		Category: domain.CategoryGeneral,
	}
}

func TestCanonicalKeyNormalization(t *testing.T) {
	a := article("Fed Raises Rates -- Markets React!", "https://example.com/x", "a")
	b := article("fed raises rates markets react", "https://example.com/x", "b")
	assert.Equal(t, CanonicalKey(a), CanonicalKey(b))

	c := article("Fed Raises Rates -- Markets React!", "https://other.com/y", "a")
	assert.NotEqual(t, CanonicalKey(a), CanonicalKey(c), "different URL is a different story")
}

func TestCanonicalKeyTruncatesTitle(t *testing.T) {
	long := "aaaaaaaaaabbbbbbbbbbccccccccccddddddddddeeeeeeeeee"
	a := article(long+" tail one", "https://example.com/x", "a")
	b := article(long+" tail two", "https://example.com/x", "b")
	assert.Equal(t, CanonicalKey(a), CanonicalKey(b), "only the first 50 chars participate")
}

func TestMergeKeepsHigherViewCount(t *testing.T) {
	low := article("Big Story", "https://example.com/big", "alpha")
	low.Views = 100
	high := article("Big Story", "https://example.com/big", "beta")
	high.Views = 5000

	merged := Merge([]domain.Article{low, high})
	require.Len(t, merged, 1)
	assert.Equal(t, int64(5000), merged[0].Views)
	assert.Equal(t, "beta", merged[0].Source)

	// Same winner regardless of arrival order.
	merged = Merge([]domain.Article{high, low})
	require.Len(t, merged, 1)
	assert.Equal(t, int64(5000), merged[0].Views)
}

func TestMergeQualityFactors(t *testing.T) {
	base := article("Story", "https://example.com/s", "x")

	withImage := base
	withImage.Source = "y"
	withImage.ImageURL = "https://cdn.example.com/i.jpg"

	merged := Merge([]domain.Article{base, withImage})
	require.Len(t, merged, 1)
	assert.Equal(t, "y", merged[0].Source, "image presence wins a point")

	longer := base
	longer.Source = "z"
	longer.Body = "a much longer body with considerably more content"
	merged = Merge([]domain.Article{base, longer})
	require.Len(t, merged, 1)
	assert.Equal(t, "z", merged[0].Source, "longer body wins a point")

	ticked := base
	ticked.Source = "w"
	ticked.Tickers = []string{"AAPL", "MSFT"}
	merged = Merge([]domain.Article{base, ticked})
	require.Len(t, merged, 1)
	assert.Equal(t, "w", merged[0].Source, "more tickers wins a point")
}

func TestMergeFactorsCanCancel(t *testing.T) {
	// One point each way: views vs image. Tie-break goes to the smaller
	// source name, whichever order the inputs arrive in.
	viewsWin := article("Story", "https://example.com/s", "zeta")
	viewsWin.Views = 10
	imageWin := article("Story", "https://example.com/s", "alpha")
	imageWin.ImageURL = "https://cdn.example.com/i.jpg"

	forward := Merge([]domain.Article{viewsWin, imageWin})
	reverse := Merge([]domain.Article{imageWin, viewsWin})
	require.Len(t, forward, 1)
	require.Len(t, reverse, 1)
	assert.Equal(t, forward[0].Source, reverse[0].Source)
	assert.Equal(t, "alpha", forward[0].Source)
}

func TestMergeIdempotent(t *testing.T) {
	articles := fixtureSet()
	once := Merge(articles)
	twice := Merge(once)
	assert.Equal(t, once, twice)
}

func TestMergeOrderIndependent(t *testing.T) {
	articles := fixtureSet()
	want := Merge(articles)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		shuffled := append([]domain.Article(nil), articles...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Merge(shuffled)
		assert.Equal(t, Keys(want), Keys(got), "surviving key set must not depend on order")

		// Same winner per key, not just the same keys.
		wantByKey := byKey(want)
		for _, a := range got {
			assert.Equal(t, wantByKey[CanonicalKey(a)], a)
		}
	}
}

func TestMergeEmptyAndSingleton(t *testing.T) {
	assert.Empty(t, Merge(nil))

	one := []domain.Article{article("Solo", "https://example.com/solo", "a")}
	assert.Equal(t, one, Merge(one))
}

func byKey(articles []domain.Article) map[string]domain.Article {
	m := make(map[string]domain.Article, len(articles))
	for _, a := range articles {
		m[CanonicalKey(a)] = a
	}
	return m
}

// fixtureSet builds a mixed population: unique stories plus duplicate
// groups with distinct quality profiles.
func fixtureSet() []domain.Article {
	var articles []domain.Article

	for i := 0; i < 8; i++ {
		articles = append(articles, article(
			fmt.Sprintf("Unique story %d", i),
			fmt.Sprintf("https://example.com/u%d", i),
			fmt.Sprintf("src%d", i%3),
		))
	}

	for group := 0; group < 4; group++ {
		title := fmt.Sprintf("Duplicated story %d", group)
		url := fmt.Sprintf("https://example.com/d%d", group)
		for variant := 0; variant < 3; variant++ {
			a := article(title, url, fmt.Sprintf("src%d", variant))
			a.Views = int64(variant * 100)
			if variant == 1 {
				a.ImageURL = "https://cdn.example.com/i.jpg"
				a.Tickers = []string{"AAPL"}
			}
			if variant == 2 {
				a.Body = "extended body text for the highest-view variant"
			}
			articles = append(articles, a)
		}
	}

	return articles
}
