package domain

import "time"

// Category classifies an article into one of the fixed product verticals.
type Category string

const (
	CategoryMarket   Category = "market"
	CategoryEconomy  Category = "economy"
	CategoryEarnings Category = "earnings"
	CategoryGeneral  Category = "general"
	CategoryCrypto   Category = "crypto"
	CategoryForex    Category = "forex"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryMarket,
	CategoryEconomy,
	CategoryEarnings,
	CategoryGeneral,
	CategoryCrypto,
	CategoryForex,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Sentiment is the optional polarity label attached to an article.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Article is the canonical unit flowing through the pipeline. Title, Source,
// URL, Category and PublishedAt are always set by adapters; everything else
// defaults to its zero value so comparisons never chase nil pointers.
type Article struct {
	ID          string    `json:"id"` // unique per ingestion, not stable across sources
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    Category  `json:"category"`
	Sentiment   Sentiment `json:"sentiment,omitempty"`
	Tickers     []string  `json:"tickers,omitempty"`
	Views       int64     `json:"views,omitempty"`
	Author      string    `json:"author,omitempty"`
}
