package source

import (
	"net/url"
	"regexp"
	"strings"

	"news_aggregator/internal/domain"
)

// Normalization helpers shared by adapters. Providers rarely ship clean
// data: sentiment is often missing, tickers are buried in prose, and image
// URLs show up relative or malformed. Everything here is best-effort and
// total; no helper ever errors.

var positiveWords = map[string]bool{
	"gain": true, "gains": true, "surge": true, "surges": true, "rally": true,
	"rallies": true, "rise": true, "rises": true, "jump": true, "jumps": true,
	"soar": true, "soars": true, "beat": true, "beats": true, "record": true,
	"growth": true, "strong": true, "bullish": true, "upgrade": true,
	"profit": true, "profits": true, "boom": true, "recovery": true,
}

var negativeWords = map[string]bool{
	"loss": true, "losses": true, "fall": true, "falls": true, "drop": true,
	"drops": true, "plunge": true, "plunges": true, "crash": true,
	"crashes": true, "slump": true, "slumps": true, "miss": true,
	"misses": true, "weak": true, "bearish": true, "downgrade": true,
	"decline": true, "declines": true, "fear": true, "fears": true,
	"recession": true, "bankruptcy": true, "layoffs": true, "warning": true,
}

var wordPattern = regexp.MustCompile(`[a-z]+`)

// InferSentiment labels text by keyword polarity count. A dead zone of one
// keeps near-balanced text neutral.
func InferSentiment(text string) domain.Sentiment {
	score := 0
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if positiveWords[word] {
			score++
		} else if negativeWords[word] {
			score--
		}
	}

	switch {
	case score > 1:
		return domain.SentimentPositive
	case score < -1:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

var tickerPattern = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// tickerStoplist holds uppercase tokens that look like tickers but are
// everyday abbreviations in financial prose.
var tickerStoplist = map[string]bool{
	"CEO": true, "CFO": true, "CTO": true, "IPO": true, "ETF": true,
	"SEC": true, "FED": true, "GDP": true, "CPI": true, "USA": true,
	"USD": true, "EUR": true, "GBP": true, "NYSE": true, "NEWS": true,
	"THE": true, "AND": true, "FOR": true, "WITH": true, "THIS": true,
	"THAT": true, "FROM": true, "WILL": true, "HAS": true, "ARE": true,
	"NOT": true, "NEW": true, "ALL": true, "ITS": true, "BUT": true,
	"API": true, "USB": true, "EPS": true, "YOY": true, "QOQ": true,
}

const maxTickers = 10

// ExtractTickers pulls candidate ticker symbols out of text: uppercase
// runs of 2-5 letters minus the stoplist, deduplicated, order-preserving,
// capped at maxTickers.
func ExtractTickers(text string) []string {
	seen := make(map[string]bool)
	tickers := []string{}
	for _, candidate := range tickerPattern.FindAllString(text, -1) {
		if tickerStoplist[candidate] || seen[candidate] {
			continue
		}
		seen[candidate] = true
		tickers = append(tickers, candidate)
		if len(tickers) == maxTickers {
			break
		}
	}
	return tickers
}

// ValidImageURL returns raw when it parses as an absolute http(s) URL,
// otherwise the empty string so callers drop the image.
func ValidImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return raw
}

// NormalizeCategory maps free-form provider categories onto the fixed
// enumeration, defaulting to general.
func NormalizeCategory(raw string) domain.Category {
	c := domain.Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.Valid() {
		return c
	}
	switch c {
	case "markets", "stocks", "stock":
		return domain.CategoryMarket
	case "economic", "macro":
		return domain.CategoryEconomy
	case "cryptocurrency", "bitcoin":
		return domain.CategoryCrypto
	case "currencies", "fx":
		return domain.CategoryForex
	}
	return domain.CategoryGeneral
}
