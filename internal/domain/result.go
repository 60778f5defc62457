package domain

// Result is what the aggregation pipeline hands back to the caller.
// Total is the filtered-but-unpaginated count so clients can compute
// page counts. Errors lists per-source failure messages from the last
// fan-out; it is empty when every selected source succeeded.
type Result struct {
	Articles        []Article `json:"articles"`
	Total           int       `json:"total"`
	Source          string    `json:"source"`
	ExecutionTimeMs int64     `json:"executionTimeMs"`
	Cached          bool      `json:"cached"`
	Errors          []string  `json:"errors,omitempty"`
}
