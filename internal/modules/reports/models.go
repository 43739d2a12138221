// Package reports saves calculator runs (inputs and results) so they can be
// listed, reopened and deleted later.
package reports

import (
	"encoding/json"
	"time"
)

// Report kinds, one per calculator
const (
	KindProjection = "projection"
	KindComparison = "comparison"
	KindMarket     = "market"
	KindRenovation = "renovation"
	KindMoving     = "moving"
	KindInsurance  = "insurance"
)

// Kinds lists every supported report kind
func Kinds() []string {
	return []string{KindProjection, KindComparison, KindMarket, KindRenovation, KindMoving, KindInsurance}
}

// Report is one saved calculator run
type Report struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Label     string          `json:"label"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// Summary is a report without its payloads, for listings
type Summary struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}
