package model

// TestResult is a single assessment score for a user. This service only ever
// reads them; results are written by the assessment pipeline.
type TestResult struct {
	UserID   string `json:"-"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}
