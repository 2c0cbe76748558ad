package domain

import (
	"bytes"
	"encoding/json"
)

// TimestampLayout is the format used for the snapshot's timestamp fields.
const TimestampLayout = "2006-01-02 15:04:05"

// Buckets maps a calendar key ("2006-01-02" or "2006-01") to a counter.
type Buckets map[string]int

// UnmarshalJSON accepts an empty JSON array as an empty map. Older stats
// files encode empty buckets as [].
func (b *Buckets) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("null")) {
		*b = Buckets{}
		return nil
	}
	m := map[string]int{}
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	*b = m
	return nil
}

// StatsSnapshot is the persisted usage aggregate.
// Totals and buckets are independent running tallies.
type StatsSnapshot struct {
	TotalGenerations int     `json:"totalGenerations"`
	TotalVisitors    int     `json:"totalVisitors"`
	DailyStats       Buckets `json:"dailyStats"`
	MonthlyStats     Buckets `json:"monthlyStats"`
	DailyVisitors    Buckets `json:"dailyVisitors"`
	MonthlyVisitors  Buckets `json:"monthlyVisitors"`
	LastGeneration   *string `json:"lastGeneration"`
	LastVisit        *string `json:"lastVisit"`
	FirstGeneration  *string `json:"firstGeneration"`
}

// NewStatsSnapshot returns a snapshot with zero counters and empty buckets.
func NewStatsSnapshot() *StatsSnapshot {
	s := &StatsSnapshot{}
	s.Normalize()
	return s
}

// Normalize fills in buckets missing from a decoded file.
func (s *StatsSnapshot) Normalize() {
	if s.DailyStats == nil {
		s.DailyStats = Buckets{}
	}
	if s.MonthlyStats == nil {
		s.MonthlyStats = Buckets{}
	}
	if s.DailyVisitors == nil {
		s.DailyVisitors = Buckets{}
	}
	if s.MonthlyVisitors == nil {
		s.MonthlyVisitors = Buckets{}
	}
}

// GenerationResult is returned after a card generation has been counted.
type GenerationResult struct {
	Success            bool `json:"success"`
	TotalGenerations   int  `json:"totalGenerations"`
	DailyGenerations   int  `json:"dailyGenerations"`
	MonthlyGenerations int  `json:"monthlyGenerations"`
}

// VisitorResult is returned after a visit has been counted.
type VisitorResult struct {
	Success       bool `json:"success"`
	TotalVisitors int  `json:"totalVisitors"`
}

// Stats is the read-only view served by get_stats.
type Stats struct {
	TotalGenerations   int     `json:"totalGenerations"`
	TotalVisitors      int     `json:"totalVisitors"`
	DailyGenerations   int     `json:"dailyGenerations"`
	MonthlyGenerations int     `json:"monthlyGenerations"`
	LastGeneration     *string `json:"lastGeneration"`
	LastVisit          *string `json:"lastVisit"`
	FirstGeneration    *string `json:"firstGeneration"`
}

// DebugInfo describes the backing file of the counter store.
type DebugInfo struct {
	Path        string         `json:"path"`
	Permissions string         `json:"permissions"`
	Contents    *StatsSnapshot `json:"contents"`
}
