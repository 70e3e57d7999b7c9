package models

import (
	"fmt"
	"time"
)

// VisitorMetrics holds the directional counts of one observation. Entering
// and leaving are each split two ways: by sex and by group vs. individual.
// Passersby walk past without entering.
type VisitorMetrics struct {
	MenEntering     int `json:"men_entering"`
	WomenEntering   int `json:"women_entering"`
	MenLeaving      int `json:"men_leaving"`
	WomenLeaving    int `json:"women_leaving"`
	GroupsEntering  int `json:"groups_entering"`
	SinglesEntering int `json:"singles_entering"`
	GroupsLeaving   int `json:"groups_leaving"`
	SinglesLeaving  int `json:"singles_leaving"`
	Passersby       int `json:"passersby"`
}

// Add accumulates another observation's counts into m.
func (m *VisitorMetrics) Add(other VisitorMetrics) {
	m.MenEntering += other.MenEntering
	m.WomenEntering += other.WomenEntering
	m.MenLeaving += other.MenLeaving
	m.WomenLeaving += other.WomenLeaving
	m.GroupsEntering += other.GroupsEntering
	m.SinglesEntering += other.SinglesEntering
	m.GroupsLeaving += other.GroupsLeaving
	m.SinglesLeaving += other.SinglesLeaving
	m.Passersby += other.Passersby
}

// TotalEntering counts each entering person once (the sex split covers
// everyone; groups/singles is an alternative split of the same people).
func (m VisitorMetrics) TotalEntering() int {
	return m.MenEntering + m.WomenEntering
}

func (m VisitorMetrics) TotalLeaving() int {
	return m.MenLeaving + m.WomenLeaving
}

// VisitorRecord is one immutable hour-granularity observation. The
// (date, hour) pair is not unique; overlapping records are summed.
type VisitorRecord struct {
	Timestamp time.Time      `json:"timestamp"`
	Metrics   VisitorMetrics `json:"metrics"`
}

func (r *VisitorRecord) ToString() string {
	return fmt.Sprintf("VisitorRecord(ts=%s, entering=%d, leaving=%d, passersby=%d)",
		r.Timestamp.Format(time.RFC3339), r.Metrics.TotalEntering(), r.Metrics.TotalLeaving(), r.Metrics.Passersby)
}
