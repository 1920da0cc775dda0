package models

import "time"

// WasteTotals aggregates logged waste amounts per category.
type WasteTotals struct {
	Prep    float64 `json:"prep"`
	Plate   float64 `json:"plate"`
	Storage float64 `json:"storage"`
	Other   float64 `json:"other"`
	Total   float64 `json:"total"`
}

// StudentCounts breaks registered students down by mess and mess type.
type StudentCounts struct {
	Total      int64            `json:"total"`
	ByMess     map[string]int64 `json:"byMess"`
	ByMessType map[string]int64 `json:"byMessType"`
}

// DashboardSummary is the derived aggregate served to dashboards.
type DashboardSummary struct {
	Students    StudentCounts `json:"students"`
	Waste       WasteTotals   `json:"waste"`
	Suggestions int64         `json:"suggestions"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
