package dto

import "time"

type ReportItem struct {
	Stock          string    `json:"stock"`
	Analysis       string    `json:"analysis"`
	Recommendation string    `json:"recommendation"`
	Timestamp      time.Time `json:"timestamp"`
}

type ReportsResponse struct {
	Reports []ReportItem `json:"reports"`
}
