package model

import (
	"time"

	"gorm.io/datatypes"
)

// Report is one persisted analysis. Rows are append-only, never
// updated or deleted.
type Report struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	Stock          string         `gorm:"not null" json:"stock"`
	Analysis       string         `gorm:"not null" json:"analysis"`
	Recommendation string         `gorm:"not null" json:"recommendation"`
	Response       datatypes.JSON `json:"-"`
	Timestamp      time.Time      `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (Report) TableName() string {
	return "reports"
}
