package lookuplog

import (
	"time"
)

type Kind string

const (
	KindCurrent     Kind = "current"
	KindForecast    Kind = "forecast"
	KindCoordinates Kind = "coordinates"
)

type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
)

type LookupRecord struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Kind           Kind      `json:"kind" gorm:"type:varchar(16);index:idx_kind_created_at"`
	Query          string    `json:"query"`
	Outcome        Outcome   `json:"outcome" gorm:"type:varchar(16)"`
	UpstreamStatus int       `json:"upstream_status" gorm:"column:upstream_status"`
	DurationMs     int64     `json:"duration_ms" gorm:"column:duration_ms"`
	CreatedAt      time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_kind_created_at"`
}

func (LookupRecord) TableName() string {
	return "lookup_logs"
}
