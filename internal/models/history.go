package models

// History is one executed query.
type History struct {
	ID              string  `gorm:"primaryKey;size:64" json:"id"`
	Query           string  `gorm:"type:text;not null" json:"query"`
	Timestamp       int64   `gorm:"index" json:"timestamp"` // unix millis
	ExecutionTime   float64 `json:"execution_time"`         // milliseconds
	Database        string  `gorm:"size:255" json:"database"`
	RetentionPolicy string  `gorm:"size:255" json:"retention_policy"`
	Success         bool    `json:"success"`
	Error           string  `gorm:"type:text" json:"error"`
}
