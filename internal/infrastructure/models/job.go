package models

import "github.com/volatiletech/null/v8"

// Job is the canonical column layout for postings. Deletes are soft: the row
// stays for auditability and reads filter on is_active.
type Job struct {
	ID             string      `gorm:"type:text;primaryKey"`
	Title          string      `gorm:"type:text;not null"`
	Department     string      `gorm:"type:text;not null"`
	Location       string      `gorm:"type:text;not null"`
	Type           string      `gorm:"type:text;not null"`
	Description    null.String `gorm:"type:text"`
	ApplicationURL null.String `gorm:"column:application_url;type:text"`
	IsActive       bool        `gorm:"not null;default:true"`
}

func (Job) TableName() string { return "jobs" }
