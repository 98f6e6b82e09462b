package models

import "github.com/volatiletech/null/v8"

// TeamMember is the canonical column layout, used when bootstrapping a fresh
// store. Legacy stores (camelCase imageUrl, quoted "group", no display
// order) are handled with raw SQL in the repository instead of a second
// model.
type TeamMember struct {
	ID           string      `gorm:"type:text;primaryKey"`
	Name         string      `gorm:"type:text;not null"`
	Role         string      `gorm:"type:text;not null"`
	Bio          null.String `gorm:"type:text"`
	ImageURL     null.String `gorm:"column:image_url;type:text"`
	LinkedIn     null.String `gorm:"column:linkedin;type:text"`
	GroupName    string      `gorm:"column:group_name;type:text;not null"`
	DisplayOrder int         `gorm:"not null;default:0"`
}

func (TeamMember) TableName() string { return "team_members" }
