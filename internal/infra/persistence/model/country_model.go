package model

import (
	"time"

	"github.com/google/uuid"
)

// CountryModel mirrors the 'countries' table. The string slices are stored
// as jsonb columns via GORM's JSON serializer.
type CountryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);unique;not null"`
	Capital    string    `gorm:"type:varchar(255)"`
	Region     string    `gorm:"type:varchar(100)"`
	Population int64     `gorm:"not null;check:population >= 0"`
	Languages  []string  `gorm:"serializer:json;type:jsonb"`
	Currencies []string  `gorm:"serializer:json;type:jsonb"`
	Borders    []string  `gorm:"serializer:json;type:jsonb"`
	Timezones  []string  `gorm:"serializer:json;type:jsonb"`
	FlagURL    string    `gorm:"type:varchar(512)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
