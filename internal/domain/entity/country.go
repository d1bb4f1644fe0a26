package entity

import (
	"time"

	"github.com/google/uuid"
)

// Country is a single country record. Name is the unique business key;
// favorites reference countries by name, not by ID.
type Country struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Capital    string    `json:"capital"`
	Region     string    `json:"region"`
	Population int64     `json:"population"`
	Languages  []string  `json:"languages"`
	Currencies []string  `json:"currencies"`
	Borders    []string  `json:"borders"`
	Timezones  []string  `json:"timezones"`
	FlagURL    string    `json:"flag_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
