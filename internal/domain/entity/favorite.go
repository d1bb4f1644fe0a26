package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a country as favorited by a user. It stores only the
// country name (a weak reference): deleting the country row leaves the
// favorite dangling, and lookups must report it as unresolved rather
// than resurrect the data.
type Favorite struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CountryName string
	CreatedAt   time.Time
}
