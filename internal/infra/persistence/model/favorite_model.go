package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. CountryName is a weak
// reference by business key, so deleting a country leaves the favorite
// row in place (reported as unresolved by the favorites use case).
type FavoriteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_country"`
	CountryName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_country"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
