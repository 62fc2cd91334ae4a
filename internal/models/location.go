package models

import (
	"time"
)

// Location is the canonical resolved form of a free-text search query.
// Rows are created on first resolution of a search text and never mutated
// or expired; geocoding results are treated as permanently valid for a
// given query string. search_text carries a plain (non-unique) index:
// two concurrent misses for the same text may race and both insert.
// DB: locations
type Location struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SearchText       string    `gorm:"column:search_text;size:500;not null;index:idx_locations_search_text" json:"search_text"`
	FormattedAddress string    `gorm:"column:formatted_address;size:500;not null" json:"formatted_address"`
	Lat              float64   `gorm:"column:lat;type:double precision;not null" json:"lat"`
	Lng              float64   `gorm:"column:lng;type:double precision;not null" json:"lng"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Location) TableName() string {
	return "locations"
}
