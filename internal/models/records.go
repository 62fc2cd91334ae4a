package models

import (
	"time"
)

// Resource records are cached per location and evicted in bulk once the
// batch outlives its kind's freshness window. created_at is set by the
// fetch that persisted the batch and drives the freshness check.

// Weather represents one cached forecast entry
// DB: weather
type Weather struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LocationID   uint      `gorm:"column:location_id;not null;index:idx_weather_location" json:"location_id"`
	Summary      string    `gorm:"column:summary;type:text;not null" json:"summary"`
	ForecastDate string    `gorm:"column:forecast_date;size:50;not null" json:"forecast_date"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Weather) TableName() string {
	return "weather"
}

func (w *Weather) Stamp(locationID uint, now time.Time) {
	w.LocationID = locationID
	w.CreatedAt = now
}

func (w *Weather) CreatedTime() time.Time { return w.CreatedAt }

// Event represents one cached local event
// DB: events
type Event struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"column:location_id;not null;index:idx_events_location" json:"location_id"`
	Name       string    `gorm:"column:name;size:500;not null" json:"name"`
	Link       string    `gorm:"column:link;type:text" json:"link"`
	EventDate  string    `gorm:"column:event_date;size:50" json:"event_date"`
	Summary    string    `gorm:"column:summary;type:text" json:"summary"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) Stamp(locationID uint, now time.Time) {
	e.LocationID = locationID
	e.CreatedAt = now
}

func (e *Event) CreatedTime() time.Time { return e.CreatedAt }

// Movie represents one cached movie playing near a location
// DB: movies
type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LocationID  uint      `gorm:"column:location_id;not null;index:idx_movies_location" json:"location_id"`
	Title       string    `gorm:"column:title;size:500;not null" json:"title"`
	ReleaseDate string    `gorm:"column:release_date;size:50" json:"release_date"`
	VoteCount   int       `gorm:"column:vote_count;not null;default:0" json:"vote_count"`
	VoteAverage float64   `gorm:"column:vote_average;type:double precision;not null;default:0" json:"vote_average"`
	Popularity  float64   `gorm:"column:popularity;type:double precision;not null;default:0" json:"popularity"`
	Overview    string    `gorm:"column:overview;type:text" json:"overview"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Movie) TableName() string {
	return "movies"
}

func (m *Movie) Stamp(locationID uint, now time.Time) {
	m.LocationID = locationID
	m.CreatedAt = now
}

func (m *Movie) CreatedTime() time.Time { return m.CreatedAt }

// Review represents one cached local-business review entry
// DB: reviews
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"column:location_id;not null;index:idx_reviews_location" json:"location_id"`
	Name       string    `gorm:"column:name;size:500;not null" json:"name"`
	Rating     float64   `gorm:"column:rating;type:double precision;not null;default:0" json:"rating"`
	Price      string    `gorm:"column:price;size:10" json:"price"`
	URL        string    `gorm:"column:url;type:text" json:"url"`
	ImageURL   string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) Stamp(locationID uint, now time.Time) {
	r.LocationID = locationID
	r.CreatedAt = now
}

func (r *Review) CreatedTime() time.Time { return r.CreatedAt }
