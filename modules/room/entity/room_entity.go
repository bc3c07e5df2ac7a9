package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Room is a bookable meeting room. Rooms are owned by administration; the
// booking flow only reads them.
type Room struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Slug        string         `db:"slug" json:"slug"`
	Name        string         `db:"name" json:"name"`
	Capacity    int            `db:"capacity" json:"capacity"`
	Description string         `db:"description" json:"description"`
	Amenities   pq.StringArray `db:"amenities" json:"amenities"`
	Color       string         `db:"color" json:"color"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
