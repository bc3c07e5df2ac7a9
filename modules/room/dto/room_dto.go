package dto

// CreateRoomRequest creates or replaces a room's descriptive data. The slug
// is derived from the name server-side.
type CreateRoomRequest struct {
	Name        string   `json:"name" validate:"required"`
	Capacity    int      `json:"capacity" validate:"min=1"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Color       string   `json:"color"`
}

type UpdateRoomRequest struct {
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Color       string   `json:"color"`
}
