package dto

type CreateListingDTO struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required"`
	Price       int64   `json:"price"`
	CategoryID  uint64  `json:"category_id" validate:"required"`
	Contact     string  `json:"contact" validate:"required,max=100"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type ListingDTO struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        int64   `json:"price"`
	CategoryID   uint64  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Contact      string  `json:"contact"`
	ImageURL     *string `json:"image_url,omitempty"`
	ViewsCount   int64   `json:"views_count"`
	CreatedAt    string  `json:"created_at"`
}
