package dto

type CreateCategoryDTO struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
