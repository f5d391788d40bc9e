package model

type Category struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex:idx_category_name;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
