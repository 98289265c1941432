package domain

// CREATE TABLE category (
//     id      BIGINT PRIMARY KEY,
//     name    TEXT NOT NULL
// );

type Category struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;type:text;not null" json:"name"`
}

func (Category) TableName() string {
	return "category"
}
