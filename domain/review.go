package domain

import (
	"gorm.io/datatypes"
)

// CREATE TABLE review (
//     id          BIGINT PRIMARY KEY,
//     review      TEXT,
//     rating      INT,
//     tanggal     DATE,
//     "productId" BIGINT REFERENCES product(id)
// );

type Review struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"id"`
	Review    string         `gorm:"column:review;type:text" json:"review"`
	Rating    int            `gorm:"column:rating" json:"rating"`
	Tanggal   datatypes.Date `gorm:"column:tanggal" json:"tanggal"`
	ProductID uint64         `gorm:"column:productId;index" json:"productId"`
}

func (Review) TableName() string {
	return "review"
}

// ReviewSummary is the extractive summary of a product's or category's reviews.
// ProductID carries the requested id as text, matching the original response.
type ReviewSummary struct {
	ProductID string `json:"productId"`
	Summary   string `json:"summary"`
}
