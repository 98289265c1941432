package domain

// CREATE TABLE product (
//     id              BIGINT PRIMARY KEY,
//     name            TEXT NOT NULL,
//     "currentPrice"  NUMERIC NOT NULL DEFAULT 0,
//     "originalPrice" NUMERIC NOT NULL DEFAULT 0,
//     "imgUrl"        TEXT,
//     stock           BIGINT NOT NULL DEFAULT 0,
//     "categoryId"    BIGINT,
//     discount        NUMERIC NOT NULL DEFAULT 0
// );

// Product is a catalog record. Discount is a fraction in [0,1].
type Product struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"id"`
	Name          string  `gorm:"column:name;type:text;not null" json:"name"`
	CurrentPrice  float64 `gorm:"column:currentPrice;type:numeric" json:"currentPrice"`
	OriginalPrice float64 `gorm:"column:originalPrice;type:numeric" json:"originalPrice"`
	ImgURL        string  `gorm:"column:imgUrl;type:text" json:"imgUrl"`
	Stock         int64   `gorm:"column:stock" json:"stock"`
	CategoryID    uint64  `gorm:"column:categoryId;index" json:"categoryId"`
	Discount      float64 `gorm:"column:discount;type:numeric" json:"discount"`
}

func (Product) TableName() string {
	return "product"
}

// ScoredProduct is one recommender result.
type ScoredProduct struct {
	ProductID uint64  `json:"productId"`
	Score     float64 `json:"score"`
}

// RecommendedProduct is a ScoredProduct re-hydrated with its catalog record.
type RecommendedProduct struct {
	Product
	SimilarityScore float64 `json:"similarityScore"`
}
