package domain

// CREATE TABLE prediction (
//     "productId"          BIGINT PRIMARY KEY REFERENCES product(id),
//     sentiment_positive   INT NOT NULL DEFAULT 0,
//     sentiment_negative   INT NOT NULL DEFAULT 0,
//     sentiment_neutral    INT NOT NULL DEFAULT 0
// );

// SentimentPrediction holds per-product review sentiment counts written by the
// classification batch job.
type SentimentPrediction struct {
	ProductID         uint64 `gorm:"primaryKey;column:productId" json:"productId"`
	SentimentPositive int    `gorm:"column:sentiment_positive" json:"sentimentPositive"`
	SentimentNegative int    `gorm:"column:sentiment_negative" json:"sentimentNegative"`
	SentimentNeutral  int    `gorm:"column:sentiment_neutral" json:"sentimentNeutral"`
}

func (SentimentPrediction) TableName() string {
	return "prediction"
}

// Total is the number of classified reviews.
func (s SentimentPrediction) Total() int {
	return s.SentimentPositive + s.SentimentNegative + s.SentimentNeutral
}
