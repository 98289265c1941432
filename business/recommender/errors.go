package recommender

import "errors"

var (
	ErrEmptyCorpus        = errors.New("catalog is empty")
	ErrProductNotFound    = errors.New("product not found in catalog")
	ErrDuplicateProductID = errors.New("duplicate product id in catalog")
)
