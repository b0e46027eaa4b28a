package domain

import "time"

// ProductSnapshot is the product state embedded into an order at creation
// time. It is never refreshed: an order reflects the product as of purchase,
// even after the product changes or is deleted.
type ProductSnapshot struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

// Order belongs to exactly one subject (UserID). Orders are created and
// deleted by their owner, never updated.
type Order struct {
	ID        string          `json:"_id"`
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id"`
	Product   ProductSnapshot `json:"product"`
	Timestamp time.Time       `json:"timestamp"`
}
