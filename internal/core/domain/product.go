package domain

// Product is a catalog entry. Products are created and deleted, never
// updated in place; there is no update endpoint.
//
// The json tags mirror the public wire contract (_id as a hex string),
// which is also the shape cached under the "products" key.
type Product struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
