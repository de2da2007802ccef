package domain

// Part is a single inventory line. Identity is the SKU; Stock is the
// quantity currently on hand and never goes below zero.
type Part struct {
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}
