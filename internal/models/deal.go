package models

import "time"

// Deal is a single retailer offer from the price fixture.
type Deal struct {
	Retailer string  `json:"retailer"`
	Price    float64 `json:"price"`
	Discount string  `json:"discount"`
	Link     string  `json:"link"`
}

// PriceInfo is one fixture row: a fragrance's retail price and its offers.
type PriceInfo struct {
	Name        string    `json:"name"`
	RetailPrice float64   `json:"retail_price"`
	Deals       []Deal    `json:"deals"`
	LastUpdated time.Time `json:"last_updated"`
}
