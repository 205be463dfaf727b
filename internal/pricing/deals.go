package pricing

import (
	"sort"
	"time"

	"github.com/julianstephens/scentry/internal/constants"
	"github.com/julianstephens/scentry/internal/models"
)

// DealResult is the outcome of a price lookup for one fragrance.
type DealResult struct {
	Name        string
	RetailPrice float64
	Deals       []models.Deal
	LastUpdated time.Time
}

// BestDeals returns up to constants.MaxDeals offers sorted ascending by
// price. The sort is stable so fixture order breaks ties.
func BestDeals(info models.PriceInfo) []models.Deal {
	deals := make([]models.Deal, len(info.Deals))
	copy(deals, info.Deals)
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Price < deals[j].Price
	})
	if len(deals) > constants.MaxDeals {
		deals = deals[:constants.MaxDeals]
	}
	return deals
}

// FindDeals looks a fragrance up in the fixture. ok=false means no price data
// exists for the name, which callers present as an informational result, not
// an error.
func FindDeals(name string) (DealResult, bool) {
	info, ok := Lookup(name)
	if !ok {
		return DealResult{Name: name}, false
	}
	return DealResult{
		Name:        info.Name,
		RetailPrice: info.RetailPrice,
		Deals:       BestDeals(info),
		LastUpdated: info.LastUpdated,
	}, true
}
