package pricing

import (
	"time"

	"github.com/julianstephens/scentry/internal/models"
)

// fixtureUpdated is the snapshot time of the bundled price data. There is no
// live pricing API; the fixture is refreshed by hand when the data is rebuilt.
var fixtureUpdated = time.Date(2025, time.July, 14, 9, 30, 0, 0, time.UTC)

// fixture is ordered: the order here drives the wishlist picker and breaks
// price ties between deals from the same row.
var fixture = []models.PriceInfo{
	{
		Name:        "Creed Aventus",
		RetailPrice: 435,
		Deals: []models.Deal{
			{Retailer: "FragranceNet", Price: 319, Discount: "27% off", Link: "https://www.fragrancenet.com/creed-aventus"},
			{Retailer: "Jomashop", Price: 329, Discount: "24% off", Link: "https://www.jomashop.com/creed-aventus"},
			{Retailer: "MaxAroma", Price: 349, Discount: "20% off", Link: "https://www.maxaroma.com/creed-aventus"},
			{Retailer: "FragranceX", Price: 359, Discount: "17% off", Link: "https://www.fragrancex.com/creed-aventus"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Dior Sauvage",
		RetailPrice: 165,
		Deals: []models.Deal{
			{Retailer: "FragranceX", Price: 119, Discount: "28% off", Link: "https://www.fragrancex.com/dior-sauvage"},
			{Retailer: "Jomashop", Price: 124, Discount: "25% off", Link: "https://www.jomashop.com/dior-sauvage"},
			{Retailer: "Walmart", Price: 139, Discount: "16% off", Link: "https://www.walmart.com/dior-sauvage"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Bleu de Chanel",
		RetailPrice: 160,
		Deals: []models.Deal{
			{Retailer: "FragranceNet", Price: 129, Discount: "19% off", Link: "https://www.fragrancenet.com/bleu-de-chanel"},
			{Retailer: "MaxAroma", Price: 134, Discount: "16% off", Link: "https://www.maxaroma.com/bleu-de-chanel"},
			{Retailer: "Jomashop", Price: 134, Discount: "16% off", Link: "https://www.jomashop.com/bleu-de-chanel"},
			{Retailer: "FragranceX", Price: 142, Discount: "11% off", Link: "https://www.fragrancex.com/bleu-de-chanel"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Acqua di Gio",
		RetailPrice: 135,
		Deals: []models.Deal{
			{Retailer: "FragranceX", Price: 89, Discount: "34% off", Link: "https://www.fragrancex.com/acqua-di-gio"},
			{Retailer: "FragranceNet", Price: 94, Discount: "30% off", Link: "https://www.fragrancenet.com/acqua-di-gio"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "La Vie Est Belle",
		RetailPrice: 145,
		Deals: []models.Deal{
			{Retailer: "FragranceNet", Price: 99, Discount: "32% off", Link: "https://www.fragrancenet.com/la-vie-est-belle"},
			{Retailer: "Jomashop", Price: 104, Discount: "28% off", Link: "https://www.jomashop.com/la-vie-est-belle"},
			{Retailer: "Walmart", Price: 112, Discount: "23% off", Link: "https://www.walmart.com/la-vie-est-belle"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Black Opium",
		RetailPrice: 130,
		Deals: []models.Deal{
			{Retailer: "FragranceX", Price: 92, Discount: "29% off", Link: "https://www.fragrancex.com/black-opium"},
			{Retailer: "MaxAroma", Price: 98, Discount: "25% off", Link: "https://www.maxaroma.com/black-opium"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Coco Mademoiselle",
		RetailPrice: 172,
		Deals: []models.Deal{
			{Retailer: "Jomashop", Price: 139, Discount: "19% off", Link: "https://www.jomashop.com/coco-mademoiselle"},
			{Retailer: "FragranceNet", Price: 144, Discount: "16% off", Link: "https://www.fragrancenet.com/coco-mademoiselle"},
			{Retailer: "FragranceX", Price: 149, Discount: "13% off", Link: "https://www.fragrancex.com/coco-mademoiselle"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Light Blue",
		RetailPrice: 112,
		Deals: []models.Deal{
			{Retailer: "FragranceNet", Price: 69, Discount: "38% off", Link: "https://www.fragrancenet.com/light-blue"},
			{Retailer: "Walmart", Price: 74, Discount: "34% off", Link: "https://www.walmart.com/light-blue"},
			{Retailer: "Jomashop", Price: 78, Discount: "30% off", Link: "https://www.jomashop.com/light-blue"},
			{Retailer: "MaxAroma", Price: 82, Discount: "27% off", Link: "https://www.maxaroma.com/light-blue"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "One Million",
		RetailPrice: 124,
		Deals: []models.Deal{
			{Retailer: "FragranceX", Price: 84, Discount: "32% off", Link: "https://www.fragrancex.com/one-million"},
			{Retailer: "FragranceNet", Price: 88, Discount: "29% off", Link: "https://www.fragrancenet.com/one-million"},
		},
		LastUpdated: fixtureUpdated,
	},
	{
		Name:        "Good Girl",
		RetailPrice: 138,
		Deals: []models.Deal{
			{Retailer: "MaxAroma", Price: 102, Discount: "26% off", Link: "https://www.maxaroma.com/good-girl"},
			{Retailer: "Jomashop", Price: 108, Discount: "22% off", Link: "https://www.jomashop.com/good-girl"},
			{Retailer: "FragranceNet", Price: 114, Discount: "17% off", Link: "https://www.fragrancenet.com/good-girl"},
		},
		LastUpdated: fixtureUpdated,
	},
}

// Names returns every fixture fragrance in fixture order.
func Names() []string {
	names := make([]string, len(fixture))
	for i, info := range fixture {
		names[i] = info.Name
	}
	return names
}

// Lookup finds a fixture row by exact name. A miss is a normal result: the
// fixture is a closed table and wishlist entries may outlive it.
func Lookup(name string) (models.PriceInfo, bool) {
	for _, info := range fixture {
		if info.Name == name {
			return info, true
		}
	}
	return models.PriceInfo{}, false
}
