package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/scentry/internal/pricing"
)

type DealsCmd struct {
	Name []string `arg:"" help:"Fragrance name to look up."`
}

func (c *DealsCmd) Run(ctx *Context) error {
	name := strings.Join(c.Name, " ")
	result, ok := pricing.FindDeals(name)
	if !ok {
		fmt.Printf("No price data for %q. See tracked fragrances with 'scentry wish options'.\n", name)
		return nil
	}

	fmt.Printf("%s (retail $%.2f, prices from %s)\n", result.Name, result.RetailPrice, result.LastUpdated.Format("Jan 2, 2006"))
	for _, deal := range result.Deals {
		fmt.Printf("  $%.2f at %s (%s) %s\n", deal.Price, deal.Retailer, deal.Discount, deal.Link)
	}
	return nil
}
