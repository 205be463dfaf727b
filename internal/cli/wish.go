package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/scentry/internal/pricing"
)

type WishAddCmd struct {
	Name []string `arg:"" help:"Fragrance name to wish for."`
}

func (c *WishAddCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	entry, err := a.AddWish(strings.Join(c.Name, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to your wishlist\n", entry.Name)
	if result, ok := pricing.FindDeals(entry.Name); ok && len(result.Deals) > 0 {
		best := result.Deals[0]
		fmt.Printf("Best deal right now: $%.2f at %s (%s, retail $%.2f)\n",
			best.Price, best.Retailer, best.Discount, result.RetailPrice)
	}
	return nil
}

type WishRemoveCmd struct {
	Index int `arg:"" help:"Wishlist number as shown by 'scentry wish list'."`
}

func (c *WishRemoveCmd) Validate() error {
	if c.Index < 1 {
		return fmt.Errorf("index must be 1 or greater")
	}
	return nil
}

func (c *WishRemoveCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	entry, err := a.RemoveWish(c.Index - 1)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %s from your wishlist\n", entry.Name)
	return nil
}

type WishListCmd struct{}

func (c *WishListCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	wishlist := a.Wishlist()
	if len(wishlist) == 0 {
		fmt.Println("Your wishlist is empty. Add one with 'scentry wish add <name>'.")
		return nil
	}

	fmt.Printf("Wishlist (%d):\n", len(wishlist))
	for i, entry := range wishlist {
		line := fmt.Sprintf("  %d. %s (added %s)", i+1, entry.Name, entry.AddedAt.Format("Jan 2"))
		if _, ok := pricing.Lookup(entry.Name); !ok {
			line += " [no price data]"
		}
		fmt.Println(line)
	}
	return nil
}

type WishOptionsCmd struct{}

func (c *WishOptionsCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	options := a.AvailableWishOptions()
	if len(options) == 0 {
		fmt.Println("Everything with price data is already on your wishlist.")
		return nil
	}

	fmt.Println("Fragrances with price tracking:")
	for _, name := range options {
		info, _ := pricing.Lookup(name)
		fmt.Printf("  %s (retail $%.2f)\n", name, info.RetailPrice)
	}
	return nil
}
