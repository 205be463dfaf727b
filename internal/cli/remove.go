package cli

import "fmt"

type RemoveCmd struct {
	Index int `arg:"" help:"Fragrance number as shown by 'scentry list'."`
}

func (c *RemoveCmd) Validate() error {
	if c.Index < 1 {
		return fmt.Errorf("index must be 1 or greater")
	}
	return nil
}

func (c *RemoveCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	// List output is 1-based
	removed, err := a.RemoveFragrance(c.Index - 1)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %s (planner and recent entries cleaned up)\n", removed)
	return nil
}
