package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Erase your library, wishlist, planner, and profile?").
				Description("This cannot be undone.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := a.ResetAll(); err != nil {
		return err
	}
	fmt.Println("All scentry data has been reset.")
	return nil
}

type ResetPrefsCmd struct{}

func (c *ResetPrefsCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	if err := a.ResetPreferences(); err != nil {
		return err
	}
	fmt.Println("Profile and quiz answers cleared. Your library is untouched.")
	return nil
}
