package cli

import (
	"fmt"

	"github.com/julianstephens/scentry/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Repair conflicts that have a safe automatic fix."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	validator := validation.New()
	result := validator.Validate(state)

	fmt.Println(result.FormatReport())

	if !result.HasConflicts() || !cmd.Fix {
		return nil
	}

	fixed, actions := validation.AutoFix(result.Conflicts, state)
	if len(actions) == 0 {
		fmt.Println("Nothing auto-fixable.")
		return nil
	}

	if err := ctx.Store.SaveLibrary(fixed.Library); err != nil {
		return err
	}
	if err := ctx.Store.SavePlanner(fixed.Planner); err != nil {
		return err
	}
	if err := ctx.Store.SaveRecent(fixed.Recent); err != nil {
		return err
	}

	fmt.Println("Fixes applied:")
	for _, action := range actions {
		fmt.Printf("- %s\n", action.Action)
	}
	return nil
}

func loadState(ctx *Context) (validation.State, error) {
	library, err := ctx.Store.GetLibrary()
	if err != nil {
		return validation.State{}, fmt.Errorf("failed to load library: %w", err)
	}
	wishlist, err := ctx.Store.GetWishlist()
	if err != nil {
		return validation.State{}, fmt.Errorf("failed to load wishlist: %w", err)
	}
	planner, err := ctx.Store.GetPlanner()
	if err != nil {
		return validation.State{}, fmt.Errorf("failed to load planner: %w", err)
	}
	recent, err := ctx.Store.GetRecent()
	if err != nil {
		return validation.State{}, fmt.Errorf("failed to load recent list: %w", err)
	}

	return validation.State{
		Library:  library,
		Wishlist: wishlist,
		Planner:  planner,
		Recent:   recent,
	}, nil
}
