package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/scentry/internal/scent"
)

type AddCmd struct {
	Name []string `arg:"" help:"Fragrance name."`
}

func (c *AddCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	name := strings.Join(c.Name, " ")
	stored, err := a.AddFragrance(name)
	if err != nil {
		return err
	}

	tag := a.Classify(stored)
	fmt.Printf("Added %s %s (%s)\n", scent.VibeIcon(stored), stored, tag)
	return nil
}
