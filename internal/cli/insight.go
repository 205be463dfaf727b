package cli

import "fmt"

type InsightCmd struct{}

func (c *InsightCmd) Run(ctx *Context) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	insight := a.Insight()
	fmt.Println(insight.Suggestion)
	if insight.MostCommon != "" {
		fmt.Printf("\nMost common: %s\n", insight.MostCommon)
	}
	if len(insight.Missing) > 0 {
		fmt.Printf("Not yet in your collection: %v\n", insight.Missing)
	}
	return nil
}
