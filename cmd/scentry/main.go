package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/scentry/internal/cli"
	"github.com/julianstephens/scentry/internal/logger"
	"github.com/julianstephens/scentry/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/scentry/scentry.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize scentry storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd     `cmd:"" help:"Add a fragrance to your library."`
	Remove  cli.RemoveCmd  `cmd:"" help:"Remove a fragrance from your library."`
	List    cli.ListCmd    `cmd:"" help:"List your fragrance library."`
	Status  cli.StatusCmd  `cmd:"" help:"Show a summary of your collection."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's planned fragrance."`
	Week    cli.WeekCmd    `cmd:"" help:"Show this week's fragrance plan."`
	Assign  cli.AssignCmd  `cmd:"" help:"Plan a fragrance for a day."`
	Suggest cli.SuggestCmd `cmd:"" help:"Get a suggestion for your mood."`
	Insight cli.InsightCmd `cmd:"" help:"Analyze your collection's scent profile."`
	Deals   cli.DealsCmd   `cmd:"" help:"Look up price deals for a fragrance."`
	Wish    struct {
		Add     cli.WishAddCmd     `cmd:"" help:"Add a fragrance to your wishlist."`
		Remove  cli.WishRemoveCmd  `cmd:"" help:"Remove a wishlist entry."`
		List    cli.WishListCmd    `cmd:"" help:"Show your wishlist." default:"1"`
		Options cli.WishOptionsCmd `cmd:"" help:"Show fragrances with price tracking."`
	} `cmd:"" help:"Manage your wishlist."`
	Quiz      cli.QuizCmd      `cmd:"" help:"Take the scent preference quiz."`
	Recommend cli.RecommendCmd `cmd:"" help:"Get recommendations for a scenario."`
	Profile   struct {
		Show   cli.ProfileShowCmd   `cmd:"" help:"Show your profile." default:"1"`
		Gender cli.ProfileGenderCmd `cmd:"" help:"Set your gender preference."`
		Theme  cli.ProfileThemeCmd  `cmd:"" help:"Set or cycle the UI theme."`
	} `cmd:"" help:"Manage your profile."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored data for inconsistencies."`
	Reset    struct {
		All   cli.ResetCmd      `cmd:"" help:"Erase all scentry data." default:"1"`
		Prefs cli.ResetPrefsCmd `cmd:"" help:"Clear profile and quiz answers only."`
	} `cmd:"" help:"Reset stored data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("scentry"),
		kong.Description("Personal fragrance library, planner, and recommendation companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}

	// Storage backend follows the config file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
