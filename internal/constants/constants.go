package constants

const (
	// Storage keys. Each key is persisted independently: the JSON store keeps
	// one file per key, the SQLite store one table per key.
	KeyLibrary  = "library"
	KeyWishlist = "wishlist"
	KeyPlanner  = "weekly_planner"
	KeyRecent   = "recently_added"
	KeyAnswers  = "questionnaire_answers"
	KeyProfile  = "profile"

	// RecentListMax caps the recently-added list. Adding beyond the cap evicts
	// the oldest entry.
	RecentListMax = 6

	// MaxDeals caps how many offers a price lookup returns.
	MaxDeals = 3

	// DayKeyFormat is the calendar-date layout used for planner map keys.
	DayKeyFormat = "2006-01-02"

	DefaultTheme = "neutral"
)
