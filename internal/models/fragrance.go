package models

import "time"

// RecentEntry records when a fragrance was added to the library. The recent
// list is kept newest-first, deduplicated by name, and capped at
// constants.RecentListMax entries.
type RecentEntry struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// WishlistEntry tracks a fragrance the user wants to buy, priced against the
// static fixture in internal/pricing.
type WishlistEntry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AddedAt       time.Time `json:"added_at"`
	LastCheckedAt time.Time `json:"last_checked_at"`
}
