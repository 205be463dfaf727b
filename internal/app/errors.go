package app

import "fmt"

// ValidationError reports an empty or blank required input. A rejected
// operation leaves every collection unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DuplicateError reports a name collision: case-insensitive in the library,
// exact in the wishlist.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%q is already present", e.Name)
}

// IndexError reports an out-of-bounds index on a removal.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds (length %d)", e.Index, e.Length)
}

// NotInCatalogError reports an attempt to plan a fragrance that is not in the
// library.
type NotInCatalogError struct {
	Name string
}

func (e *NotInCatalogError) Error() string {
	return fmt.Sprintf("%q is not in your library", e.Name)
}
