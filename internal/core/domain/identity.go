package domain

import "fmt"

// Composite identity keys address baseline entities for marks and
// edits without a lookup table. A key is derived deterministically
// from (entity kind, day index, position), so recomputing it after a
// full reload always yields the same string.
//
// Positional identity is only safe because the baseline catalog is
// frozen per release; reordering it would silently re-target every
// stored mark and edit.

// BookingKey addresses a baseline booking by day and position.
func BookingKey(dayIdx, pos int) string {
	return fmt.Sprintf("booking-%d-%d", dayIdx, pos)
}

// ActivityKey addresses a baseline free-time suggestion.
func ActivityKey(dayIdx, pos int) string {
	return fmt.Sprintf("activity-%d-%d", dayIdx, pos)
}

// StopKey addresses a road-trip stop.
func StopKey(dayIdx, pos int) string {
	return fmt.Sprintf("stop-%d-%d", dayIdx, pos)
}

// PintxoKey addresses a baseline pintxos bar by catalog position.
func PintxoKey(pos int) string {
	return fmt.Sprintf("pintxo-%d", pos)
}

// PlaceKey addresses a baseline must-see place.
func PlaceKey(pos int) string {
	return fmt.Sprintf("place-%d", pos)
}

// BilbaoKey addresses a baseline Bilbao place.
func BilbaoKey(pos int) string {
	return fmt.Sprintf("bilbao-%d", pos)
}

// FilmKey addresses a baseline film by catalog position.
func FilmKey(pos int) string {
	return fmt.Sprintf("film-%d", pos)
}

// CustomKey addresses a user-added record by its generated ID. The
// kind prefix keeps custom keys in the same namespace as positional
// keys without any chance of collision (uuids never look like "2-1").
func CustomKey(kind, id string) string {
	return fmt.Sprintf("%s-%s", kind, id)
}
