package domain

// Merge functions combine baseline entities with their edits and
// custom additions into view-ready lists. Baseline order always comes
// first, then custom entries in insertion order. Merging is
// non-destructive: inputs are never modified.

// MergedBookings returns the bookings of one day: baseline bookings
// with field edits applied, followed by the day's custom bookings.
// Edits are keyed by BookingKey(dayIdx, position).
func MergedBookings(day DayPlan, dayIdx int, edits map[string]BookingEdit, custom map[int][]Booking) []Booking {
	out := make([]Booking, 0, len(day.Bookings)+len(custom[dayIdx]))
	for pos, b := range day.Bookings {
		if e, ok := edits[BookingKey(dayIdx, pos)]; ok {
			b = e.Apply(b)
		}
		out = append(out, b)
	}
	out = append(out, custom[dayIdx]...)
	return out
}

// MergedActivities returns the free-time suggestions of one day
// followed by the day's custom activities. A day without a free-time
// block still shows its custom activities.
func MergedActivities(day DayPlan, dayIdx int, custom map[int][]Activity) []Activity {
	var base []Activity
	if day.FreeTime != nil {
		base = day.FreeTime.Suggestions
	}
	out := make([]Activity, 0, len(base)+len(custom[dayIdx]))
	out = append(out, base...)
	out = append(out, custom[dayIdx]...)
	return out
}

// MergedPintxoBars returns baseline bars followed by custom ones.
func MergedPintxoBars(baseline, custom []PintxoBar) []PintxoBar {
	out := make([]PintxoBar, 0, len(baseline)+len(custom))
	out = append(out, baseline...)
	out = append(out, custom...)
	return out
}

// MergedPlaces returns baseline places followed by custom ones.
func MergedPlaces(baseline, custom []Place) []Place {
	out := make([]Place, 0, len(baseline)+len(custom))
	out = append(out, baseline...)
	out = append(out, custom...)
	return out
}

// MergedFilms returns baseline films followed by custom ones.
func MergedFilms(baseline, custom []Film) []Film {
	out := make([]Film, 0, len(baseline)+len(custom))
	out = append(out, baseline...)
	out = append(out, custom...)
	return out
}

// DayBooking is a merged booking tagged with its owning day and its
// composite key, for the cross-day aggregate views.
type DayBooking struct {
	// DayIndex is the owning day's ordinal.
	DayIndex int

	// DayDate is the owning day's display date.
	DayDate string

	// Key is the booking's composite identity: positional for
	// baseline bookings, id-based for custom ones.
	Key string

	// Booking is the resolved (edit-applied) record.
	Booking Booking
}

// AllBookings flattens the merged bookings of every day, preserving
// day order then per-day merge order. Each entry carries its explicit
// composite key, so aggregate views never need to re-locate a booking
// by object identity.
func AllBookings(days []DayPlan, edits map[string]BookingEdit, custom map[int][]Booking) []DayBooking {
	var out []DayBooking
	for dayIdx, day := range days {
		for pos, b := range MergedBookings(day, dayIdx, edits, custom) {
			key := BookingKey(dayIdx, pos)
			if b.IsCustom {
				key = CustomKey("booking", b.ID)
			}
			out = append(out, DayBooking{
				DayIndex: dayIdx,
				DayDate:  day.Date,
				Key:      key,
				Booking:  b,
			})
		}
	}
	return out
}

// PendingBookings returns the aggregate entries still needing action,
// recomputed from the merged per-day state.
func PendingBookings(all []DayBooking) []DayBooking {
	var out []DayBooking
	for _, db := range all {
		if db.Booking.Status.NeedsAction() {
			out = append(out, db)
		}
	}
	return out
}

// BookingsByType groups aggregate entries by booking type. Group
// order follows AllBookingTypes; entries keep their flattened order.
func BookingsByType(all []DayBooking) map[BookingType][]DayBooking {
	out := make(map[BookingType][]DayBooking)
	for _, db := range all {
		out[db.Booking.Type] = append(out[db.Booking.Type], db)
	}
	return out
}
