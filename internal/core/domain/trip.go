package domain

import "time"

const unknownDescription = "Unknown"

// BookingType classifies a booking within a day plan.
type BookingType string

// Available booking types.
const (
	// BookingTrain is a rail transport leg.
	BookingTrain BookingType = "train"

	// BookingHotel is overnight lodging.
	BookingHotel BookingType = "hotel"

	// BookingCar is a vehicle rental.
	BookingCar BookingType = "car"

	// BookingRestaurant is a dining reservation.
	BookingRestaurant BookingType = "restaurant"
)

// IsValid returns true if the booking type is recognised.
func (t BookingType) IsValid() bool {
	switch t {
	case BookingTrain, BookingHotel, BookingCar, BookingRestaurant:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t BookingType) String() string {
	return string(t)
}

// Description returns a human-readable description of the type.
func (t BookingType) Description() string {
	switch t {
	case BookingTrain:
		return "Train"
	case BookingHotel:
		return "Hotel"
	case BookingCar:
		return "Car rental"
	case BookingRestaurant:
		return "Restaurant"
	default:
		return unknownDescription
	}
}

// AllBookingTypes returns all booking types in display order.
func AllBookingTypes() []BookingType {
	return []BookingType{BookingTrain, BookingHotel, BookingCar, BookingRestaurant}
}

// BookingStatus tracks whether a booking still needs attention.
type BookingStatus string

// Available booking statuses.
const (
	// StatusConfirmed means the booking is done and paid for.
	StatusConfirmed BookingStatus = "confirmed"

	// StatusPending means the booking is planned but not yet made.
	StatusPending BookingStatus = "pending"

	// StatusTodo means action is required before the booking exists at all.
	StatusTodo BookingStatus = "todo"
)

// IsValid returns true if the status is recognised.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusTodo:
		return true
	default:
		return false
	}
}

// NeedsAction returns true if the booking is not yet confirmed.
func (s BookingStatus) NeedsAction() bool {
	return s == StatusPending || s == StatusTodo
}

// String returns the string representation.
func (s BookingStatus) String() string {
	return string(s)
}

// Description returns a human-readable description of the status.
func (s BookingStatus) Description() string {
	switch s {
	case StatusConfirmed:
		return "Confirmed"
	case StatusPending:
		return "To book"
	case StatusTodo:
		return "Action required"
	default:
		return unknownDescription
	}
}

// Booking is a single reservation within a day plan.
//
// Baseline bookings are identified by (day index, position) within the
// catalog; user-added bookings carry a generated ID and IsCustom=true
// so they can never collide with positional identities.
type Booking struct {
	// ID is set only for custom bookings (uuid). Empty for baseline.
	ID string `json:"id,omitempty"`

	// Type is the booking category.
	Type BookingType `json:"type"`

	// Name is the display name (train number, hotel name, ...).
	Name string `json:"name"`

	// Code is the reservation/confirmation code, if any.
	Code string `json:"code,omitempty"`

	// Phone is a contact number in dialable form.
	Phone string `json:"phone,omitempty"`

	// Address is the free-text location or route description.
	Address string `json:"address,omitempty"`

	// Time is the human-readable time window.
	Time string `json:"time,omitempty"`

	// Price is the display price, currency included.
	Price string `json:"price,omitempty"`

	// Notes is free-text remarks.
	Notes string `json:"notes,omitempty"`

	// Link is an external booking or ticket URL.
	Link string `json:"link,omitempty"`

	// Status tracks confirmation state.
	Status BookingStatus `json:"status"`

	// Train-specific fields.
	Carriage  string `json:"carriage,omitempty"`
	Seat      string `json:"seat,omitempty"`
	Class     string `json:"class,omitempty"`
	TicketPDF string `json:"ticketPdf,omitempty"`

	// IsCustom marks user-added bookings.
	IsCustom bool `json:"isCustom,omitempty"`
}

// ActivityType tags a free-time suggestion.
type ActivityType string

// Available activity types.
const (
	ActivityMustSee ActivityType = "must-see"
	ActivityFood    ActivityType = "food"
	ActivityCulture ActivityType = "culture"
	ActivityNature  ActivityType = "nature"
	ActivityLeisure ActivityType = "leisure"
)

// IsValid returns true if the activity type is recognised.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityMustSee, ActivityFood, ActivityCulture, ActivityNature, ActivityLeisure:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ActivityType) String() string {
	return string(t)
}

// Activity is a free-time suggestion attached to a day.
type Activity struct {
	// ID is set only for custom activities (uuid). Empty for baseline.
	ID string `json:"id,omitempty"`

	// Name is the activity name.
	Name string `json:"name"`

	// Description says what the activity is.
	Description string `json:"description"`

	// Duration is the expected time commitment, free text.
	Duration string `json:"duration,omitempty"`

	// Type tags the activity category.
	Type ActivityType `json:"type"`

	// MapLink is an optional maps URL.
	MapLink string `json:"mapLink,omitempty"`

	// Tips is optional advice text.
	Tips string `json:"tips,omitempty"`

	// IsCustom marks user-added activities.
	IsCustom bool `json:"isCustom,omitempty"`
}

// RoadStop is one stop on a road-trip segment.
type RoadStop struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StayTime    string   `json:"stayTime"`
	Highlights  []string `json:"highlights"`
	MapLink     string   `json:"mapLink,omitempty"`
}

// RoadTrip describes a driving segment with stops along the way.
type RoadTrip struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Duration string     `json:"duration"`
	Stops    []RoadStop `json:"stops"`
}

// FreeTime describes the unscheduled block of a day.
type FreeTime struct {
	Available   bool       `json:"available"`
	Hours       string     `json:"hours,omitempty"`
	Suggestions []Activity `json:"suggestions"`
}

// DayPlan is one day of the itinerary. Its identity is its ordinal
// index in the catalog sequence, which is stable because the baseline
// catalog is frozen per release.
type DayPlan struct {
	// Date is the display date, e.g. "1 February".
	Date string `json:"date"`

	// ISODate is the calendar date in YYYY-MM-DD form, used for
	// past/today/future comparison.
	ISODate string `json:"isoDate"`

	// DayOfWeek is the display weekday.
	DayOfWeek string `json:"dayOfWeek"`

	// Title and Subtitle describe the day.
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	// Location is the display location.
	Location string `json:"location"`

	// Bookings are the reservations of the day, in schedule order.
	Bookings []Booking `json:"bookings"`

	// FreeTime is the optional unscheduled block.
	FreeTime *FreeTime `json:"freeTime,omitempty"`

	// RoadTrip is the optional driving segment.
	RoadTrip *RoadTrip `json:"roadTrip,omitempty"`
}

// DayState classifies a day relative to the current date.
type DayState int

// Day states.
const (
	// DayFuture means the day has not started yet.
	DayFuture DayState = iota
	// DayToday means the day is in progress.
	DayToday
	// DayPast means the day is over.
	DayPast
)

// String returns the string representation of the day state.
func (s DayState) String() string {
	switch s {
	case DayFuture:
		return "future"
	case DayToday:
		return "today"
	case DayPast:
		return "past"
	default:
		return "unknown"
	}
}

// State classifies the day against now. Days with an unparsable
// ISODate are treated as future, which leaves them collapsed.
func (d DayPlan) State(now time.Time) DayState {
	date, err := time.ParseInLocation("2006-01-02", d.ISODate, now.Location())
	if err != nil {
		return DayFuture
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case date.Before(today):
		return DayPast
	case date.Equal(today):
		return DayToday
	default:
		return DayFuture
	}
}

// TodayIndex returns the index of the day matching now, or -1 if no
// day of the trip is today.
func TodayIndex(days []DayPlan, now time.Time) int {
	for i, d := range days {
		if d.State(now) == DayToday {
			return i
		}
	}
	return -1
}
