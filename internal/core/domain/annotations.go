package domain

import "time"

// ChecklistItem is one packing/preparation checklist entry.
type ChecklistItem struct {
	// ID is a generated identifier (uuid).
	ID string `json:"id"`

	// Text is the item description.
	Text string `json:"text"`

	// Checked marks the item done.
	Checked bool `json:"checked"`

	// Category groups items, e.g. "documents" or "clothes".
	Category string `json:"category,omitempty"`
}

// Task is a preparation task grouped by trip leg.
type Task struct {
	// ID is a generated identifier (uuid).
	ID string `json:"id"`

	// Text is the task description.
	Text string `json:"text"`

	// Done marks the task completed.
	Done bool `json:"done"`

	// Leg is a label grouping tasks by trip segment.
	Leg string `json:"leg,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TaskProgress summarises completion over a task list.
type TaskProgress struct {
	Done  int
	Total int
}

// Ratio returns the completion ratio in [0, 1]. Zero tasks count as
// zero progress.
func (p TaskProgress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// ProgressOf computes completion over tasks.
func ProgressOf(tasks []Task) TaskProgress {
	p := TaskProgress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			p.Done++
		}
	}
	return p
}

// DiaryImage is a self-contained embedded image: the original file
// name plus the base64 payload. No external storage is involved.
type DiaryImage struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64-encoded file content
}

// DiaryEntry is one travel diary record.
type DiaryEntry struct {
	// ID is a generated identifier (uuid).
	ID string `json:"id"`

	// Date is the diary date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Title is the entry title.
	Title string `json:"title"`

	// Text is the entry body.
	Text string `json:"text"`

	// Images are embedded photo payloads, in attachment order.
	Images []DiaryImage `json:"images,omitempty"`

	// Location is optional free-text location.
	Location string `json:"location,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// BookingEdit is a partial override of a baseline booking, addressed
// by the booking's composite key. Only non-nil fields are overridden;
// everything else still comes from the baseline record. The baseline
// itself is never mutated.
type BookingEdit struct {
	Time   *string        `json:"time,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
	Code   *string        `json:"code,omitempty"`
	Phone  *string        `json:"phone,omitempty"`
	Price  *string        `json:"price,omitempty"`
	Status *BookingStatus `json:"status,omitempty"`
}

// IsZero reports whether the edit overrides nothing.
func (e BookingEdit) IsZero() bool {
	return e.Time == nil && e.Notes == nil && e.Code == nil &&
		e.Phone == nil && e.Price == nil && e.Status == nil
}

// Apply shallow-overlays the edit onto a copy of the booking and
// returns the resolved view.
func (e BookingEdit) Apply(b Booking) Booking {
	if e.Time != nil {
		b.Time = *e.Time
	}
	if e.Notes != nil {
		b.Notes = *e.Notes
	}
	if e.Code != nil {
		b.Code = *e.Code
	}
	if e.Phone != nil {
		b.Phone = *e.Phone
	}
	if e.Price != nil {
		b.Price = *e.Price
	}
	if e.Status != nil {
		b.Status = *e.Status
	}
	return b
}
