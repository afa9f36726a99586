// Package domain contains the core business entities for tripdeck.
//
// Entities fall into two families. Baseline entities (DayPlan, Booking,
// Activity, the guide catalogs) are statically defined trip-plan data,
// immutable for the lifetime of the process and addressed by their
// position in the catalog. Annotation entities (tasks, diary entries,
// marks, edits, custom records) are user-created, layered on top of the
// baseline and persisted locally. The merge functions in this package
// combine the two into view-ready projections without ever mutating
// the baseline.
package domain
