// Package planner holds the itinerary core: the plan model operations, the
// catalog filter, and the view window used for week/month paging. Everything
// here is pure in-memory logic; persistence and rendering live elsewhere.
package planner

import (
	"JAPLAN_BACK-END/internal/models"
)

// defaultTripDuration is used when the preferences snapshot carries no usable
// trip duration, matching the preferences form's fallback.
const defaultTripDuration = 7

// TimeSlots are the hourly grid rows the calendar renders, in display order.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// DefaultTimeSlot is assigned when a drop does not discriminate by time
// (month view cells have no time axis).
const DefaultTimeSlot = "09:00"

// NewPlan builds an empty plan sized from the preferences snapshot, with
// days numbered 1..tripDuration.
func NewPlan(prefs models.UserPreferences) models.Plan {
	n := prefs.TripDuration
	if n < 1 {
		n = defaultTripDuration
		prefs.TripDuration = n
	}
	days := make([]models.Day, n)
	for i := range days {
		days[i] = models.Day{Day: i + 1, Items: []models.PlacedItem{}}
	}
	return models.Plan{Preferences: prefs, Days: days}
}

// Resize grows or shrinks the plan to n days. New days are appended empty;
// shrinking drops the trailing days together with their items, no salvage.
// Day numbering stays contiguous from 1. n < 1 is a no-op.
func Resize(plan models.Plan, n int) models.Plan {
	if n < 1 {
		return plan
	}
	days := make([]models.Day, 0, n)
	for i := 0; i < n && i < len(plan.Days); i++ {
		days = append(days, plan.Days[i])
	}
	for len(days) < n {
		days = append(days, models.Day{Day: len(days) + 1, Items: []models.PlacedItem{}})
	}
	plan.Days = days
	plan.Preferences.TripDuration = n
	return plan
}

// PlaceItem puts item onto the given day. Any existing occurrence of the
// same placed id is removed from every day first, so a move never leaves a
// stale copy behind and the item exists in at most one location afterwards.
// A same-day drop re-slots through the same path: strip, then re-append with
// the new time slot. Out-of-range day numbers leave the plan unchanged.
func PlaceItem(plan models.Plan, day int, item models.PlacedItem) models.Plan {
	if day < 1 || day > len(plan.Days) {
		return plan
	}
	days := make([]models.Day, len(plan.Days))
	for i, d := range plan.Days {
		items := make([]models.PlacedItem, 0, len(d.Items)+1)
		for _, it := range d.Items {
			if it.ID != item.ID {
				items = append(items, it)
			}
		}
		if d.Day == day {
			items = append(items, item)
		}
		d.Items = items
		days[i] = d
	}
	plan.Days = days
	return plan
}

// RemoveItem drops the placed item with the given id from the given day.
// Absent ids and out-of-range days are no-ops.
func RemoveItem(plan models.Plan, day int, id string) models.Plan {
	if day < 1 || day > len(plan.Days) {
		return plan
	}
	days := make([]models.Day, len(plan.Days))
	for i, d := range plan.Days {
		if d.Day == day {
			items := make([]models.PlacedItem, 0, len(d.Items))
			for _, it := range d.Items {
				if it.ID != id {
					items = append(items, it)
				}
			}
			d.Items = items
		}
		days[i] = d
	}
	plan.Days = days
	return plan
}

// TotalItems counts placed items across all days
func TotalItems(plan models.Plan) int {
	n := 0
	for _, d := range plan.Days {
		n += len(d.Items)
	}
	return n
}

// FindItem locates a placed item by id and reports the day it lives on
func FindItem(plan models.Plan, id string) (day int, item models.PlacedItem, ok bool) {
	for _, d := range plan.Days {
		for _, it := range d.Items {
			if it.ID == id {
				return d.Day, it, true
			}
		}
	}
	return 0, models.PlacedItem{}, false
}

// Normalize repairs a plan received over the wire: day numbers are rewritten
// contiguous from 1, the day count is reconciled with the preferences'
// tripDuration, nil item slices become empty ones, and duplicate placed ids
// are resolved keeping the first occurrence.
func Normalize(plan models.Plan) models.Plan {
	if plan.Preferences.TripDuration < 1 {
		if len(plan.Days) > 0 {
			plan.Preferences.TripDuration = len(plan.Days)
		} else {
			plan.Preferences.TripDuration = defaultTripDuration
		}
	}

	seen := make(map[string]bool)
	days := make([]models.Day, len(plan.Days))
	for i, d := range plan.Days {
		d.Day = i + 1
		items := make([]models.PlacedItem, 0, len(d.Items))
		for _, it := range d.Items {
			if it.ID == "" || seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			items = append(items, it)
		}
		d.Items = items
		days[i] = d
	}
	plan.Days = days

	return Resize(plan, plan.Preferences.TripDuration)
}
