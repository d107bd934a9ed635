package planner

import (
	"JAPLAN_BACK-END/internal/models"
)

// ViewMode selects the calendar page size
type ViewMode string

const (
	ModeWeek  ViewMode = "week"
	ModeMonth ViewMode = "month"
)

const (
	weekPageSize  = 7
	monthPageSize = 35
	// weekLength is the unit for page numbering, regardless of the active
	// page size (a month page spans 5 week numbers).
	weekLength = 7
)

// Window projects a visible slice of the day sequence for week/month-style
// presentation. It is a value type: navigation methods return the moved
// window.
type Window struct {
	mode   ViewMode
	cursor int
	total  int
}

// NewWindow starts a window at the beginning of a day sequence of the given
// length. Unknown modes fall back to week view.
func NewWindow(mode ViewMode, totalDays int) Window {
	if mode != ModeMonth {
		mode = ModeWeek
	}
	if totalDays < 0 {
		totalDays = 0
	}
	return Window{mode: mode, total: totalDays}
}

// Mode returns the active view mode
func (w Window) Mode() ViewMode { return w.mode }

// Cursor returns the zero-based offset of the first visible day
func (w Window) Cursor() int { return w.cursor }

// PageSize returns 7 for week view, 35 for month view
func (w Window) PageSize() int {
	if w.mode == ModeMonth {
		return monthPageSize
	}
	return weekPageSize
}

// CanGoPrevious reports whether the window can move backwards
func (w Window) CanGoPrevious() bool { return w.cursor > 0 }

// CanGoNext reports whether another page start exists before the end
func (w Window) CanGoNext() bool { return w.cursor+w.PageSize() < w.total }

// Next advances one page. Moving past the last page start is a no-op.
func (w Window) Next() Window {
	if next := w.cursor + w.PageSize(); next < w.total {
		w.cursor = next
	}
	return w
}

// Previous moves one page back, stopping at the start
func (w Window) Previous() Window {
	w.cursor = w.cursor - w.PageSize()
	if w.cursor < 0 {
		w.cursor = 0
	}
	return w
}

// Reset returns the window to the first page
func (w Window) Reset() Window {
	w.cursor = 0
	return w
}

// SetMode switches between week and month view. Changing the page size
// resets the cursor rather than trying to keep the same day visible.
func (w Window) SetMode(mode ViewMode) Window {
	if mode != ModeWeek && mode != ModeMonth {
		return w
	}
	if mode != w.mode {
		w.mode = mode
		w.cursor = 0
	}
	return w
}

// SetTotal records a new day-sequence length after a plan resize. The cursor
// is kept; Slice clips to bounds.
func (w Window) SetTotal(totalDays int) Window {
	if totalDays < 0 {
		totalDays = 0
	}
	w.total = totalDays
	return w
}

// Slice returns the visible sub-range of days, clipped to bounds. A trailing
// page may be shorter than the page size; no synthetic days are padded in.
func (w Window) Slice(days []models.Day) []models.Day {
	start := w.cursor
	if start > len(days) {
		start = len(days)
	}
	end := w.cursor + w.PageSize()
	if end > len(days) {
		end = len(days)
	}
	return days[start:end]
}

// Page returns the 1-based current page number in week units
func (w Window) Page() int { return w.cursor/weekLength + 1 }

// TotalPages returns the page count in week units
func (w Window) TotalPages() int {
	return (w.total + weekLength - 1) / weekLength
}

// DayRange returns the 1-indexed inclusive range of visible day numbers,
// or (0, 0) for an empty sequence.
func (w Window) DayRange() (first, last int) {
	if w.total == 0 || w.cursor >= w.total {
		return 0, 0
	}
	first = w.cursor + 1
	last = w.cursor + w.PageSize()
	if last > w.total {
		last = w.total
	}
	return first, last
}
