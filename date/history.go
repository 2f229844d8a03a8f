package date

import (
	"iter"
	"slices"
)

// point is a single dated value in a History.
type point[T any] struct {
	on    Date
	value T
}

// History stores a chronological series of values, one per date.
// Dates are unique and the series is always sorted; appending a value on
// an existing date overwrites the previous value.
type History[T any] struct {
	points []point[T]
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.points) }

// Clear removes all points from the history.
func (h *History[T]) Clear() { h.points = h.points[:0] }

// search locates the insertion index for 'on'.
func (h *History[T]) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(h.points, on, func(p point[T], d Date) int {
		return p.on.Compare(d)
	})
}

// Append adds a point to the history, keeping it sorted.
// An existing value at that date is overwritten: the most recent write wins.
func (h *History[T]) Append(on Date, value T) *History[T] {
	i, found := h.search(on)
	if found {
		h.points[i].value = value
		return h
	}
	h.points = slices.Insert(h.points, i, point[T]{on, value})
	return h
}

// Get returns the value recorded exactly at 'day', if any.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.points[i].value, true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it. It returns false if the history has no point on or before day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.points[i].value, true
	}
	if i == 0 {
		var zero T
		return zero, false
	}
	return h.points[i-1].value, true
}

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) First() (Date, T) {
	if len(h.points) == 0 {
		var zero T
		return Date{}, zero
	}
	return h.points[0].on, h.points[0].value
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (Date, T) {
	last := len(h.points) - 1
	if last < 0 {
		var zero T
		return Date{}, zero
	}
	return h.points[last].on, h.points[last].value
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for _, p := range h.points {
			if !yield(p.on, p.value) {
				return
			}
		}
	}
}
