package typeahead

// NextIndex moves current by direction over a list of n options.
// Moving past the last option lands on -1 (the raw input); moving before -1
// lands on the last option.
func NextIndex(current, direction, n int) int {
	last := n - 1
	next := ClampIndex(current, n) + direction
	if next > last {
		return -1
	}
	if next < -1 {
		return last
	}
	return next
}

// ClampIndex returns index when it addresses an option of a list of n, else -1.
func ClampIndex(index, n int) int {
	if index < -1 || index > n-1 {
		return -1
	}
	return index
}

// ScrollOffset returns the scroll offset that shows a row fully within a viewport.
// The second result is false when the row is already fully visible.
func ScrollOffset(rowTop, rowHeight, scrollTop, viewportHeight int) (int, bool) {
	rowBottom := rowTop + rowHeight
	switch {
	case rowTop < scrollTop:
		return rowTop, true
	case rowBottom > scrollTop+viewportHeight:
		if rowHeight >= viewportHeight {
			return rowTop, true
		}
		return rowBottom - viewportHeight, true
	}
	return scrollTop, false
}
