package state

// clampCursor keeps cursor within [0, max(1, count)).
func clampCursor(cursor, count int) int {
	if count <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

func next(cursor, count int) int {
	if count <= 0 {
		return 0
	}
	return (clampCursor(cursor, count) + 1) % count
}

func prev(cursor, count int) int {
	if count <= 0 {
		return 0
	}
	return (clampCursor(cursor, count) - 1 + count) % count
}

func last(count int) int {
	if count <= 0 {
		return 0
	}
	return count - 1
}

// VisibleOffset returns the first index to draw so cursor stays inside a
// window of maxVisible rows, starting from the previous offset.
func VisibleOffset(cursor, offset, total, maxVisible int) int {
	if total <= 0 || maxVisible <= 0 {
		return 0
	}
	cursor = clampCursor(cursor, total)
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if upper := offset + maxVisible - 1; cursor > upper {
		offset = cursor - maxVisible + 1
	}
	return offset
}

// Page is a run of items that fits on a single horizontal line.
type Page struct {
	Start, End int
}

// Pages splits items into consecutive runs whose widths, each plus gap, fit
// within width. An item wider than width gets a page of its own.
func Pages(widths []int, width, gap int) []Page {
	if len(widths) == 0 {
		return nil
	}
	pages := []Page{}
	start, used := 0, 0
	for i, w := range widths {
		need := w
		if i > start {
			need += gap
		}
		if i > start && used+need > width {
			pages = append(pages, Page{Start: start, End: i})
			start, used = i, w
			continue
		}
		used += need
	}
	return append(pages, Page{Start: start, End: len(widths)})
}

// PageOf returns the index of the page containing item idx.
func PageOf(pages []Page, idx int) int {
	for i, p := range pages {
		if idx >= p.Start && idx < p.End {
			return i
		}
	}
	return 0
}
