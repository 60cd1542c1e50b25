package state

// CloneItems returns a copy of items, or nil for a nil slice.
func CloneItems(items []string) []string {
	if items == nil {
		return nil
	}
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}
