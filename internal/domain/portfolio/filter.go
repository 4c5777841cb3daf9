package portfolio

// AllToken selects every item in a filter.
const AllToken = "all"

// Filter returns the items whose key equals token. AllToken and the empty
// token return a copy of the whole collection; an unknown token returns an
// empty slice.
func Filter[T any](items []T, token string, key func(T) string) []T {
	if token == "" || token == AllToken {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0)
	for _, it := range items {
		if key(it) == token {
			out = append(out, it)
		}
	}
	return out
}
