package domain

// Selector picks one candidate out of a provider's ranked result list.
type Selector[T any] interface {
	Select(candidates []T) (T, bool)
}

// FirstMatchStrategy takes the provider's first (highest ranked) candidate
// and makes no quality comparison between candidates.
type FirstMatchStrategy[T any] struct{}

func (FirstMatchStrategy[T]) Select(candidates []T) (T, bool) {
	if len(candidates) == 0 {
		var zero T
		return zero, false
	}
	return candidates[0], true
}
