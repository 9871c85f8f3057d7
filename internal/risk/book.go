package risk

// Book holds per-position VaR contributions keyed by position ID.
// Contributions are signed; insertion order is irrelevant.
type Book struct {
	contributions map[string]float64
}

func NewBook() *Book {
	return &Book{contributions: make(map[string]float64)}
}

// Upsert records the contribution for id, overwriting any previous
// value.
func (b *Book) Upsert(id string, contribution float64) {
	b.contributions[id] = contribution
}

// Remove deletes id from the book. Removing an absent id is a no-op,
// not an error; the return value reports whether anything was removed.
func (b *Book) Remove(id string) bool {
	if _, ok := b.contributions[id]; !ok {
		return false
	}
	delete(b.contributions, id)
	return true
}

// Contribution returns the contribution recorded for id.
func (b *Book) Contribution(id string) (float64, bool) {
	v, ok := b.contributions[id]
	return v, ok
}

// Total recomputes the aggregate VaR as the exact sum over all current
// contributions. It is never maintained incrementally, so it cannot
// drift.
func (b *Book) Total() float64 {
	var sum float64
	for _, v := range b.contributions {
		sum += v
	}
	return sum
}

// Len reports the number of open positions.
func (b *Book) Len() int {
	return len(b.contributions)
}
