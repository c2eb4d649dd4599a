package domain

// The three mapping kinds plug into the generic merge in core/ranked through
// these methods. Identity keys join the identity fields with a unit
// separator so composite identities cannot collide

const keySep = "\x1f"

// Key implements ranked.Entry
func (a VocabAlias) Key() string { return a.Spoken + keySep + a.Canonical }

// Rank implements ranked.Entry
func (a VocabAlias) Rank() (int, string) { return a.Count, a.LastUsed }

// Seen implements ranked.Entry
func (a VocabAlias) Seen(day string) VocabAlias {
	a.Count++
	a.LastUsed = day
	return a
}

// Key implements ranked.Entry
func (m CategoryMapping) Key() string { return m.From + keySep + m.To }

// Rank implements ranked.Entry
func (m CategoryMapping) Rank() (int, string) { return m.Count, m.LastUsed }

// Seen implements ranked.Entry
func (m CategoryMapping) Seen(day string) CategoryMapping {
	m.Count++
	m.LastUsed = day
	return m
}

// Key implements ranked.Entry
func (h TimeHabit) Key() string { return h.Category + keySep + string(h.Pattern) }

// Rank implements ranked.Entry
func (h TimeHabit) Rank() (int, string) { return h.Count, h.LastUsed }

// Seen implements ranked.Entry
func (h TimeHabit) Seen(day string) TimeHabit {
	h.Count++
	h.LastUsed = day
	return h
}
