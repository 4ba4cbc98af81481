package neighborhood

// TabuList is a bounded FIFO of TabuAttribute values. Re-inserting an
// attribute already present rotates it to the tail instead of growing the
// list (spec §8 property 7); the head is evicted only once the capacity is
// exceeded by a genuinely new entry.
type TabuList struct {
	capacity int
	order    []string
	attrs    map[string]TabuAttribute
}

// NewTabuList returns an empty TabuList bounded at capacity entries. A
// non-positive capacity behaves as an always-empty list (used by
// post-optimization's greedy descent, spec §4.E "tabu capacity 0").
func NewTabuList(capacity int) *TabuList {
	return &TabuList{
		capacity: capacity,
		attrs:    make(map[string]TabuAttribute),
	}
}

// Contains reports whether t is currently tabu.
func (l *TabuList) Contains(t TabuAttribute) bool {
	_, ok := l.attrs[t.Key()]

	return ok
}

// Insert records t, rotating it to the tail if already present, and
// evicting the head entry once capacity is exceeded.
func (l *TabuList) Insert(t TabuAttribute) {
	if l.capacity <= 0 {
		return
	}
	key := t.Key()
	if _, ok := l.attrs[key]; ok {
		l.removeFromOrder(key)
		l.order = append(l.order, key)

		return
	}

	l.attrs[key] = t
	l.order = append(l.order, key)
	if len(l.order) > l.capacity {
		head := l.order[0]
		l.order = l.order[1:]
		delete(l.attrs, head)
	}
}

// Clear empties the list, used on restart (spec §4.E step 5).
func (l *TabuList) Clear() {
	l.order = nil
	l.attrs = make(map[string]TabuAttribute)
}

// Len reports the current entry count.
func (l *TabuList) Len() int {
	return len(l.order)
}

// Entries returns the current attributes in insertion (FIFO) order, oldest
// first. Used by report rows (spec §6 Logger.log receives "the full tabu
// list at that moment").
func (l *TabuList) Entries() []TabuAttribute {
	out := make([]TabuAttribute, len(l.order))
	for i, key := range l.order {
		out[i] = l.attrs[key]
	}

	return out
}

func (l *TabuList) removeFromOrder(key string) {
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)

			return
		}
	}
}
