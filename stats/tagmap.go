package stats

// TagMap counts occurrences of string tags, such as pair types.
type TagMap map[string]int

// Update updates all counts from another TagMap instance.
func (tm TagMap) Update(other TagMap) {
	for k, v := range other {
		tm[k] += v
	}
}

// Total returns the sum of all counts in the TagMap
func (tm TagMap) Total() (sum int) {
	for _, v := range tm {
		sum += v
	}
	return
}
