package entity

// Candidate is a value offered to the typeahead, tagged with where it came from.
type Candidate struct {
	Value  string `json:"value"`
	Source string `json:"source"`
}

// CandidateValues returns the values of candidates in order.
func CandidateValues(candidates []Candidate) []string {
	values := make([]string, len(candidates))
	for i, c := range candidates {
		values[i] = c.Value
	}
	return values
}
