package domain

import "regexp"

// basic address pattern: something@something.tld, no whitespace
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Violations collects field constraint failures, keyed by field name.
type Violations map[string]string

// Add records a violation for a field.
func (v Violations) Add(field, message string) {
	v[field] = message
}

// OK reports whether no constraints were violated.
func (v Violations) OK() bool {
	return len(v) == 0
}

// Details converts violations to an error details map.
func (v Violations) Details() map[string]any {
	details := make(map[string]any, len(v))
	for field, message := range v {
		details[field] = message
	}
	return details
}
