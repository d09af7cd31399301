package utils

import "strings"

// NormalizeDigits strips everything but ASCII digits from a phone
// number.  Both the search query and the stored mobile numbers pass
// through this before matching, so "(123) 456-7890" and "123-456-7890"
// compare equal.
func NormalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
