package reports

import "strings"

// Slugify maps a company display name to its canonical identifier: lowercase,
// every maximal run of characters outside [a-z0-9] collapsed to a single
// hyphen, leading and trailing hyphens stripped. Distinct names that slugify
// to the same value are the same company on purpose. Symbol-only input
// yields the empty slug.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	pendingDash := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
		} else {
			pendingDash = true
		}
	}
	return b.String()
}
