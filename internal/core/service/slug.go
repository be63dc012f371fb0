package service

import (
	"strconv"
	"strings"
)

// slugify lowers a title into a URL-safe slug. Slugs are display sugar:
// derived, not guaranteed unique unless the caller deduplicates.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueSlug appends -2, -3, ... until the slug is free among taken.
func uniqueSlug(base string, taken map[string]bool) string {
	if base == "" {
		base = "untitled"
	}
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken[candidate] {
			return candidate
		}
	}
}
