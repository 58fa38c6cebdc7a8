package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CleanStringPtr cleans *s in place. Nil is left alone.
func CleanStringPtr(s *string) {
	if s != nil {
		*s = CleanString(*s)
	}
}

// CleanStrings cleans every item and drops the blank ones.
func CleanStrings(list []string) []string {
	cleaned := make([]string, 0, len(list))
	for _, item := range list {
		if item = CleanString(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}
