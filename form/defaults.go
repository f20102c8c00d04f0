package form

// fallback returns value unless it is empty, in which case the documented
// default applies. Used in both conversion directions so the round trip is a
// left-inverse up to defaulting.
func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// fallbackCount is fallback for day/person counts, which default to 1.
func fallbackCount(value int) int {
	if value == 0 {
		return 1
	}
	return value
}
