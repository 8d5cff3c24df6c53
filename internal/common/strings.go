package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first non-empty string, or "" if all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
