package tracker

import "worklog/internal/domain/scoring"

// ValidDimension reports whether value is one of the four IOOI dimensions.
func ValidDimension(value string) bool {
	for _, dimension := range scoring.Dimensions {
		if value == dimension {
			return true
		}
	}
	return false
}
