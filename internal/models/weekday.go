package models

// WeekdayOrder is the canonical weekday ordering used by every weekday
// aggregation and by filter validation.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// WeekdayIndex returns the position of a weekday label in WeekdayOrder,
// or -1 for an unknown label.
func WeekdayIndex(weekday string) int {
	for i, w := range WeekdayOrder {
		if w == weekday {
			return i
		}
	}
	return -1
}
