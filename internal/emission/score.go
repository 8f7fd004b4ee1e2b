package emission

// Credit points awarded per activity type. Points depend only on the
// type of activity, never on quantity or emission value.
var pointsByType = map[string]int{
	"bike":  5,
	"walk":  5,
	"bus":   3,
	"train": 3,
}

// Points returns the credit points for an activity type, 0 for types
// that earn nothing.
func Points(activityType string) int {
	return pointsByType[activityType]
}
