// Package timeline derives every displayed fact of the pregnancy timeline
// from the current week and the selected trimester. Functions here are pure:
// no I/O, no shared state, same output for the same input.
package timeline

import (
	"github.com/alexanderramin/janani/internal/domain"
)

// Upper bounds of the first two trimesters. A boundary week belongs to the
// lower trimester: 12 is trimester 1, 26 is trimester 2.
const (
	firstTrimesterEnd  = 12
	secondTrimesterEnd = 26
)

// ClassifyTrimester maps a week in [1,40] to its trimester.
func ClassifyTrimester(week int) (domain.Trimester, error) {
	if err := domain.ValidateWeek(week); err != nil {
		return domain.NoTrimester, err
	}
	switch {
	case week <= firstTrimesterEnd:
		return domain.TrimesterFirst, nil
	case week <= secondTrimesterEnd:
		return domain.TrimesterSecond, nil
	default:
		return domain.TrimesterThird, nil
	}
}

// ProgressRatio is week/40, used only to position the slider fill and the
// current-week marker.
func ProgressRatio(week int) (float64, error) {
	if err := domain.ValidateWeek(week); err != nil {
		return 0, err
	}
	return float64(week) / float64(domain.MaxWeek), nil
}

// IsReached reports whether a week-indexed milestone or marker has been
// passed by currentWeek.
func IsReached(week, currentWeek int) bool {
	return week <= currentWeek
}

var guidance = map[domain.Trimester]string{
	domain.TrimesterFirst:  "First trimester: Critical development period. Focus on prenatal vitamins and early screening.",
	domain.TrimesterSecond: "Second trimester: Energy levels improve. Time for anatomy scan and glucose screening.",
	domain.TrimesterThird:  "Third trimester: Preparing for delivery. Regular monitoring and birth preparation.",
}

// GuidanceText returns the fixed advice line for t, or "" if t is not a
// valid trimester.
func GuidanceText(t domain.Trimester) string {
	return guidance[t]
}

// ToggleSelection is the card-click transition: clicking the selected id
// clears it (zero value), clicking any other id selects that one.
func ToggleSelection[T comparable](current, clicked T) T {
	if current == clicked {
		var none T
		return none
	}
	return clicked
}
