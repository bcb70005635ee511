package domain

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MinWeek     = 1
	MaxWeek     = 40
	DefaultWeek = 20
)

var (
	// ErrWeekOutOfRange is returned for weeks outside [MinWeek, MaxWeek].
	ErrWeekOutOfRange = errors.New("week out of range")

	// ErrUnknownTrimester is returned for trimester ids other than 1, 2 or 3.
	ErrUnknownTrimester = errors.New("unknown trimester")

	// ErrUnknownRiskLevel is returned for risk levels other than low, medium or high.
	ErrUnknownRiskLevel = errors.New("unknown risk level")
)

// ValidateWeek reports whether week lies in [MinWeek, MaxWeek].
func ValidateWeek(week int) error {
	if week < MinWeek || week > MaxWeek {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrWeekOutOfRange, week, MinWeek, MaxWeek)
	}
	return nil
}

// ClampWeek pins week into [MinWeek, MaxWeek], the way a range slider does.
func ClampWeek(week int) int {
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}

// WeekRange is an inclusive span of pregnancy weeks.
type WeekRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r WeekRange) Contains(week int) bool {
	return week >= r.Start && week <= r.End
}

// String renders the range the way the cards label it, e.g. "13-26 weeks".
func (r WeekRange) String() string {
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End) + " weeks"
}
