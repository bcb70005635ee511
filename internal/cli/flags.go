package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/janani/internal/domain"
	"github.com/spf13/pflag"
)

// weekFlag is a pflag.Value that only accepts weeks in [1,40]. Its
// default is timeline.default_week from the config.
type weekFlag struct {
	week int
}

var _ pflag.Value = (*weekFlag)(nil)

func newWeekFlag(def int) *weekFlag {
	return &weekFlag{week: domain.ClampWeek(def)}
}

func (f *weekFlag) String() string { return strconv.Itoa(f.week) }
func (f *weekFlag) Type() string   { return "week" }

func (f *weekFlag) Set(s string) error {
	w, err := parseWeek(s)
	if err != nil {
		return err
	}
	f.week = w
	return nil
}

func (f *weekFlag) Week() int { return f.week }

// trimesterFlag is a pflag.Value accepting 1, 2, 3 or "t2" style names.
type trimesterFlag struct {
	tri domain.Trimester
}

var _ pflag.Value = (*trimesterFlag)(nil)

func (f *trimesterFlag) String() string {
	if f.tri == domain.NoTrimester {
		return ""
	}
	return strconv.Itoa(int(f.tri))
}

func (f *trimesterFlag) Type() string { return "trimester" }

func (f *trimesterFlag) Set(s string) error {
	t, err := domain.ParseTrimester(s)
	if err != nil {
		return err
	}
	f.tri = t
	return nil
}

// parseWeek parses a week number and checks it lies in [1,40].
func parseWeek(s string) (int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrWeekOutOfRange, s)
	}
	if err := domain.ValidateWeek(w); err != nil {
		return 0, err
	}
	return w, nil
}
