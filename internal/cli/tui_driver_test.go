package cli

import (
	"testing"

	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/teatest"
	"github.com/alexanderramin/janani/internal/timeline"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string { return ansi.Strip(s) }

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, timeline state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver opens the TUI at week and drains Init(). The terminal is
// tall enough to show the week panel and every collapsed card.
func NewTestDriver(t *testing.T, app *App, week int) *TestDriver {
	t.Helper()

	m := newAppModel(app, week)
	d := teatest.New(t, m, teatest.WithSize(120, 60))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient line shown under the active view.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// Timeline returns the timeline view at the bottom of the stack.
func (d *TestDriver) Timeline() *timelineView {
	d.T.Helper()
	m := d.appModel()
	require.NotEmpty(d.T, m.viewStack)
	tv, ok := m.viewStack[0].(*timelineView)
	require.True(d.T, ok, "bottom view is %T", m.viewStack[0])
	return tv
}

// Week returns the current slider position.
func (d *TestDriver) Week() int {
	return d.Timeline().tl.CurrentWeek
}

// Selected returns the expanded trimester card.
func (d *TestDriver) Selected() domain.Trimester {
	return d.Timeline().tl.Selected
}

// Snapshot derives the facts currently shown by the timeline.
func (d *TestDriver) Snapshot() timeline.Snapshot {
	d.T.Helper()
	snap, err := d.Timeline().Snapshot()
	require.NoError(d.T, err)
	return snap
}
