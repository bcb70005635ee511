package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/janani/internal/app"
	"github.com/alexanderramin/janani/internal/config"
	"github.com/alexanderramin/janani/internal/domain"
	"github.com/alexanderramin/janani/internal/service"
	"github.com/alexanderramin/janani/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

// testApp wires a full App with the real services and a non-interactive
// terminal of fixed width.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Timeline:      service.NewTimelineService(),
		Risk:          service.NewRiskGuideService(),
		Config:        config.Default(),
		Logger:        zap.NewNop(),
		IsInteractive: func() bool { return false },
		TermWidth:     func() int { return 100 },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func requireCode(t *testing.T, err error, code app.TimelineErrorCode) {
	t.Helper()
	var te *app.TimelineError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, code, te.Code)
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsTimeline(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Contains(t, out, "PREGNANCY JOURNEY TIMELINE")
	assert.Contains(t, out, "Week 20 of 40")
	assert.Contains(t, out, "Trimester 2")
}

func TestRootCmd_WeekFlag(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "--week", "34")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Week 34 of 40")
}

func TestRootCmd_ConfigDefaultWeek(t *testing.T) {
	a := testApp(t)
	a.Config.Timeline.DefaultWeek = 9

	out, err := executeCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Week 9 of 40")
}

// --- show ---

func TestShowCmd_ExpandsTrimester(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "--week", "8", "--trimester", "1")
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Contains(t, out, "Week 8 of 40")
	assert.Contains(t, out, "Trimester 1")
	assert.Contains(t, out, "Mother's Milestones")
	assert.Equal(t, 2, strings.Count(out, "View Details"))
}

func TestShowCmd_RejectsWeekOutOfRange(t *testing.T) {
	for _, w := range []string{"0", "41", "abc"} {
		t.Run(w, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), "show", "--week", w)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrWeekOutOfRange.Error())
		})
	}
}

func TestShowCmd_RejectsUnknownTrimester(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show", "--trimester", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownTrimester.Error())
}

// --- classify ---

func TestClassifyCmd_Boundaries(t *testing.T) {
	tests := []struct {
		week string
		want string
	}{
		{"1", "Trimester 1"},
		{"12", "Trimester 1"},
		{"13", "Trimester 2"},
		{"26", "Trimester 2"},
		{"27", "Trimester 3"},
		{"40", "Trimester 3"},
	}
	for _, tt := range tests {
		t.Run(tt.week, func(t *testing.T) {
			out, err := executeCmd(t, testApp(t), "classify", tt.week)
			require.NoError(t, err)
			assert.Contains(t, stripANSI(out), "Week "+tt.week+": ")
			assert.Contains(t, stripANSI(out), tt.want)
		})
	}
}

func TestClassifyCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "26", "--json")
	require.NoError(t, err)

	var resp app.ClassifyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 26, resp.Week)
	assert.Equal(t, domain.TrimesterSecond, resp.Trimester)
	assert.InDelta(t, 0.65, resp.Progress, 1e-9)
	assert.Equal(t, 14, resp.WeeksLeft)
}

func TestClassifyCmd_InvalidWeek(t *testing.T) {
	for _, w := range []string{"0", "41", "twelve"} {
		t.Run(w, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), "classify", w)
			requireCode(t, err, app.ErrInvalidWeek)
			assert.ErrorIs(t, err, domain.ErrWeekOutOfRange)
		})
	}
}

func TestClassifyCmd_RequiresWeek(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "classify")
	assert.Error(t, err)
}

// --- highlights ---

func TestHighlightsCmd_Week20(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "highlights", "--week", "20")
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Equal(t, 4, strings.Count(out, "✔"))
	assert.Contains(t, out, "Next: week 24")
}

func TestHighlightsCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "milestones", "--week", "12", "--json")
	require.NoError(t, err)

	var hs []struct {
		Week    int  `json:"week"`
		Reached bool `json:"reached"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &hs))
	require.Len(t, hs, 9)
	for _, h := range hs {
		assert.Equal(t, h.Week <= 12, h.Reached, "week %d", h.Week)
	}
}

// --- risk ---

func TestRiskCmd_AllTiers(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "risk")
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Contains(t, out, "Low Risk - Safe")
	assert.Contains(t, out, "Medium Risk - Monitor")
	assert.Contains(t, out, "High Risk - Urgent")
	assert.Contains(t, out, "REFER IMMEDIATELY")
}

func TestRiskCmd_CardColorSelectsTier(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "risk", "yellow")
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Contains(t, out, "Medium Risk - Monitor")
	assert.NotContains(t, out, "Low Risk - Safe")
	assert.NotContains(t, out, "High Risk - Urgent")
}

func TestRiskCmd_UnknownLevel(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "risk", "purple")
	requireCode(t, err, app.ErrInvalidRiskLevel)
	assert.ErrorIs(t, err, domain.ErrUnknownRiskLevel)
}

func TestRiskCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "risk", "high", "--json")
	require.NoError(t, err)

	var resp app.RiskGuideResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Tiers, 1)
	assert.Equal(t, domain.RiskHigh, resp.Tiers[0].Level)
	assert.True(t, resp.Tiers[0].ImmediateReferral)
}

func TestRiskCmd_Markdown(t *testing.T) {
	a := testApp(t)
	a.Config.Display.MarkdownStyle = "notty"

	out, err := executeCmd(t, a, "risk", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Pregnancy Risk Classification Guide")
	assert.Contains(t, out, "Show Red Card")
}

func TestRiskCmd_JSONAndMarkdownExclusive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "risk", "--json", "--markdown")
	assert.Error(t, err)
}

// --- export ---

func TestExportCmd_StdoutDefaultsToJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "export", "--week", "26")
	require.NoError(t, err)

	var resp app.TimelineResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 26, resp.Snapshot.CurrentWeek)
	assert.Equal(t, domain.TrimesterSecond, resp.Snapshot.Trimester)
}

func TestExportCmd_FormatFlag(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "export", "--format", "yaml", "--week", "8", "--trimester", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "current_week: 8")
	assert.Contains(t, out, "selected_trimester: 1")
}

func TestExportCmd_FormatFromOutPath(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"timeline.html", "<html"},
		{"timeline.svg", "<svg"},
		{"timeline.md", "# Pregnancy Journey Timeline"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			out, err := executeCmd(t, testApp(t), "export", "--out", path)
			require.NoError(t, err)
			assert.Contains(t, stripANSI(out), "Exported week 20")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}
}

func TestExportCmd_LogsWrittenFile(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	a := testApp(t)
	a.Logger = zap.New(core)

	path := filepath.Join(t.TempDir(), "week.json")
	_, err := executeCmd(t, a, "export", "--out", path, "--week", "30")
	require.NoError(t, err)

	entries := logs.FilterMessage("timeline exported").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, path, fields["path"])
	assert.Equal(t, "json", fields["format"])
	assert.EqualValues(t, 30, fields["week"])
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--format", "pdf")
	requireCode(t, err, app.ErrInvalidFormat)

	_, err = executeCmd(t, testApp(t), "export", "--out", filepath.Join(t.TempDir(), "week.pdf"))
	requireCode(t, err, app.ErrInvalidFormat)
}

func TestExportCmd_MissingDirectory(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--out", filepath.Join(t.TempDir(), "nope", "t.json"))
	require.Error(t, err)
	var te *app.TimelineError
	assert.False(t, errors.As(err, &te))
}

func TestExportCmd_FailedWriteLeavesNoFile(t *testing.T) {
	a := testApp(t)
	a.ShowTimeline = snapshotFunc(func(context.Context, app.TimelineRequest) (*app.TimelineResponse, error) {
		return nil, nil
	})

	path := filepath.Join(t.TempDir(), "week.json")
	_, err := executeCmd(t, a, "export", "--out", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write "+path)
	assert.NoFileExists(t, path)
}

// --- use-case overrides ---

type snapshotFunc func(context.Context, app.TimelineRequest) (*app.TimelineResponse, error)

func (f snapshotFunc) Snapshot(ctx context.Context, req app.TimelineRequest) (*app.TimelineResponse, error) {
	return f(ctx, req)
}

type classifyFunc func(context.Context, app.ClassifyRequest) (*app.ClassifyResponse, error)

func (f classifyFunc) Classify(ctx context.Context, req app.ClassifyRequest) (*app.ClassifyResponse, error) {
	return f(ctx, req)
}

type riskGuideFunc func(context.Context, app.RiskGuideRequest) (*app.RiskGuideResponse, error)

func (f riskGuideFunc) Guide(ctx context.Context, req app.RiskGuideRequest) (*app.RiskGuideResponse, error) {
	return f(ctx, req)
}

func TestUseCaseOverrides_FallBackToServices(t *testing.T) {
	a := testApp(t)
	assert.Equal(t, a.Timeline, a.snapshotUseCase())
	assert.Equal(t, a.Timeline, a.classifyUseCase())
	assert.Equal(t, a.Risk, a.riskGuideUseCase())
}

func TestClassifyCmd_UsesClassifyOverride(t *testing.T) {
	var got app.ClassifyRequest
	a := testApp(t)
	a.ClassifyWeek = classifyFunc(func(_ context.Context, req app.ClassifyRequest) (*app.ClassifyResponse, error) {
		got = req
		return &app.ClassifyResponse{
			Week:      req.Week,
			Trimester: domain.TrimesterThird,
			Weeks:     domain.WeekRange{Start: 27, End: 40},
			Progress:  0.75,
			Guidance:  "stubbed guidance",
			WeeksLeft: 10,
		}, nil
	})

	out, err := executeCmd(t, a, "classify", "30")
	require.NoError(t, err)
	assert.Equal(t, 30, got.Week)
	assert.Contains(t, stripANSI(out), "stubbed guidance")
}

func TestShowCmd_PropagatesSnapshotError(t *testing.T) {
	boom := errors.New("snapshot unavailable")
	a := testApp(t)
	a.ShowTimeline = snapshotFunc(func(context.Context, app.TimelineRequest) (*app.TimelineResponse, error) {
		return nil, boom
	})

	_, err := executeCmd(t, a, "show")
	assert.ErrorIs(t, err, boom)
}

func TestRiskCmd_UsesRiskGuideOverride(t *testing.T) {
	var got app.RiskGuideRequest
	a := testApp(t)
	a.RiskGuide = riskGuideFunc(func(_ context.Context, req app.RiskGuideRequest) (*app.RiskGuideResponse, error) {
		got = req
		return testutil.NewTestRiskGuide(t, domain.RiskHigh), nil
	})

	out, err := executeCmd(t, a, "risk", "red")
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, got.Level)
	out = stripANSI(out)
	assert.Contains(t, out, "High Risk - Urgent")
	assert.NotContains(t, out, "Low Risk - Safe")
}

// --- width resolution ---

func TestInteractiveFDs_RequiresStdinAndStdout(t *testing.T) {
	const stdin, stdout uintptr = 0, 1
	ttys := map[uintptr]bool{stdin: true, stdout: true}
	isTerm := func(fd uintptr) bool { return ttys[fd] }

	assert.True(t, interactiveFDs(isTerm, stdin, stdout))

	ttys[stdout] = false
	assert.False(t, interactiveFDs(isTerm, stdin, stdout), "stdout redirected to a file")

	ttys[stdin], ttys[stdout] = false, true
	assert.False(t, interactiveFDs(isTerm, stdin, stdout), "stdin piped")
}

func TestOutputWidth(t *testing.T) {
	a := testApp(t)
	assert.Equal(t, 100, a.outputWidth(0))
	assert.Equal(t, 70, a.outputWidth(70))

	a.Config.Display.Width = 90
	assert.Equal(t, 90, a.outputWidth(0))

	a.Config.Display.Width = 0
	a.TermWidth = func() int { return 0 }
	assert.Equal(t, defaultWidth, a.outputWidth(0))
}
