package gdan

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logOutput receives every [gdan] log line.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects log lines and returns the previous writer.
func SetLogOutput(w io.Writer) io.Writer {
	prev := logOutput
	logOutput = w
	return prev
}

// Logf writes one "[gdan] ..." line.
func Logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[gdan] "+format+"\n", args...)
}

// Debugf logs only in debug mode.
func (a *App) Debugf(format string, args ...any) {
	if a.debug {
		Logf(format, args...)
	}
}

// debugStats accumulates frame timing between two debug log lines.
// Only populated when App.debug is true.
type debugStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	frames       int
	systemsRun   int
	renderersRun int
	entities     int
	gizmoLines   int
}

// debugLog prints averaged timing and counts to the log.
func (a *App) debugLog(stats debugStats) {
	if !a.debug || stats.frames == 0 {
		return
	}
	n := time.Duration(stats.frames)
	Logf("update: %v | draw: %v | frames: %d | state: %s",
		stats.updateTime/n, stats.drawTime/n, stats.frames, a.States.Current())
	Logf("systems: %d | renderers: %d | entities: %d | gizmo lines: %d",
		stats.systemsRun/stats.frames, stats.renderersRun/stats.frames, stats.entities, stats.gizmoLines)
}
