// Package progress reports per-chunk progress for long-running stages.
// Reporting is cosmetic; nothing depends on it for correctness.
package progress

import (
	"io"
	"time"

	prog "github.com/jedib0t/go-pretty/v6/progress"
)

const updateFrequency = 50 * time.Millisecond

// Tracker observes iteration over a known number of items.
type Tracker interface {
	Start(total int)
	Increment()
	Done()
}

// Bar renders a single go-pretty progress bar.
type Bar struct {
	out     io.Writer
	message string
	writer  prog.Writer
	tracker *prog.Tracker
}

// New creates a Bar writing to out with the given label.
func New(out io.Writer, message string) *Bar {
	return &Bar{out: out, message: message}
}

// Start begins rendering a bar for total items.
func (b *Bar) Start(total int) {
	pw := prog.NewWriter()
	pw.SetOutputWriter(b.out)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetUpdateFrequency(updateFrequency)
	pw.SetStyle(prog.StyleDefault)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Speed = false

	b.tracker = &prog.Tracker{Message: b.message, Total: int64(total), Units: prog.UnitsDefault}
	pw.AppendTracker(b.tracker)
	b.writer = pw

	go pw.Render()
}

// Increment advances the bar by one item.
func (b *Bar) Increment() {
	if b.tracker != nil {
		b.tracker.Increment(1)
	}
}

// Done marks the bar complete and waits for the final frame.
func (b *Bar) Done() {
	if b.writer == nil {
		return
	}
	b.tracker.MarkAsDone()
	// Let the renderer pick up the final state before stopping it.
	time.Sleep(2 * updateFrequency)
	b.writer.Stop()
	for b.writer.IsRenderInProgress() {
		time.Sleep(time.Millisecond)
	}
	b.writer, b.tracker = nil, nil
}

type nop struct{}

func (nop) Start(int)  {}
func (nop) Increment() {}
func (nop) Done()      {}

// Nop returns a Tracker that reports nothing.
func Nop() Tracker {
	return nop{}
}
