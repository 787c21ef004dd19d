package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single advisor invocation.
type CallEvent struct {
	Task      Task
	Model     string
	Duration  time.Duration
	Success   bool
	ErrorCode string
}

// Observer receives events about advisor calls for logging and metrics.
type Observer interface {
	CallStarted(event CallEvent)
	CallFinished(event CallEvent)
}

// LogObserver writes advisor call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) CallStarted(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] advisor_call task=%s model=%s\n", ts, event.Task, event.Model)
}

func (o *LogObserver) CallFinished(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] advisor_done task=%s model=%s duration_ms=%d status=%s\n",
		ts, event.Task, event.Model, event.Duration.Milliseconds(), status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) CallStarted(CallEvent)  {}
func (NoopObserver) CallFinished(CallEvent) {}
