// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds, so async message flows (like a
// lazily fetched report) resolve deterministically without goroutines.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth caps command draining to prevent infinite loops.
const maxDrainDepth = 100

// cmdTimeout is how long to wait for a Cmd before skipping it. Real Cmds
// (service calls, message factories) return in microseconds; ticker-style
// Cmds block far longer and are skipped.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The runtime
	// normally intercepts it before the model, so the driver detects it
	// explicitly.
	Quitting bool
}

// New creates a Driver and runs the model's Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drain(model.Init(), 0)
	return d
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a character key.
func (d *Driver) Press(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// View returns the rendered output of the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := execWithTimeout(cmd)
	if msg == nil {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// execWithTimeout runs a Cmd in a goroutine, returning nil if it does not
// complete within cmdTimeout.
func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
