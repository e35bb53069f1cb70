package testutil

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/folio/internal/types"
)

// settle is how long Send waits for the program to process a message.
const settle = 50 * time.Millisecond

// TestProgram runs a Bubble Tea program against fake terminal I/O.
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	t       *testing.T
}

// syncBuffer is written by the program goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idleInput never produces bytes; every message is injected with Send.
type idleInput struct{}

func (idleInput) Read([]byte) (int, error) {
	time.Sleep(settle)
	return 0, io.EOF
}

// NewTestProgram starts model at width x height. The program is stopped
// when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	tp := &TestProgram{
		output: &syncBuffer{},
		done:   make(chan struct{}),
		t:      t,
	}
	tp.program = tea.NewProgram(
		model,
		tea.WithInput(idleInput{}),
		tea.WithOutput(tp.output),
	)

	go func() {
		defer close(tp.done)
		if _, err := tp.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			t.Logf("program error: %v", err)
		}
	}()
	t.Cleanup(tp.Quit)

	time.Sleep(settle)
	tp.Resize(width, height)
	return tp
}

// Send delivers msg and gives the program time to render.
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Resize reports a new terminal size.
func (tp *TestProgram) Resize(width, height int) {
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Type sends s one rune at a time.
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key.
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Press sends key n times.
func (tp *TestProgram) Press(key tea.KeyType, n int) {
	for range n {
		tp.SendKey(key)
	}
}

// Click sends a left-button press and release at x, y.
func (tp *TestProgram) Click(x, y int) {
	tp.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tp.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Wheel scrolls the page by one wheel notch.
func (tp *TestProgram) Wheel(down bool) {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	tp.Send(tea.MouseMsg{Button: button, Action: tea.MouseActionPress})
}

// Output returns everything the program has written so far.
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitFor polls the output until ok accepts it or timeout passes.
func (tp *TestProgram) WaitFor(ok func(output string) bool, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if ok(tp.Output()) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// WaitForOutput waits for needle to appear in the output.
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()
	return tp.WaitFor(func(out string) bool { return strings.Contains(out, needle) }, timeout)
}

// statusPrefix is the glyph the status bar puts before each message type.
var statusPrefix = map[types.MessageType]string{
	types.MessageTypeSuccess: "✓",
	types.MessageTypeError:   "✗",
	types.MessageTypeInfo:    "ℹ",
}

// WaitForStatus waits for a status message of kind containing text.
func (tp *TestProgram) WaitForStatus(kind types.MessageType, text string, timeout time.Duration) bool {
	tp.t.Helper()
	prefix := statusPrefix[kind]
	return tp.WaitFor(func(out string) bool {
		return strings.Contains(out, prefix) && strings.Contains(out, text)
	}, timeout)
}

// AssertContains fails the test unless the output contains expected.
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()
	if output := tp.Output(); !strings.Contains(output, expected) {
		tp.t.Errorf("output does not contain %q\ngot:\n%s", expected, output)
	}
}

// AssertNotContains fails the test if the output contains unexpected.
func (tp *TestProgram) AssertNotContains(unexpected string) {
	tp.t.Helper()
	if output := tp.Output(); strings.Contains(output, unexpected) {
		tp.t.Errorf("output should not contain %q\ngot:\n%s", unexpected, output)
	}
}

// Quit stops the program and waits for it to exit. Safe to call twice.
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(time.Second):
		tp.program.Kill()
		<-tp.done
	}
}
