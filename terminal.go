package ask

import (
	"bufio"
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// lineSource abstracts the reading half of the conversation so the same
// engine runs against a real terminal, a piped reader, or a scripted mock
// in tests.
//
// ReadLine blocks until one line of text is available and returns it with
// the trailing line terminator stripped. End-of-input is reported as
// ErrCanceled: a user closing the input stream and a user interrupting the
// program are the same event to this library, and no caller retries past
// it.
type lineSource interface {
	ReadLine() (string, error)
	Close() error
}

// terminalSource reads cooked lines for production use.
//
// When stdin is a terminal the lines come from the controlling tty via
// go-tty, so interaction still works when stdin has been redirected to
// carry data. When stdin is not a terminal (piped input, CI) the lines
// come from stdin directly. Either way the terminal stays in cooked mode;
// line editing is left to the terminal driver.
type terminalSource struct {
	tty    *tty.TTY // nil when reading from a non-terminal stdin
	in     *bufio.Reader
	closed bool // prevents double-close panics on Windows
}

func newTerminalSource() (*terminalSource, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &terminalSource{in: bufio.NewReader(os.Stdin)}, nil
	}
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &terminalSource{tty: t, in: bufio.NewReader(t.Input())}, nil
}

// defaultOutput returns the standard output surface, wrapped for ANSI
// escape processing on Windows as go-colorable requires.
func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (s *terminalSource) ReadLine() (string, error) {
	return readCookedLine(s.in)
}

func (s *terminalSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.tty != nil {
		return s.tty.Close()
	}
	return nil
}

// readerSource adapts an arbitrary io.Reader into a lineSource. Used by
// WithInput, both for programmatic input and for tests.
type readerSource struct {
	in *bufio.Reader
}

func newReaderSource(r io.Reader) *readerSource {
	return &readerSource{in: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() (string, error) {
	return readCookedLine(s.in)
}

func (s *readerSource) Close() error {
	return nil
}

// readCookedLine reads one newline-terminated line, stripping the
// terminator and mapping end-of-input to ErrCanceled. A final line without
// a trailing newline still counts; the read after it reports the
// cancellation.
func readCookedLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return chompLine(line), nil
			}
			return "", ErrCanceled
		}
		return "", err
	}
	return chompLine(line), nil
}
