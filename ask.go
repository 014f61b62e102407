// Package ask provides small, line-oriented building blocks for asking a
// human questions at a terminal: plain prompts, validated prompts,
// multiline input with a sentinel terminator, and numbered menu selection.
package ask

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Common errors
var (
	// ErrCanceled is returned when the input source reaches end-of-input
	// before a response is supplied, for example when the user presses
	// Ctrl+D or the piped input runs out. It is always fatal to the
	// current operation; no retry loop recovers from it.
	ErrCanceled = errors.New("ask: input canceled")
	// ErrNoOptions is returned when Choose is called with an empty option
	// list. It is reported before anything is displayed or read.
	ErrNoOptions = errors.New("ask: no options to choose from")
)

// DefaultSentinel is the line that terminates multiline input unless the
// Asker is configured otherwise.
const DefaultSentinel = ".."

// Asker asks questions on a terminal-like surface and reads the answers
// one line at a time. All operations are synchronous and blocking, and an
// Asker carries no state between calls, so the same instance can be used
// for any number of questions (including reentrantly from a validator).
type Asker struct {
	source   lineSource
	renderer *renderer
	sentinel string
}

// Config holds the configuration for an Asker.
type Config struct {
	Sentinel string    // Multiline terminator line (default "..")
	Input    io.Reader // Input override; nil means the real terminal
	Output   io.Writer // Output override; nil means stdout
}

// Option represents a configuration option for an Asker.
type Option func(*Config)

// WithSentinel sets the line that terminates multiline input. The empty
// string switches the terminator to two consecutive empty lines; see
// MultilinePrompt.
func WithSentinel(s string) Option {
	return func(c *Config) {
		c.Sentinel = s
	}
}

// WithInput reads responses from r instead of the terminal. End of r is
// reported as ErrCanceled, same as Ctrl+D on a real terminal.
func WithInput(r io.Reader) Option {
	return func(c *Config) {
		c.Input = r
	}
}

// WithOutput writes prompts, menus, and guidance to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// New creates a new Asker. Without options it talks to the real terminal:
// lines are read from the controlling tty (or stdin when stdin is not a
// terminal) and text is written to stdout.
//
// Example:
//
//	a, err := ask.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer a.Close()
//
//	name, err := a.Prompt("What is your name?")
func New(opts ...Option) (*Asker, error) {
	config := Config{
		Sentinel: DefaultSentinel,
	}
	for _, option := range opts {
		option(&config)
	}
	return newFromConfig(config)
}

func newFromConfig(config Config) (*Asker, error) {
	output := config.Output
	if output == nil {
		output = defaultOutput()
	}

	var source lineSource
	if config.Input != nil {
		source = newReaderSource(config.Input)
	} else {
		s, err := newTerminalSource()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		source = s
	}

	return &Asker{
		source:   source,
		renderer: newRenderer(output),
		sentinel: config.Sentinel,
	}, nil
}

// Close releases the underlying terminal. It is safe to call Close more
// than once.
func (a *Asker) Close() error {
	return a.source.Close()
}

// Display writes text followed by a newline to the output surface.
func (a *Asker) Display(text string) {
	a.renderer.line(text)
}

// Prompt displays text and returns the user's next line of input,
// unmodified. A single space is appended to the prompt unless it already
// ends in a space, tab, or newline, so the typed response is visually
// separated from the prompt.
func (a *Asker) Prompt(text string) (string, error) {
	return a.readLine(padPrompt(text))
}

// ValidPrompt repeats Prompt until validator accepts the response by
// returning nil. Every rejection prints a fixed notice and asks again;
// there is no retry limit. Only cancellation of the input source ends the
// loop early, in which case ErrCanceled is returned.
//
// The error returned by the validator is only a yes/no signal; its detail
// is discarded. A nil validator accepts everything.
func (a *Asker) ValidPrompt(text string, validator func(string) error) (string, error) {
	for {
		response, err := a.Prompt(text)
		if err != nil {
			return "", err
		}
		if validate(validator, response) {
			return response, nil
		}
		a.renderer.line("That was not a valid response.")
	}
}

// validate reports whether the validator accepts the response. A panic
// inside the validator counts as a rejection, not a crash.
func validate(validator func(string) error, response string) (ok bool) {
	if validator == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return validator(response) == nil
}

// MultilinePrompt displays text plus a help line naming the sentinel, then
// reads lines until a line exactly equal to the sentinel. The accumulated
// lines are returned joined by newlines, with no trailing newline; the
// sentinel itself is excluded. If the very first line is the sentinel, the
// result is the empty string.
//
// When the sentinel is configured as the empty string, input instead ends
// at two consecutive empty lines ("press enter twice"); a single blank
// line surrounded by text is kept as content.
//
// Cancellation during any read discards the partial accumulation and
// returns ErrCanceled.
func (a *Asker) MultilinePrompt(text string) (string, error) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if a.sentinel != "" {
		text += fmt.Sprintf("(To finish, type '%s' on a line by itself and press enter.)\n", a.sentinel)
	} else {
		text += "(To finish, press enter twice.)\n"
	}
	a.renderer.text(text)

	var lines []string
	blankPending := false
	for {
		line, err := a.source.ReadLine()
		if err != nil {
			return "", err
		}
		if a.sentinel == "" {
			// Empty sentinel: stop on the second consecutive empty
			// line. The first blank is held back until the next line
			// shows whether it is content or half of the terminator.
			if line == "" {
				if blankPending {
					break
				}
				blankPending = true
				continue
			}
			if blankPending {
				lines = append(lines, "")
				blankPending = false
			}
			lines = append(lines, line)
			continue
		}
		if line == a.sentinel {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// readLine displays the prompt (if any) and reads the next line.
func (a *Asker) readLine(prompt string) (string, error) {
	if prompt != "" {
		a.renderer.text(prompt)
	}
	return a.source.ReadLine()
}
