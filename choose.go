package ask

import (
	"fmt"
	"strconv"
	"strings"
)

// Choose displays message (unless empty) and a numbered menu of options,
// then resolves the user's input to one of them. The result is always a
// 0-based index into options; the menu and every message shown to the user
// number the options from 1.
//
// Input is resolved in this order:
//
//  1. An integer is taken as the 1-based option number.
//  2. Anything else is matched, case-insensitively and ignoring
//     surrounding whitespace, as a prefix of the option texts. A unique
//     prefix selects that option; an ambiguous one lists the candidates
//     and asks again.
//
// Out-of-range numbers, unmatched prefixes, and ambiguous prefixes all
// re-prompt with guidance. If options holds exactly one entry it is
// selected automatically without reading input. An empty options list is
// a caller bug and returns ErrNoOptions before anything is displayed.
// Cancellation of the input source returns ErrCanceled.
func (a *Asker) Choose(message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	if message != "" {
		a.renderer.line(message)
	}
	a.renderer.line("Please choose one of the following options:")
	for i, option := range options {
		a.renderer.option(i+1, option)
	}
	a.renderer.line("")

	if len(options) == 1 {
		a.renderer.line(fmt.Sprintf("Only one option is available, selecting '%s'.", options[0]))
		return 0, nil
	}

	for {
		input, err := a.readLine("Type the number or the option: ")
		if err != nil {
			return 0, err
		}

		number, ok := a.resolve(input, options)
		if ok {
			// The user works with 1-based numbers; the caller gets a
			// 0-based index. This is the only place the two meet.
			index := number - 1
			if index >= 0 && index < len(options) {
				return index, nil
			}
		}
		a.renderer.line(fmt.Sprintf("Sorry, please enter a number between 1 and %d or the start of a specific option.", len(options)))
	}
}

// resolve turns one line of user input into a 1-based option number.
// Non-numeric input is resolved by prefix against the option texts; the
// zero-match and many-match cases explain themselves to the user and
// report failure so the caller re-prompts.
func (a *Asker) resolve(input string, options []string) (int, bool) {
	if number, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
		return number, true
	}

	matches := prefixMatches(input, options)
	switch len(matches) {
	case 0:
		a.renderer.line(fmt.Sprintf("No options begin with '%s'.", strings.TrimSpace(input)))
		return 0, false
	case 1:
		return matches[0] + 1, true
	default:
		a.renderer.line(fmt.Sprintf("%d options begin with '%s', please be more specific:", len(matches), strings.TrimSpace(input)))
		for _, i := range matches {
			a.renderer.option(i+1, options[i])
		}
		return 0, false
	}
}
