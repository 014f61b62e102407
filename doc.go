// Package ask provides line-oriented terminal interaction helpers.
//
// The package covers the small questions command-line programs keep
// re-implementing: show a prompt and read one line, retry until a response
// validates, collect a multi-line block terminated by a sentinel line, and
// let the user pick from a numbered menu by number, by option text, or by
// an unambiguous prefix of it.
//
// Everything is synchronous, blocking, and stateless between calls. Input
// stays in the terminal's cooked mode, so the terminal itself supplies
// whatever line editing it normally offers.
//
// Quick Start:
//
//	package main
//
//	import (
//		"errors"
//		"fmt"
//		"log"
//
//		"github.com/mashiro/ask"
//	)
//
//	func main() {
//		a, err := ask.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer a.Close()
//
//		flavors := []string{"vanilla", "chocolate", "strawberry"}
//		i, err := a.Choose("What flavor would you like?", flavors)
//		if errors.Is(err, ask.ErrCanceled) {
//			return // user pressed Ctrl+D
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("One %s coming up.\n", flavors[i])
//	}
//
// Menu Selection:
//
// Choose renders its options numbered from 1 and accepts either the
// number or the start of an option's text, compared case-insensitively
// with surrounding whitespace ignored. "2", "banana", and "ban" all select
// a "Banana" option. When a prefix matches several options the candidates
// are listed and the user is asked to be more specific; selection is never
// guessed. The returned index is always 0-based.
//
// Multiline Input:
//
// MultilinePrompt accumulates lines until a line equal to the sentinel
// (".." unless configured with WithSentinel). With an empty sentinel the
// input instead ends at two consecutive empty lines.
//
// Error Handling:
//
// Two errors cover every failure the caller can see:
//
//   - ask.ErrCanceled: the input ended (Ctrl+D, closed pipe). Fatal to the
//     operation in progress; partial input is discarded.
//   - ask.ErrNoOptions: Choose was called with an empty option list. This
//     is a caller bug and is reported before anything is displayed.
//
// Invalid responses are never errors: every prompting operation explains
// the rejection to the user and asks again.
//
// Testing:
//
// WithInput and WithOutput redirect the conversation to any io.Reader and
// io.Writer, which makes scripted tests (and non-interactive use) trivial:
//
//	a, _ := ask.New(
//		ask.WithInput(strings.NewReader("banana\n")),
//		ask.WithOutput(&buf),
//	)
package ask
