package ask

import (
	"fmt"
	"io"
	"strings"
)

// menuIndent is the indentation of a numbered menu entry.
const menuIndent = "    "

// renderer is the write-only half of the conversation. Output is
// append-only: unlike a full line editor there is no cursor tracking and
// no repainting, every rendered unit is simply written once. Write errors
// are not modeled; if the output surface fails there is nothing sensible
// this library could do about it.
type renderer struct {
	output io.Writer
}

func newRenderer(output io.Writer) *renderer {
	return &renderer{output: output}
}

// text writes s exactly as given, with no newline added. Used for prompts
// that leave the cursor on the same line.
func (r *renderer) text(s string) {
	fmt.Fprint(r.output, s)
}

// line writes s followed by a newline.
func (r *renderer) line(s string) {
	fmt.Fprintln(r.output, s)
}

// option writes one numbered menu entry with a 1-based number. Options
// containing embedded newlines have their continuation lines indented past
// the number so they cannot be misread as further menu entries:
//
//	    2. first line of the option
//	       continuation of the same option
//	    3. next option
func (r *renderer) option(number int, text string) {
	prefix := fmt.Sprintf("%s%d. ", menuIndent, number)
	continuation := strings.Repeat(" ", len(prefix))
	lines := strings.Split(text, "\n")
	fmt.Fprintf(r.output, "%s%s\n", prefix, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(r.output, "%s%s\n", continuation, line)
	}
}
