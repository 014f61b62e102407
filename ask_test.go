package ask

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAsker wires an Asker to a scripted line source and a capture
// buffer, bypassing terminal initialization.
func newTestAsker(out *bytes.Buffer, lines ...string) (*Asker, *mockSource) {
	src := newMockSource(lines...)
	return &Asker{
		source:   src,
		renderer: newRenderer(out),
		sentinel: DefaultSentinel,
	}, src
}

func TestNew(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, err := New(
		WithInput(strings.NewReader("hello\n")),
		WithOutput(&out),
	)
	require.NoError(t, err)
	defer a.Close()

	got, err := a.Prompt("Say hi:")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Say hi: ", out.String())
}

func TestNewWithSentinel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, err := New(
		WithSentinel("EOF"),
		WithInput(strings.NewReader("one\ntwo\nEOF\n")),
		WithOutput(&out),
	)
	require.NoError(t, err)
	defer a.Close()

	got, err := a.MultilinePrompt("Paste the file")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", got)
	assert.Contains(t, out.String(), "(To finish, type 'EOF' on a line by itself and press enter.)\n")
}

func TestAskerCloseTwice(t *testing.T) {
	t.Parallel()

	a, err := New(WithInput(strings.NewReader("")), WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, _ := newTestAsker(&out)
	a.Display("Hello world!")
	assert.Equal(t, "Hello world!\n", out.String())
}

func TestPromptPadding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantPrompt string
	}{
		{
			name:       "appends a single space",
			text:       "Enter name",
			wantPrompt: "Enter name ",
		},
		{
			name:       "already ends in space",
			text:       "Enter name: ",
			wantPrompt: "Enter name: ",
		},
		{
			name:       "already ends in tab",
			text:       "Enter name:\t",
			wantPrompt: "Enter name:\t",
		},
		{
			name:       "already ends in newline",
			text:       "Enter name:\n",
			wantPrompt: "Enter name:\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			a, _ := newTestAsker(&out, "Alice")

			got, err := a.Prompt(tt.text)
			require.NoError(t, err)
			assert.Equal(t, "Alice", got)
			assert.Equal(t, tt.wantPrompt, out.String())
		})
	}
}

func TestPromptReturnsResponseUnmodified(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, _ := newTestAsker(&out, "  padded response  ")

	got, err := a.Prompt("Anything:")
	require.NoError(t, err)
	assert.Equal(t, "  padded response  ", got, "Prompt must not trim the response")
}

func TestPromptCanceled(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, _ := newTestAsker(&out)

	_, err := a.Prompt("Anything:")
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestValidPrompt(t *testing.T) {
	t.Parallel()

	t.Run("retries until the validator accepts", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a, src := newTestAsker(&out, "nope", "still nope", "yes")

		got, err := a.ValidPrompt("Say yes:", func(s string) error {
			if s != "yes" {
				return errors.New("not yes")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "yes", got)
		assert.Equal(t, 3, src.reads)
		assert.Equal(t, 2, strings.Count(out.String(), "That was not a valid response.\n"))
	})

	t.Run("always-failing validator retries until cancellation", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a, src := newTestAsker(&out, "a", "b", "c")

		_, err := a.ValidPrompt("Impossible:", func(string) error {
			return errors.New("never")
		})
		assert.ErrorIs(t, err, ErrCanceled)
		assert.Equal(t, 4, src.reads, "every scripted line plus the canceled read")
		assert.Equal(t, 3, strings.Count(out.String(), "That was not a valid response.\n"))
	})

	t.Run("panicking validator counts as a rejection", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a, _ := newTestAsker(&out, "boom", "fine")

		got, err := a.ValidPrompt("Anything:", func(s string) error {
			if s == "boom" {
				panic("validator exploded")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fine", got)
		assert.Contains(t, out.String(), "That was not a valid response.\n")
	})

	t.Run("nil validator accepts the first response", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a, src := newTestAsker(&out, "whatever")

		got, err := a.ValidPrompt("Anything:", nil)
		require.NoError(t, err)
		assert.Equal(t, "whatever", got)
		assert.Equal(t, 1, src.reads)
	})
}

func TestMultilinePrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentinel string
		lines    []string
		want     string
	}{
		{
			name:     "accumulates lines before the sentinel",
			sentinel: "END",
			lines:    []string{"hello", "world", "END"},
			want:     "hello\nworld",
		},
		{
			name:     "default sentinel",
			sentinel: DefaultSentinel,
			lines:    []string{"just one line", ".."},
			want:     "just one line",
		},
		{
			name:     "sentinel as the first line yields the empty string",
			sentinel: "END",
			lines:    []string{"END"},
			want:     "",
		},
		{
			name:     "interior line matching the sentinel only partially is kept",
			sentinel: "..",
			lines:    []string{"...", ".", ".."},
			want:     "...\n.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			a, _ := newTestAsker(&out, tt.lines...)
			a.sentinel = tt.sentinel

			got, err := a.MultilinePrompt("Say something")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultilinePromptHelpText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, _ := newTestAsker(&out, "..")

	_, err := a.MultilinePrompt("Say something")
	require.NoError(t, err)
	assert.Equal(t, "Say something\n(To finish, type '..' on a line by itself and press enter.)\n", out.String())
}

func TestMultilinePromptKeepsTrailingNewlineOfText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, _ := newTestAsker(&out, "..")

	_, err := a.MultilinePrompt("Say something\n")
	require.NoError(t, err)
	assert.Equal(t, "Say something\n(To finish, type '..' on a line by itself and press enter.)\n", out.String(),
		"text already ending in a newline must not gain another")
}

func TestMultilinePromptEmptySentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "two consecutive empty lines terminate",
			lines: []string{"hello", "world", "", ""},
			want:  "hello\nworld",
		},
		{
			name:  "a single interior blank line is content",
			lines: []string{"first paragraph", "", "second paragraph", "", ""},
			want:  "first paragraph\n\nsecond paragraph",
		},
		{
			name:  "pressing enter twice immediately yields the empty string",
			lines: []string{"", ""},
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			a, _ := newTestAsker(&out, tt.lines...)
			a.sentinel = ""

			got, err := a.MultilinePrompt("Say something")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "(To finish, press enter twice.)\n")
		})
	}
}

func TestMultilinePromptCanceled(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, _ := newTestAsker(&out, "partial", "accumulation")

	got, err := a.MultilinePrompt("Say something")
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Empty(t, got, "partial accumulation must be discarded on cancellation")
}
