package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// console serves every prompt of one run from a single input stream. On a
// terminal the tag and confirmation prompts use huh forms.
type console struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func newConsole(app *App, out io.Writer) *console {
	return &console{in: app.input(), out: out, interactive: app.interactive()}
}

// Prompt prints label and returns the next trimmed line.
func (c *console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := readPromptLine(c.in)
	return strings.TrimSpace(line), err
}

func (c *console) askTag() string {
	if !c.interactive {
		tag, _ := c.Prompt("Enter tag for this question: ")
		return tag
	}

	var tag string
	if err := tagForm(&tag).WithInput(c.in).WithOutput(c.out).Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(tag)
}

func (c *console) confirmSave(target string) bool {
	if !c.interactive {
		return promptYesNoIO(c.in, c.out, fmt.Sprintf("Save to %s? [y/N]: ", target))
	}

	var ok bool
	if err := confirmSaveForm(target, &ok).WithInput(c.in).WithOutput(c.out).Run(); err != nil {
		return false
	}
	return ok
}

func tagForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter tag for this question").
				Placeholder("skills").
				Value(value),
		),
	).WithTheme(askewHuhTheme()).WithShowHelp(false)
}

func confirmSaveForm(target string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save to %s?", target)).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(askewHuhTheme()).WithShowHelp(false)
}

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw
// terminal modes. It reads a byte at a time so successive prompts can share
// one unbuffered reader.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
