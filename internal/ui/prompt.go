package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// LineConfirmer prints the question and reads one line. Only "y" or "Y"
// is an agreement; anything else, EOF included, is a refusal.
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c LineConfirmer) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintln(c.Out, WarningStyle.Render(question)); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// FormConfirmer shows an interactive confirmation form.
type FormConfirmer struct{}

func (FormConfirmer) Confirm(question string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return ok, nil
}

// AssumeYes agrees to everything without asking.
type AssumeYes struct{}

func (AssumeYes) Confirm(string) (bool, error) {
	return true, nil
}

// NewConfirmer returns a FormConfirmer when both ends are terminals and a
// LineConfirmer otherwise.
func NewConfirmer(in io.Reader, out io.Writer) Confirmer {
	if isTerminal(in) && isTerminal(out) {
		return FormConfirmer{}
	}
	return LineConfirmer{In: in, Out: out}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
