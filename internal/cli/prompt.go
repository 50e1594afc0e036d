package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Prompter asks the user for one line of text.
type Prompter interface {
	// Ask shows suggestion and returns the answer. An empty answer accepts
	// the suggestion.
	Ask(label, suggestionLabel, suggestion string) (string, error)
}

// newPrompter returns a line editor prefilled with the suggestion when in
// and out are both terminals. Otherwise it returns a plain line reader that
// writes its prompts to errOut, keeping out for command output.
func newPrompter(in io.Reader, out, errOut io.Writer) Prompter {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)

	if inOK && outOK && isTerminal(inFile.Fd()) && isTerminal(outFile.Fd()) {
		return linerPrompter{}
	}

	return &plainPrompter{in: in, out: errOut}
}

// linerPrompter edits the suggestion in place on the terminal.
type linerPrompter struct{}

func (linerPrompter) Ask(label, _, suggestion string) (string, error) {
	state := liner.NewLiner()
	defer state.Close()

	state.SetCtrlCAborts(true)

	answer, err := state.PromptWithSuggestion(label, suggestion, -1)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errAborted
		}

		return "", fmt.Errorf("reading answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return suggestion, nil
	}

	return answer, nil
}

// plainPrompter prints the suggestion on its own line and reads the answer
// from in.
type plainPrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func (p *plainPrompter) Ask(label, suggestionLabel, suggestion string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s%s\n%s", suggestionLabel, suggestion, label)

	if p.in == nil {
		_, _ = fmt.Fprintln(p.out)

		return suggestion, nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	// Piped input is not echoed.
	_, _ = fmt.Fprintln(p.out)

	answer := strings.TrimSpace(line)
	if answer == "" {
		return suggestion, nil
	}

	return answer, nil
}
