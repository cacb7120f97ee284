package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// InteractiveApprover asks for a y/N confirmation on a console.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an approver reading answers from in and
// writing prompts to out.
func NewInteractiveApprover(in io.Reader, out io.Writer) *InteractiveApprover {
	return &InteractiveApprover{input: in, output: out}
}

// RequestApproval prompts until a line is read. Only "y" or "yes" approve.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(a.output, "%s already exists. Overwrite it? [y/N]: ", target)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || input == "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		}
		fmt.Fprintln(a.output, "✗ Cancelled.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ fnav.Approver = (*InteractiveApprover)(nil)
