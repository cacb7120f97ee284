package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/fnav/pkg/fnav"
)

// ForcedApprover approves every request without asking.
// It is used when the --force flag is provided.
type ForcedApprover struct {
	output io.Writer
}

// NewForcedApprover creates a ForcedApprover that reports to stderr.
func NewForcedApprover() *ForcedApprover {
	return &ForcedApprover{output: os.Stderr}
}

// NewForcedApproverTo creates a ForcedApprover that reports to w.
func NewForcedApproverTo(w io.Writer) *ForcedApprover {
	if w == nil {
		w = io.Discard
	}
	return &ForcedApprover{output: w}
}

// RequestApproval approves unless ctx is already done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.output, "Overwriting %s (--force)\n", target)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ fnav.Approver = (*ForcedApprover)(nil)
