package fnav

import "context"

// Approver confirms operations that replace an existing file,
// such as writing fnav.yaml over a customised one.
//
// Implementations:
//   - ForcedApprover: approves immediately, used with --force
//   - InteractiveApprover: asks on the terminal
type Approver interface {
	// RequestApproval asks whether target may be overwritten.
	// It returns false without error when the user declines.
	RequestApproval(ctx context.Context, target string) (bool, error)
}
