package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestForcedApprover_Approves(t *testing.T) {
	var output bytes.Buffer
	approver := NewForcedApproverTo(&output)

	approved, err := approver.RequestApproval(context.Background(), "/cfg/fnav.yaml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected approval")
	}
	if !strings.Contains(output.String(), "/cfg/fnav.yaml") {
		t.Errorf("Expected output to name the target, got: %q", output.String())
	}
}

func TestForcedApprover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approved, err := NewForcedApproverTo(nil).RequestApproval(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got: %v", err)
	}
	if approved {
		t.Fatal("Expected no approval on cancelled context")
	}
}

func TestInteractiveApprover_Answers(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{"yes", "y\n", true},
		{"full yes uppercase", "YES\n", true},
		{"no", "n\n", false},
		{"empty means no", "\n", false},
		{"anything else", "sure\n", false},
		{"no trailing newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			approver := NewInteractiveApprover(strings.NewReader(tt.input), &output)

			approved, err := approver.RequestApproval(context.Background(), "/cfg/fnav.yaml")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if approved != tt.expect {
				t.Errorf("approved = %v, want %v", approved, tt.expect)
			}
			if !strings.Contains(output.String(), "/cfg/fnav.yaml already exists") {
				t.Errorf("Expected prompt naming the file, got: %q", output.String())
			}
		})
	}
}

func TestInteractiveApprover_ClosedInput(t *testing.T) {
	approver := NewInteractiveApprover(strings.NewReader(""), io.Discard)

	approved, err := approver.RequestApproval(context.Background(), "x")
	if err == nil {
		t.Fatal("Expected error for closed input")
	}
	if approved {
		t.Fatal("Expected no approval")
	}
}

func TestInteractiveApprover_ContextCancellation(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approved, err := NewInteractiveApprover(reader, io.Discard).RequestApproval(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got: %v", err)
	}
	if approved {
		t.Fatal("Expected no approval on cancellation")
	}
}
