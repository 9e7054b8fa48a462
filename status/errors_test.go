package status_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/andregutierrez/domainkit/status"
)

func TestInvalidTransitionError_Wrapping(t *testing.T) {
	t.Parallel()

	err := &status.InvalidTransitionError{
		DomainContext: "order",
		From:          "Pending",
		To:            "Suspended",
		EntityID:      "order-1",
	}

	if !errors.Is(err, status.ErrInvalidTransition) {
		t.Error("errors.Is(err, ErrInvalidTransition) = false, want true")
	}

	wrapped := fmt.Errorf("updating order: %w", err)
	if !errors.Is(wrapped, status.ErrInvalidTransition) {
		t.Error("errors.Is(wrapped, ErrInvalidTransition) = false, want true")
	}

	var terr *status.InvalidTransitionError
	if !errors.As(wrapped, &terr) {
		t.Fatal("errors.As(wrapped, *InvalidTransitionError) = false, want true")
	}
	if terr.To != "Suspended" {
		t.Errorf("To = %q, want \"Suspended\"", terr.To)
	}

	msg := err.Error()
	for _, part := range []string{"order", "Pending", "Suspended", "order-1"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, want it to contain %q", msg, part)
		}
	}
}

func TestMissingCurrentStatusError_Wrapping(t *testing.T) {
	t.Parallel()

	err := &status.MissingCurrentStatusError{
		DomainContext: "order",
		EntityID:      "order-1",
		Records:       3,
	}

	if !errors.Is(err, status.ErrMissingCurrentStatus) {
		t.Error("errors.Is(err, ErrMissingCurrentStatus) = false, want true")
	}

	var merr *status.MissingCurrentStatusError
	wrapped := fmt.Errorf("loading order: %w", err)
	if !errors.As(wrapped, &merr) {
		t.Fatal("errors.As(wrapped, *MissingCurrentStatusError) = false, want true")
	}
	if merr.Records != 3 {
		t.Errorf("Records = %d, want 3", merr.Records)
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidTransition", status.ErrInvalidTransition},
		{"ErrMissingCurrentStatus", status.ErrMissingCurrentStatus},
		{"ErrRecordNotCurrent", status.ErrRecordNotCurrent},
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
