package models

import "testing"

func TestStatusNextWalksTheFlow(t *testing.T) {
	status := StatusDraft
	want := []OrderStatus{StatusPending, StatusApproved, StatusProduction, StatusCompleted, StatusDelivered}
	for _, expected := range want {
		next, ok := status.Next()
		if !ok {
			t.Fatalf("Next() from %s: not ok", status)
		}
		if next != expected {
			t.Fatalf("Next() from %s = %s, want %s", status, next, expected)
		}
		status = next
	}
}

func TestStatusNextTerminal(t *testing.T) {
	if next, ok := StatusDelivered.Next(); ok || next != "" {
		t.Errorf("Next() from Delivered = (%q, %v), want no transition", next, ok)
	}
}

func TestStatusNextUnknown(t *testing.T) {
	if _, ok := OrderStatus("Cancelled").Next(); ok {
		t.Error("Next() from unknown status should not advance")
	}
}

func TestStatusValid(t *testing.T) {
	for _, st := range StatusFlow {
		if !st.Valid() {
			t.Errorf("%s should be valid", st)
		}
	}
	if OrderStatus("Archived").Valid() {
		t.Error("Archived should not be valid")
	}
}
