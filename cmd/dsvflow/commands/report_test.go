package commands

import (
	"testing"
	"time"
)

func TestReportRangeDefaultsToCurrentMonth(t *testing.T) {
	reportFrom, reportTo = "", ""
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	start, end, err := reportRange(now)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if !start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(now) {
		t.Errorf("end = %v", end)
	}
}

func TestReportRangeEndIsInclusive(t *testing.T) {
	reportFrom, reportTo = "2025-03-01", "2025-03-10"
	defer func() { reportFrom, reportTo = "", "" }()
	start, end, err := reportRange(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if !start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	// An order created any time on the 10th must fall inside the range.
	lastMoment := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	if end.Before(lastMoment) {
		t.Errorf("end %v excludes the final day", end)
	}
	if !end.Before(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end %v spills into the next day", end)
	}
}

func TestReportRangeRejectsBadDates(t *testing.T) {
	reportFrom, reportTo = "14-03-2025", ""
	defer func() { reportFrom, reportTo = "", "" }()
	if _, _, err := reportRange(time.Now()); err == nil {
		t.Error("expected error for malformed --from")
	}
}
