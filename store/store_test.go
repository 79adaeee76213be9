package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/stridewalk/stride/phase"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "stride_test.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func sampleSummary(start time.Time) phase.Summary {
	return phase.Summary{
		StartTime:      start,
		EndTime:        start.Add(40 * time.Minute),
		TotalDuration:  40 * time.Minute,
		BriskIntervals: 5,
		EasyIntervals:  5,
		Metrics: phase.Metrics{
			Steps:          5400,
			Distance:       4200,
			ActiveCalories: 230,
		},
	}
}

func TestSaveAndListSummaries(t *testing.T) {
	c := newTestClient(t)

	base := time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC)

	var want []phase.Summary

	for day := 0; day < 3; day++ {
		sum := sampleSummary(base.AddDate(0, 0, day))

		if err := c.SaveSummary(sum); err != nil {
			t.Fatal(err)
		}

		// most recent first
		want = append([]phase.Summary{sum}, want...)
	}

	got, err := c.ListSummaries(0)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summaries mismatch:\n%s", diff)
	}
}

func TestListSummariesLimit(t *testing.T) {
	c := newTestClient(t)

	base := time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC)

	for day := 0; day < 5; day++ {
		if err := c.SaveSummary(sampleSummary(base.AddDate(0, 0, day))); err != nil {
			t.Fatal(err)
		}
	}

	got, err := c.ListSummaries(2)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("want 2 summaries, got %d", len(got))
	}

	if !got[0].StartTime.After(got[1].StartTime) {
		t.Error("summaries not ordered most recent first")
	}
}

func TestSaveOverwritesSameStart(t *testing.T) {
	c := newTestClient(t)

	start := time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC)

	first := sampleSummary(start)
	if err := c.SaveSummary(first); err != nil {
		t.Fatal(err)
	}

	second := first
	second.Metrics.Steps = 9000

	if err := c.SaveSummary(second); err != nil {
		t.Fatal(err)
	}

	got, err := c.ListSummaries(0)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("want 1 summary, got %d", len(got))
	}

	if got[0].Metrics.Steps != 9000 {
		t.Errorf("summary not overwritten: steps = %d", got[0].Metrics.Steps)
	}
}

func TestDeleteSummary(t *testing.T) {
	c := newTestClient(t)

	sum := sampleSummary(time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC))

	if err := c.SaveSummary(sum); err != nil {
		t.Fatal(err)
	}

	if err := c.DeleteSummary(sum.StartTime); err != nil {
		t.Fatal(err)
	}

	got, err := c.ListSummaries(0)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 0 {
		t.Errorf("want no summaries after delete, got %d", len(got))
	}
}
