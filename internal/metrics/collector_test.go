package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kingrea/roster/internal/employee"
)

func seededCompany(c *Collector) *employee.Company {
	company := employee.New(employee.WithNotifier(c))
	for _, name := range []string{"A", "B", "C"} {
		s := employee.NewStaff()
		s.SetName(name)
		company.Staffs().Append(s)
	}
	return company
}

func TestCollectorCountsDismissals(t *testing.T) {
	c := NewCollector()
	company := seededCompany(c)

	company.President().Dismiss("A")
	company.PerformDismissalProcedure("B")

	if got := testutil.ToFloat64(c.dismissals.WithLabelValues("president")); got != 1 {
		t.Fatalf("president dismissals = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.dismissals.WithLabelValues("company")); got != 1 {
		t.Fatalf("company dismissals = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.headcount); got != 2 {
		t.Fatalf("headcount = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.releases.WithLabelValues(employee.SubjectStaff)); got != 2 {
		t.Fatalf("staff releases = %v, want 2", got)
	}
}

func TestSnapshotIsSorted(t *testing.T) {
	c := NewCollector()
	company := seededCompany(c)
	company.PerformDismissalProcedure("A")
	company.Close()

	samples, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	values := map[string]float64{}
	for i, s := range samples {
		if i > 0 && samples[i-1].Key > s.Key {
			t.Fatalf("samples not sorted: %q before %q", samples[i-1].Key, s.Key)
		}
		values[s.Key] = s.Value
	}
	checks := map[string]float64{
		"roster_headcount":                           3,
		`roster_dismissals_total{path="company"}`:    1,
		`roster_releases_total{subject="Staff"}`:     3,
		`roster_releases_total{subject="President"}`: 1,
		`roster_releases_total{subject="Company"}`:   1,
	}
	for key, want := range checks {
		if got, ok := values[key]; !ok || got != want {
			t.Fatalf("%s = %v (present %v), want %v", key, got, ok, want)
		}
	}
}
