package audit

import "testing"

func TestParseFilter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want Filter
	}{
		{name: "empty", in: "", want: FilterAll},
		{name: "all", in: "all", want: FilterAll},
		{name: "all uppercase", in: "ALL", want: FilterAll},
		{name: "compliant", in: "compliant", want: FilterCompliant},
		{name: "compliant mixed case padded", in: "  Compliant ", want: FilterCompliant},
		{name: "noncompliant", in: "noncompliant", want: FilterNonCompliant},
		{name: "error", in: "error", want: FilterError},
		{name: "unrecognized falls back to all", in: "severity:high", want: FilterAll},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseFilter(tc.in); got != tc.want {
				t.Fatalf("ParseFilter(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filter Filter
		status Status
		want   bool
	}{
		{FilterAll, StatusCompliant, true},
		{FilterAll, StatusNonCompliant, true},
		{FilterAll, StatusError, true},
		{FilterAll, StatusUnknown, true},
		{FilterCompliant, StatusCompliant, true},
		{FilterCompliant, StatusNonCompliant, false},
		{FilterCompliant, StatusUnknown, false},
		{FilterNonCompliant, StatusNonCompliant, true},
		{FilterNonCompliant, StatusCompliant, false},
		{FilterError, StatusError, true},
		{FilterError, StatusUnknown, true},
		{FilterError, StatusCompliant, false},
		{FilterError, StatusNonCompliant, false},
	}

	for _, tc := range cases {
		if got := tc.filter.Matches(tc.status); got != tc.want {
			t.Fatalf("Filter(%q).Matches(%q) = %v, want %v", tc.filter, tc.status, got, tc.want)
		}
	}
}

func TestApplyAllPreservesOrder(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ID: "1.1", Status: StatusNonCompliant},
		{ID: "2.2", Status: StatusCompliant},
		{ID: "3.3", Status: StatusError},
		{ID: "4.4", Status: StatusUnknown},
	}

	got := Apply(rows, FilterAll)
	if len(got) != len(rows) {
		t.Fatalf("len = %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].ID != rows[i].ID {
			t.Fatalf("got[%d].ID = %q, want %q", i, got[i].ID, rows[i].ID)
		}
	}
}

func TestApplyErrorIncludesUnknown(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ID: "1.1", Status: StatusCompliant},
		{ID: "2.2", Status: StatusError},
		{ID: "3.3", Status: StatusUnknown},
		{ID: "4.4", Status: StatusNonCompliant},
	}

	got := Apply(rows, FilterError)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "2.2" || got[1].ID != "3.3" {
		t.Fatalf("got = [%s %s], want [2.2 3.3]", got[0].ID, got[1].ID)
	}
}

func TestApplyIsStable(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ID: "c", Status: StatusNonCompliant},
		{ID: "a", Status: StatusNonCompliant},
		{ID: "b", Status: StatusCompliant},
		{ID: "d", Status: StatusNonCompliant},
	}

	got := Apply(rows, FilterNonCompliant)
	wantIDs := []string{"c", "a", "d"}
	if len(got) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("got[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestFilterNonCompliantRecord(t *testing.T) {
	t.Parallel()

	input := `{"1.1": {"title": "X", "status": "NonCompliant", "violations": ["a", "b"]}}`

	doc, err := ParseDocumentBytes([]byte(input))
	if err != nil {
		t.Fatalf("ParseDocumentBytes() error = %v", err)
	}

	rows := Normalize(doc)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.ID != "1.1" || row.Status != StatusNonCompliant || row.ViolationCount != 2 {
		t.Fatalf("row = %+v, want id 1.1 noncompliant with 2 violations", row)
	}
	if len(row.Violations) != 2 || row.Violations[0] != "a" || row.Violations[1] != "b" {
		t.Fatalf("Violations = %v, want [a b]", row.Violations)
	}

	if got := Apply(rows, FilterNonCompliant); len(got) != 1 {
		t.Fatalf("noncompliant filter excluded the row")
	}
	if got := Apply(rows, FilterCompliant); len(got) != 0 {
		t.Fatalf("compliant filter included the row")
	}
}

func TestFiltersOrder(t *testing.T) {
	t.Parallel()

	want := []Filter{FilterAll, FilterCompliant, FilterNonCompliant, FilterError}
	got := Filters()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Filters()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
