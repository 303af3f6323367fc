package services

import (
	"sort"
	"testing"
	"time"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

func summaryNamed(name string) *ContactSummary {
	return &ContactSummary{Contact: &types.Contact{Name: name}}
}

func sortedNames(summaries []*ContactSummary, sortBy string) []string {
	cmp := ContactComparatorFor(sortBy)
	out := append([]*ContactSummary(nil), summaries...)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	names := make([]string, len(out))
	for i, s := range out {
		names[i] = s.Name
	}
	return names
}

func TestContactComparatorNameIsCaseInsensitive(t *testing.T) {
	in := []*ContactSummary{
		summaryNamed("delta"),
		summaryNamed("Alpha"),
		summaryNamed("charlie"),
		summaryNamed("Bravo"),
	}
	got := sortedNames(in, SortByName)
	want := []string{"Alpha", "Bravo", "charlie", "delta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name order: want=%v got=%v", want, got)
		}
	}
}

func TestContactComparatorUnknownSortFallsBackToName(t *testing.T) {
	in := []*ContactSummary{summaryNamed("b"), summaryNamed("a")}
	got := sortedNames(in, "bogus")
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("fallback order: got=%v", got)
	}
}

func TestContactComparatorPriorityUnrankedLast(t *testing.T) {
	ranked := &ContactSummary{Contact: &types.Contact{Name: "ranked", PriorityRank: intPtr(5)}}
	top := &ContactSummary{Contact: &types.Contact{Name: "top", PriorityRank: intPtr(0)}}
	unranked := summaryNamed("unranked")

	got := sortedNames([]*ContactSummary{unranked, ranked, top}, SortByPriority)
	want := []string{"top", "ranked", "unranked"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priority order: want=%v got=%v", want, got)
		}
	}
}

func TestContactComparatorStatusPrecedence(t *testing.T) {
	client := &ContactSummary{Contact: &types.Contact{Name: "client", IsClient: true, IsDead: true}}
	traction := &ContactSummary{Contact: &types.Contact{Name: "traction", HasTraction: true, IsJammed: true}}
	none := summaryNamed("none")
	jammed := &ContactSummary{Contact: &types.Contact{Name: "jammed", IsJammed: true}}
	dead := &ContactSummary{Contact: &types.Contact{Name: "dead", IsDead: true}}

	got := sortedNames([]*ContactSummary{dead, jammed, none, traction, client}, SortByStatus)
	want := []string{"client", "traction", "none", "jammed", "dead"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("status order: want=%v got=%v", want, got)
		}
	}
}

func TestContactComparatorRecencyMostRecentFirstAbsentLast(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	recent := summaryNamed("recent")
	recent.LastCallDate = timePtr(now.AddDate(0, 0, -1))
	stale := summaryNamed("stale")
	stale.LastEmailDate = timePtr(now.AddDate(0, 0, -200))
	never := summaryNamed("never")

	got := sortedNames([]*ContactSummary{never, stale, recent}, SortByRecency)
	want := []string{"recent", "stale", "never"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("recency order: want=%v got=%v", want, got)
		}
	}
}

func TestContactComparatorRecencyUsesLaterOfCallAndEmail(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	a := summaryNamed("a")
	a.LastCallDate = timePtr(now.AddDate(0, 0, -30))
	a.LastEmailDate = timePtr(now.AddDate(0, 0, -2))
	b := summaryNamed("b")
	b.LastCallDate = timePtr(now.AddDate(0, 0, -10))

	got := sortedNames([]*ContactSummary{b, a}, SortByRecency)
	if got[0] != "a" {
		t.Fatalf("later email must win over older call: got=%v", got)
	}
}

func TestSupplierComparatorRecency(t *testing.T) {
	d := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	active := &SupplierSummary{Supplier: &types.Supplier{Name: "active"}, LastOrderDate: &d}
	idle := &SupplierSummary{Supplier: &types.Supplier{Name: "idle"}}

	cmp := SupplierComparatorFor(SortByRecency)
	if cmp(active, idle) >= 0 {
		t.Fatalf("supplier with orders must sort before one without")
	}
}

func TestTaskComparatorDueDateDefaultUndatedLast(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	soon := &TaskSummary{Task: &types.Task{Title: "soon", DueDate: timePtr(now.AddDate(0, 0, 1))}}
	later := &TaskSummary{Task: &types.Task{Title: "later", DueDate: timePtr(now.AddDate(0, 0, 30))}}
	undated := &TaskSummary{Task: &types.Task{Title: "undated"}}

	cmp := TaskComparatorFor("")
	in := []*TaskSummary{undated, later, soon}
	sort.SliceStable(in, func(i, j int) bool { return cmp(in[i], in[j]) < 0 })
	want := []string{"soon", "later", "undated"}
	for i := range want {
		if in[i].Title != want[i] {
			t.Fatalf("task order: want=%v got=[%s %s %s]", want, in[0].Title, in[1].Title, in[2].Title)
		}
	}
}

func TestComparatorsAreTotalOnEqualKeys(t *testing.T) {
	a := summaryNamed("same")
	b := summaryNamed("same")
	for _, sortBy := range []string{SortByName, SortByPriority, SortByStatus, SortByRecency} {
		cmp := ContactComparatorFor(sortBy)
		if cmp(a, b) != 0 || cmp(b, a) != 0 {
			t.Fatalf("%s: equal keys must compare equal both ways", sortBy)
		}
	}
}
