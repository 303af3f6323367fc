package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

func testContacts() []*ContactSummary {
	return []*ContactSummary{
		{Contact: &types.Contact{
			ID: uuid.New(), Name: "Anders Berg", Company: "Nordic Chartering",
			Email: "anders@nordic.example", Country: "Norway",
			IsClient: true, ClientNote: "spot volumes since 2023",
		}},
		{Contact: &types.Contact{
			ID: uuid.New(), Name: "Elena Costa", Company: "Med Shipping",
			Email: "", Country: "Greece",
			IsJammed: true, JammedNote: "stuck on credit terms",
		}},
		{Contact: &types.Contact{
			ID: uuid.New(), Name: "Wei Zhang", Company: "",
			Email: "wei@pacific.example", Country: "Singapore",
		}},
	}
}

func names(out []*ContactSummary) []string {
	got := make([]string, len(out))
	for i, s := range out {
		got[i] = s.Name
	}
	return got
}

func TestFilterContactsEmptyConfigReturnsAllSortedByName(t *testing.T) {
	now := time.Now()
	out := FilterContacts(testContacts(), ContactFilterConfig{}, now)
	want := []string{"Anders Berg", "Elena Costa", "Wei Zhang"}
	got := names(out)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want=%v got=%v", want, got)
		}
	}
}

func TestFilterContactsQuerySubstring(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name", "anders", []string{"Anders Berg"}},
		{"matches company", "shipping", []string{"Elena Costa"}},
		{"matches status note", "credit", []string{"Elena Costa"}},
		{"matches nothing", "zanzibar", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := FilterContacts(testContacts(), ContactFilterConfig{Query: tc.query}, now)
			if len(out) != len(tc.want) {
				t.Fatalf("count: want=%d got=%d", len(tc.want), len(out))
			}
			got := names(out)
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("want=%v got=%v", tc.want, got)
				}
			}
		})
	}
}

func TestFilterContactsEmptinessQuery(t *testing.T) {
	now := time.Now()
	out := FilterContacts(testContacts(), ContactFilterConfig{Query: "no email"}, now)
	if len(out) != 1 || out[0].Name != "Elena Costa" {
		t.Fatalf("\"no email\" must keep only the blank-email contact, got=%v", names(out))
	}

	out = FilterContacts(testContacts(), ContactFilterConfig{Query: "missing company"}, now)
	if len(out) != 1 || out[0].Name != "Wei Zhang" {
		t.Fatalf("\"missing company\" must keep only the blank-company contact, got=%v", names(out))
	}

	// An emptiness keyword without a recognizable field matches nothing.
	out = FilterContacts(testContacts(), ContactFilterConfig{Query: "no dice"}, now)
	if len(out) != 0 {
		t.Fatalf("unresolvable emptiness query must match nothing, got=%v", names(out))
	}
}

func TestFilterContactsStatusTogglesAreORCombined(t *testing.T) {
	now := time.Now()
	out := FilterContacts(testContacts(), ContactFilterConfig{
		Statuses: StatusToggles{Client: true, Jammed: true},
	}, now)
	want := []string{"Anders Berg", "Elena Costa"}
	got := names(out)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("want=%v got=%v", want, got)
	}

	out = FilterContacts(testContacts(), ContactFilterConfig{
		Statuses: StatusToggles{None: true},
	}, now)
	if len(out) != 1 || out[0].Name != "Wei Zhang" {
		t.Fatalf("none toggle must keep only the unflagged contact, got=%v", names(out))
	}
}

func TestFilterContactsFieldMultiSelect(t *testing.T) {
	now := time.Now()
	out := FilterContacts(testContacts(), ContactFilterConfig{
		Fields: map[string][]string{"country": {"norway", "Singapore"}},
	}, now)
	want := []string{"Anders Berg", "Wei Zhang"}
	got := names(out)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("want=%v got=%v", want, got)
	}
}

func TestFilterContactsFieldEmptyOption(t *testing.T) {
	now := time.Now()
	out := FilterContacts(testContacts(), ContactFilterConfig{
		Fields: map[string][]string{"email": {FilterEmptyOption}},
	}, now)
	if len(out) != 1 || out[0].Name != "Elena Costa" {
		t.Fatalf("(empty) must select blank emails, got=%v", names(out))
	}

	// Mixing (empty) with a concrete value accepts either.
	out = FilterContacts(testContacts(), ContactFilterConfig{
		Fields: map[string][]string{"email": {FilterEmptyOption, "wei@pacific.example"}},
	}, now)
	if len(out) != 2 {
		t.Fatalf("(empty)+value must accept both, got=%v", names(out))
	}
}

func TestFilterContactsReasonOnlyConstrainsFlaggedRecords(t *testing.T) {
	now := time.Now()
	out := FilterContacts(testContacts(), ContactFilterConfig{
		JammedReason: "credit",
	}, now)
	// All three pass: the two unjammed contacts are unaffected, and the
	// jammed one carries the term.
	if len(out) != 3 {
		t.Fatalf("want all 3, got=%v", names(out))
	}

	out = FilterContacts(testContacts(), ContactFilterConfig{
		JammedReason: "sanctions",
	}, now)
	got := names(out)
	if len(got) != 2 {
		t.Fatalf("jammed contact without the term must drop, got=%v", got)
	}
	for _, n := range got {
		if n == "Elena Costa" {
			t.Fatalf("Elena Costa should have been filtered out, got=%v", got)
		}
	}
}

func TestFilterContactsRecencyBucket(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	in := testContacts()
	in[0].LastCallDate = timePtr(now.AddDate(0, 0, -2))
	in[1].LastEmailDate = timePtr(now.AddDate(0, 0, -60))
	// in[2] has no activity at all.

	out := FilterContacts(in, ContactFilterConfig{RecencyBucket: "7"}, now)
	if len(out) != 1 || out[0].Name != "Anders Berg" {
		t.Fatalf("7-day bucket: got=%v", names(out))
	}

	out = FilterContacts(in, ContactFilterConfig{RecencyBucket: "90"}, now)
	if len(out) != 2 {
		t.Fatalf("90-day bucket must include the 60-day contact: got=%v", names(out))
	}

	out = FilterContacts(in, ContactFilterConfig{RecencyBucket: "365"}, now)
	for _, s := range out {
		if s.Name == "Wei Zhang" {
			t.Fatalf("contact with no activity can never pass a bucket")
		}
	}

	out = FilterContacts(in, ContactFilterConfig{RecencyBucket: "all"}, now)
	if len(out) != 3 {
		t.Fatalf("\"all\" bucket must pass everyone: got=%v", names(out))
	}
}

func TestFilterContactsDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	in := testContacts()
	FilterContacts(in, ContactFilterConfig{Query: "anders", SortBy: SortByRecency}, now)
	if in[0].Name != "Anders Berg" || in[1].Name != "Elena Costa" || in[2].Name != "Wei Zhang" {
		t.Fatalf("input slice was reordered")
	}
}

func TestFilterContactsIdempotent(t *testing.T) {
	now := time.Now()
	cfg := ContactFilterConfig{Statuses: StatusToggles{Client: true, Jammed: true}, SortBy: SortByName}
	once := FilterContacts(testContacts(), cfg, now)
	twice := FilterContacts(once, cfg, now)
	if len(once) != len(twice) {
		t.Fatalf("re-filtering a result changed it: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("re-filtering a result changed element %d", i)
		}
	}
}

func TestFilterSuppliersPortModes(t *testing.T) {
	normalized := &SupplierSummary{
		Supplier: &types.Supplier{ID: uuid.New(), Name: "Nordic Bunkering"},
		PortList: []*types.SupplierPort{
			{Name: "Rotterdam", Barge: true},
			{Name: "Hamburg", Truck: true},
		},
	}
	legacy := &SupplierSummary{
		Supplier: &types.Supplier{ID: uuid.New(), Name: "Med Fuels", Ports: "Piraeus; Rotterdam"},
	}
	in := []*SupplierSummary{normalized, legacy}

	out := FilterSuppliers(in, SupplierFilterConfig{Port: "rotterdam"})
	if len(out) != 2 {
		t.Fatalf("plain port filter must hit both the row and the legacy string, got=%d", len(out))
	}

	out = FilterSuppliers(in, SupplierFilterConfig{Port: "rotterdam", Barge: true})
	if len(out) != 1 || out[0].Name != "Nordic Bunkering" {
		t.Fatalf("mode flag must exclude legacy-string suppliers, got=%d", len(out))
	}

	out = FilterSuppliers(in, SupplierFilterConfig{Port: "rotterdam", Truck: true})
	if len(out) != 0 {
		t.Fatalf("truck is only offered in Hamburg, got=%d", len(out))
	}

	out = FilterSuppliers(in, SupplierFilterConfig{Port: "rott", PortExact: true})
	if len(out) != 0 {
		t.Fatalf("exact port match must reject prefixes, got=%d", len(out))
	}
}

func TestFilterSuppliersRegionAndFuelType(t *testing.T) {
	s := &SupplierSummary{Supplier: &types.Supplier{
		ID: uuid.New(), Name: "Nordic Bunkering",
		FuelTypes: "VLSFO;MGO", Regions: "North Europe; Baltic",
	}}
	in := []*SupplierSummary{s}

	if out := FilterSuppliers(in, SupplierFilterConfig{FuelType: "mgo"}); len(out) != 1 {
		t.Fatalf("fuel type substring must match")
	}
	if out := FilterSuppliers(in, SupplierFilterConfig{Region: "baltic"}); len(out) != 1 {
		t.Fatalf("region entry must match exactly after trimming")
	}
	if out := FilterSuppliers(in, SupplierFilterConfig{Region: "balt"}); len(out) != 0 {
		t.Fatalf("region is an exact entry match, not a substring")
	}
}

func TestFilterTasksStatusAndWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	contactID := uuid.New()
	tasks := []*types.Task{
		{ContactID: &contactID, Title: "overdue chase", DueDate: timePtr(now.AddDate(0, 0, -2))},
		{ContactID: &contactID, Title: "this week", DueDate: timePtr(now.AddDate(0, 0, 3))},
		{ContactID: &contactID, Title: "next month", DueDate: timePtr(now.AddDate(0, 0, 30))},
		{ContactID: &contactID, Title: "wrapped up", DueDate: timePtr(now.AddDate(0, 0, -10)), Completed: true},
	}
	in := SummarizeTasks(tasks, now)

	out := FilterTasks(in, TaskFilterConfig{Status: "overdue"})
	if len(out) != 1 || out[0].Title != "overdue chase" {
		t.Fatalf("overdue filter: got=%d", len(out))
	}

	out = FilterTasks(in, TaskFilterConfig{Status: "pending", DueWithinDays: intPtr(7)})
	if len(out) != 2 {
		t.Fatalf("7-day window must keep the overdue and this-week tasks, got=%d", len(out))
	}
	if out[0].Title != "overdue chase" || out[1].Title != "this week" {
		t.Fatalf("due-date sort inside window wrong: %s, %s", out[0].Title, out[1].Title)
	}

	out = FilterTasks(in, TaskFilterConfig{Status: "completed"})
	if len(out) != 1 || out[0].Title != "wrapped up" {
		t.Fatalf("completed filter: got=%d", len(out))
	}
}
