package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestSummarizeContactsCounts(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	a := &types.Contact{ID: uuid.New(), Name: "Anders"}
	b := &types.Contact{ID: uuid.New(), Name: "Borg"}

	calls := []*types.Call{
		{ContactID: a.ID, Date: now.AddDate(0, 0, -10)},
		{ContactID: a.ID, Date: now.AddDate(0, 0, -2)},
	}
	emails := []*types.Email{
		{ContactID: a.ID, Date: now.AddDate(0, 0, -1)},
	}
	deals := []*types.FuelDeal{
		{ContactID: b.ID, Date: now.AddDate(0, 0, -30), Port: "Rotterdam"},
	}
	tasks := []*types.Task{
		{ContactID: &a.ID, Title: "send offer", Completed: false},
		{ContactID: &a.ID, Title: "old chase", Completed: true},
	}

	out := SummarizeContacts([]*types.Contact{a, b}, nil, calls, emails, deals, nil, tasks, now)
	if len(out) != 2 {
		t.Fatalf("summaries: want=2 got=%d", len(out))
	}
	sa, sb := out[0], out[1]
	if sa.TotalCalls != 2 || sa.TotalEmails != 1 || sa.TotalTasks != 2 || sa.PendingTasks != 1 {
		t.Fatalf("contact a counts wrong: %+v", sa)
	}
	if sa.LastCallDate == nil || !sa.LastCallDate.Equal(now.AddDate(0, 0, -2)) {
		t.Fatalf("last call date: got=%v", sa.LastCallDate)
	}
	if sb.TotalDeals != 1 || sb.TotalCalls != 0 {
		t.Fatalf("contact b counts wrong: %+v", sb)
	}
	if sb.LastCallDate != nil {
		t.Fatalf("contact b should have no last call, got %v", sb.LastCallDate)
	}
}

func TestSummarizeContactsPreservesInputOrder(t *testing.T) {
	now := time.Now()
	contacts := []*types.Contact{
		{ID: uuid.New(), Name: "Zeta"},
		{ID: uuid.New(), Name: "Alpha"},
		{ID: uuid.New(), Name: "Mid"},
	}
	out := SummarizeContacts(contacts, nil, nil, nil, nil, nil, nil, now)
	for i, s := range out {
		if s.Name != contacts[i].Name {
			t.Fatalf("order changed at %d: want=%q got=%q", i, contacts[i].Name, s.Name)
		}
	}
}

func TestSummarizeContactsNextCallDueAnchoredOnLastCall(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &types.Contact{ID: uuid.New(), Name: "Anders", ReminderDays: intPtr(7)}
	c.CreatedAt = now.AddDate(0, 0, -100)

	lastCall := now.AddDate(0, 0, -3)
	out := SummarizeContacts(
		[]*types.Contact{c}, nil,
		[]*types.Call{{ContactID: c.ID, Date: lastCall}},
		nil, nil, nil, nil, now)

	s := out[0]
	want := lastCall.AddDate(0, 0, 7)
	if s.NextCallDue == nil || !s.NextCallDue.Equal(want) {
		t.Fatalf("next call due: want=%v got=%v", want, s.NextCallDue)
	}
	if s.IsOverdue {
		t.Fatalf("due in 4 days must not be overdue")
	}
	if s.DaysUntilDue == nil || *s.DaysUntilDue != 4 {
		t.Fatalf("days until due: want=4 got=%v", s.DaysUntilDue)
	}
}

func TestSummarizeContactsNextCallDueAnchoredOnCreationWhenNeverCalled(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &types.Contact{ID: uuid.New(), Name: "Borg", ReminderDays: intPtr(7)}
	c.CreatedAt = now.AddDate(0, 0, -10)

	out := SummarizeContacts([]*types.Contact{c}, nil, nil, nil, nil, nil, nil, now)
	s := out[0]
	want := c.CreatedAt.AddDate(0, 0, 7)
	if s.NextCallDue == nil || !s.NextCallDue.Equal(want) {
		t.Fatalf("next call due: want=%v got=%v", want, s.NextCallDue)
	}
	if !s.IsOverdue {
		t.Fatalf("due 3 days ago must be overdue")
	}
	if s.DaysUntilDue == nil || *s.DaysUntilDue != -3 {
		t.Fatalf("days until due: want=-3 got=%v", s.DaysUntilDue)
	}
}

func TestSummarizeContactsNoReminderNoDue(t *testing.T) {
	now := time.Now()
	c := &types.Contact{ID: uuid.New(), Name: "Cara"}
	out := SummarizeContacts([]*types.Contact{c}, nil, nil, nil, nil, nil, nil, now)
	s := out[0]
	if s.NextCallDue != nil || s.DaysUntilDue != nil || s.IsOverdue {
		t.Fatalf("no reminder configured must produce no due state: %+v", s)
	}
}

func TestSummarizeContactsEarliestPendingTaskWins(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &types.Contact{ID: uuid.New(), Name: "Anders"}
	tasks := []*types.Task{
		{ContactID: &c.ID, Title: "later", DueDate: timePtr(now.AddDate(0, 0, 9))},
		{ContactID: &c.ID, Title: "sooner", DueDate: timePtr(now.AddDate(0, 0, 2))},
		{ContactID: &c.ID, Title: "done", DueDate: timePtr(now.AddDate(0, 0, 1)), Completed: true},
		{ContactID: &c.ID, Title: "undated"},
	}
	out := SummarizeContacts([]*types.Contact{c}, nil, nil, nil, nil, nil, tasks, now)
	s := out[0]
	if s.NextTaskTitle != "sooner" {
		t.Fatalf("next task: want=%q got=%q", "sooner", s.NextTaskTitle)
	}
	if s.PendingTasks != 3 {
		t.Fatalf("pending tasks: want=3 got=%d", s.PendingTasks)
	}
}

func TestSummarizeContactsOverdueTaskMarksContact(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c := &types.Contact{ID: uuid.New(), Name: "Anders"}
	tasks := []*types.Task{
		{ContactID: &c.ID, Title: "chase", DueDate: timePtr(now.AddDate(0, 0, -1))},
	}
	out := SummarizeContacts([]*types.Contact{c}, nil, nil, nil, nil, nil, tasks, now)
	if !out[0].IsOverdue {
		t.Fatalf("contact with a task due yesterday must be overdue")
	}
}

func TestSummarizeTasks(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name        string
		task        *types.Task
		wantOverdue bool
		wantDays    *int
	}{
		{
			name:        "due yesterday",
			task:        &types.Task{Title: "a", DueDate: timePtr(now.AddDate(0, 0, -1))},
			wantOverdue: true,
			wantDays:    intPtr(-1),
		},
		{
			name:        "due tomorrow",
			task:        &types.Task{Title: "b", DueDate: timePtr(now.AddDate(0, 0, 1))},
			wantOverdue: false,
			wantDays:    intPtr(1),
		},
		{
			name:        "completed past due never overdue",
			task:        &types.Task{Title: "c", DueDate: timePtr(now.AddDate(0, 0, -5)), Completed: true},
			wantOverdue: false,
			wantDays:    nil,
		},
		{
			name:        "no due date",
			task:        &types.Task{Title: "d"},
			wantOverdue: false,
			wantDays:    nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := SummarizeTasks([]*types.Task{tc.task}, now)
			s := out[0]
			if s.IsOverdue != tc.wantOverdue {
				t.Fatalf("overdue: want=%v got=%v", tc.wantOverdue, s.IsOverdue)
			}
			if (s.DaysUntilDue == nil) != (tc.wantDays == nil) {
				t.Fatalf("days: want=%v got=%v", tc.wantDays, s.DaysUntilDue)
			}
			if tc.wantDays != nil && *s.DaysUntilDue != *tc.wantDays {
				t.Fatalf("days: want=%d got=%d", *tc.wantDays, *s.DaysUntilDue)
			}
		})
	}
}

func TestSummarizeSuppliers(t *testing.T) {
	s1 := &types.Supplier{ID: uuid.New(), Name: "Nordic Bunkering"}
	s2 := &types.Supplier{ID: uuid.New(), Name: "Med Fuels"}
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	orders := []*types.SupplierOrder{
		{SupplierID: s1.ID, Date: d1},
		{SupplierID: s1.ID, Date: d2},
	}
	contacts := []*types.SupplierContact{
		{SupplierID: s1.ID, Name: "Lars", Email: "lars@nordic.example"},
	}
	ports := []*types.SupplierPort{
		{SupplierID: s2.ID, Name: "Piraeus", Barge: true},
	}

	out := SummarizeSuppliers([]*types.Supplier{s1, s2}, orders, contacts, ports)
	if out[0].TotalOrders != 2 || out[0].TotalContacts != 1 {
		t.Fatalf("supplier 1 counts wrong: %+v", out[0])
	}
	if out[0].LastOrderDate == nil || !out[0].LastOrderDate.Equal(d2) {
		t.Fatalf("last order date: want=%v got=%v", d2, out[0].LastOrderDate)
	}
	if len(out[1].PortList) != 1 || out[1].PortList[0].Name != "Piraeus" {
		t.Fatalf("supplier 2 ports wrong: %+v", out[1].PortList)
	}
	if out[1].LastOrderDate != nil {
		t.Fatalf("supplier 2 should have no last order")
	}
}
