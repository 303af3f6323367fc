package services

import (
	"sort"
	"strings"
)

type TaskFilterConfig struct {
	Query string `json:"query"`

	// Status is one of "", "all", "pending", "completed", "overdue".
	Status string `json:"status,omitempty"`

	// OwnerKind is one of "", "any", "contact", "supplier".
	OwnerKind string `json:"owner_kind,omitempty"`

	// DueWithinDays keeps incomplete tasks due inside the window (overdue
	// tasks are already inside any window).
	DueWithinDays *int `json:"due_within_days,omitempty"`

	SortBy string `json:"sort_by,omitempty"`
}

func FilterTasks(summaries []*TaskSummary, cfg TaskFilterConfig) []*TaskSummary {
	out := make([]*TaskSummary, 0, len(summaries))
	for _, s := range summaries {
		if !taskQueryPredicate(s, cfg.Query) {
			continue
		}
		if !taskStatusPredicate(s, cfg.Status) {
			continue
		}
		if !taskOwnerPredicate(s, cfg.OwnerKind) {
			continue
		}
		if !taskDueWindowPredicate(s, cfg.DueWithinDays) {
			continue
		}
		out = append(out, s)
	}

	cmp := TaskComparatorFor(cfg.SortBy)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

func taskQueryPredicate(s *TaskSummary, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Notes), q)
}

func taskStatusPredicate(s *TaskSummary, status string) bool {
	switch status {
	case "", "all":
		return true
	case "pending":
		return !s.Completed
	case "completed":
		return s.Completed
	case "overdue":
		return s.IsOverdue
	default:
		return true
	}
}

func taskOwnerPredicate(s *TaskSummary, ownerKind string) bool {
	switch ownerKind {
	case "contact":
		return s.ContactID != nil
	case "supplier":
		return s.SupplierID != nil
	default:
		return true
	}
}

func taskDueWindowPredicate(s *TaskSummary, window *int) bool {
	if window == nil {
		return true
	}
	if s.Completed || s.DaysUntilDue == nil {
		return false
	}
	return *s.DaysUntilDue <= *window
}
