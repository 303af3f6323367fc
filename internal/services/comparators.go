package services

import (
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

// Sort names accepted by the filter configs. Exactly one comparator is active
// per sort request.
const (
	SortByName     = "name"
	SortByCompany  = "company"
	SortByCountry  = "country"
	SortByTimezone = "timezone"
	SortByEmail    = "email"
	SortByPriority = "priority"
	SortByStatus   = "status"
	SortByRecency  = "recency"
)

// Status precedence used by the status comparator and filters. Lower ranks
// sort first.
const (
	statusRankClient   = 0
	statusRankTraction = 1
	statusRankNone     = 2
	statusRankJammed   = 3
	statusRankDead     = 4
	statusRankOther    = 5
)

type ContactComparator func(a, b *ContactSummary) int

// ContactComparatorFor resolves a sort name to a comparator. Unknown names
// fall back to the locale name order.
func ContactComparatorFor(name string) ContactComparator {
	col := collate.New(language.English, collate.IgnoreCase)
	switch name {
	case SortByCompany:
		return func(a, b *ContactSummary) int { return col.CompareString(a.Company, b.Company) }
	case SortByCountry:
		return func(a, b *ContactSummary) int { return col.CompareString(a.Country, b.Country) }
	case SortByTimezone:
		return func(a, b *ContactSummary) int { return col.CompareString(a.Timezone, b.Timezone) }
	case SortByEmail:
		return func(a, b *ContactSummary) int { return col.CompareString(a.Email, b.Email) }
	case SortByPriority:
		return func(a, b *ContactSummary) int {
			return priorityRankOf(a.Contact) - priorityRankOf(b.Contact)
		}
	case SortByStatus:
		return func(a, b *ContactSummary) int {
			return statusRankOf(a.Contact) - statusRankOf(b.Contact)
		}
	case SortByRecency:
		return func(a, b *ContactSummary) int {
			am := lastActivityMillis(a)
			bm := lastActivityMillis(b)
			// Most recently active first.
			switch {
			case am > bm:
				return -1
			case am < bm:
				return 1
			default:
				return 0
			}
		}
	default:
		return func(a, b *ContactSummary) int { return col.CompareString(a.Name, b.Name) }
	}
}

// priorityRankOf maps "no rank assigned" to a sentinel past every valid rank
// so unranked contacts always order last.
func priorityRankOf(c *types.Contact) int {
	if c.PriorityRank == nil {
		return types.PriorityUnranked
	}
	return *c.PriorityRank
}

// statusRankOf inspects the four status flags in fixed precedence and returns
// the first that applies.
func statusRankOf(c *types.Contact) int {
	switch {
	case c.IsClient:
		return statusRankClient
	case c.HasTraction:
		return statusRankTraction
	case !c.IsJammed && !c.IsDead:
		return statusRankNone
	case c.IsJammed:
		return statusRankJammed
	case c.IsDead:
		return statusRankDead
	default:
		return statusRankOther
	}
}

// lastActivity is the later of the last call and last email, or the zero time
// when the contact has no logged activity at all.
func lastActivity(s *ContactSummary) time.Time {
	var latest time.Time
	if s.LastCallDate != nil {
		latest = *s.LastCallDate
	}
	if s.LastEmailDate != nil && s.LastEmailDate.After(latest) {
		latest = *s.LastEmailDate
	}
	return latest
}

func lastActivityMillis(s *ContactSummary) int64 {
	latest := lastActivity(s)
	if latest.IsZero() {
		return 0
	}
	return latest.UnixMilli()
}

type SupplierComparator func(a, b *SupplierSummary) int

func SupplierComparatorFor(name string) SupplierComparator {
	col := collate.New(language.English, collate.IgnoreCase)
	switch name {
	case "classification":
		return func(a, b *SupplierSummary) int { return col.CompareString(a.Classification, b.Classification) }
	case SortByRecency:
		return func(a, b *SupplierSummary) int {
			am := orderMillis(a)
			bm := orderMillis(b)
			switch {
			case am > bm:
				return -1
			case am < bm:
				return 1
			default:
				return 0
			}
		}
	default:
		return func(a, b *SupplierSummary) int { return col.CompareString(a.Name, b.Name) }
	}
}

func orderMillis(s *SupplierSummary) int64 {
	if s.LastOrderDate == nil {
		return 0
	}
	return s.LastOrderDate.UnixMilli()
}

type TaskComparator func(a, b *TaskSummary) int

func TaskComparatorFor(name string) TaskComparator {
	col := collate.New(language.English, collate.IgnoreCase)
	switch name {
	case "created":
		return func(a, b *TaskSummary) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case "title":
		return func(a, b *TaskSummary) int { return col.CompareString(a.Title, b.Title) }
	default:
		// Due date ascending; undated tasks last.
		return func(a, b *TaskSummary) int {
			am := dueMillisOrMax(a)
			bm := dueMillisOrMax(b)
			switch {
			case am < bm:
				return -1
			case am > bm:
				return 1
			default:
				return 0
			}
		}
	}
}

func dueMillisOrMax(s *TaskSummary) int64 {
	if s.DueDate == nil {
		return int64(1<<63 - 1)
	}
	return s.DueDate.UnixMilli()
}

// PriorityLabels names the priority tiers for display and for free-text
// queries against a rank.
var PriorityLabels = map[int]string{
	0: "client",
	1: "very high",
	2: "high",
	3: "medium",
	4: "low",
	5: "minimal",
}

func priorityLabel(c *types.Contact) string {
	if c.PriorityRank == nil {
		return ""
	}
	return PriorityLabels[*c.PriorityRank]
}

func priorityString(c *types.Contact) string {
	if c.PriorityRank == nil {
		return ""
	}
	return strconv.Itoa(*c.PriorityRank)
}
