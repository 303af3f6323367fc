package services

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// FilterEmptyOption is the reserved multi-select value meaning "the field is
// blank on the record".
const FilterEmptyOption = "(empty)"

// emptinessKeywords flip a free-text query from substring search into
// "field is blank" mode. Kept for compatibility with how desks already type
// queries like "no email"; the structured FilterEmptyOption is the preferred
// replacement.
var emptinessKeywords = []string{"none", "no ", "empty", "blank", "null", "missing"}

// StatusToggles are OR-combined: a record passes when any active toggle
// applies. None means all four flags are off.
type StatusToggles struct {
	Client   bool `json:"client"`
	Traction bool `json:"traction"`
	Jammed   bool `json:"jammed"`
	Dead     bool `json:"dead"`
	None     bool `json:"none"`
}

func (st StatusToggles) any() bool {
	return st.Client || st.Traction || st.Jammed || st.Dead || st.None
}

type ContactFilterConfig struct {
	Query string `json:"query"`

	// Fields maps a filterable field name to the set of accepted values.
	// An empty set is no constraint; FilterEmptyOption accepts blank fields.
	Fields map[string][]string `json:"fields,omitempty"`

	Statuses StatusToggles `json:"statuses"`

	ClientReason   string `json:"client_reason,omitempty"`
	TractionReason string `json:"traction_reason,omitempty"`
	JammedReason   string `json:"jammed_reason,omitempty"`
	DeadReason     string `json:"dead_reason,omitempty"`

	// RecencyBucket is one of "", "all", "0", "3", "7", "30", "90", "180",
	// "365": days since the latest call or email.
	RecencyBucket string `json:"recency_bucket,omitempty"`

	SortBy string `json:"sort_by,omitempty"`
}

// contactFilterFields is the accessor table behind both the multi-select
// filters and the emptiness-keyword query mode.
var contactFilterFields = map[string]func(*ContactSummary) string{
	"name":     func(s *ContactSummary) string { return s.Name },
	"company":  func(s *ContactSummary) string { return s.Company },
	"email":    func(s *ContactSummary) string { return s.Email },
	"phone":    func(s *ContactSummary) string { return s.Phone },
	"mobile":   func(s *ContactSummary) string { return s.Mobile },
	"address":  func(s *ContactSummary) string { return s.Address },
	"city":     func(s *ContactSummary) string { return s.City },
	"postcode": func(s *ContactSummary) string { return s.Postcode },
	"website":  func(s *ContactSummary) string { return s.Website },
	"country":  func(s *ContactSummary) string { return s.Country },
	"timezone": func(s *ContactSummary) string { return s.Timezone },
	"priority": func(s *ContactSummary) string { return priorityString(s.Contact) },
	"reminder": func(s *ContactSummary) string {
		if s.ReminderDays == nil {
			return ""
		}
		return strconv.Itoa(*s.ReminderDays)
	},
	"follow_up": func(s *ContactSummary) string {
		if s.FollowUpDate == nil {
			return ""
		}
		return s.FollowUpDate.Format("2006-01-02")
	},
}

// emptinessFieldOrder fixes which field an emptiness query refers to when the
// query names several; first named wins.
var emptinessFieldOrder = []string{
	"email", "phone", "mobile", "company", "website", "address", "city",
	"postcode", "country", "timezone", "priority", "reminder", "follow_up",
	"name",
}

// FilterContacts narrows summaries with a sequential intersection of
// independent predicates, then applies exactly one sort comparator. A config
// that eliminates everything is a valid result, never an error. The input
// slice is not mutated.
func FilterContacts(summaries []*ContactSummary, cfg ContactFilterConfig, now time.Time) []*ContactSummary {
	out := make([]*ContactSummary, 0, len(summaries))
	for _, s := range summaries {
		if !contactQueryPredicate(s, cfg.Query) {
			continue
		}
		if !contactFieldsPredicate(s, cfg.Fields) {
			continue
		}
		if !contactStatusPredicate(s, cfg.Statuses) {
			continue
		}
		if !contactReasonsPredicate(s, cfg) {
			continue
		}
		if !recencyPredicate(s, cfg.RecencyBucket, now) {
			continue
		}
		out = append(out, s)
	}

	cmp := ContactComparatorFor(cfg.SortBy)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

func contactQueryPredicate(s *ContactSummary, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	// Emptiness mode replaces substring search entirely for this query.
	if containsEmptinessKeyword(q) {
		field := emptinessTargetField(q)
		if field == "" {
			return false
		}
		return contactFilterFields[field](s) == ""
	}

	haystacks := []string{
		s.Name, s.Company, s.Email, s.Phone, s.Mobile, s.City, s.Postcode,
		s.Website, s.Address, s.Country, s.Timezone,
		s.ClientNote, s.TractionNote, s.JammedNote, s.DeadNote,
	}
	for _, h := range haystacks {
		if h != "" && strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}

	// A bare rank number or a tier label also matches.
	if s.PriorityRank != nil {
		if q == priorityString(s.Contact) {
			return true
		}
		if label := priorityLabel(s.Contact); label != "" && strings.Contains(label, q) {
			return true
		}
	}
	return false
}

func containsEmptinessKeyword(q string) bool {
	for _, kw := range emptinessKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func emptinessTargetField(q string) string {
	for _, field := range emptinessFieldOrder {
		if strings.Contains(q, field) {
			return field
		}
	}
	return ""
}

func contactFieldsPredicate(s *ContactSummary, fields map[string][]string) bool {
	for field, selected := range fields {
		if len(selected) == 0 {
			continue
		}
		accessor, ok := contactFilterFields[field]
		if !ok {
			continue
		}
		if !valueSelected(accessor(s), selected) {
			return false
		}
	}
	return true
}

func valueSelected(value string, selected []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, sel := range selected {
		if sel == FilterEmptyOption {
			if v == "" {
				return true
			}
			continue
		}
		if v == strings.ToLower(strings.TrimSpace(sel)) {
			return true
		}
	}
	return false
}

func contactStatusPredicate(s *ContactSummary, st StatusToggles) bool {
	if !st.any() {
		return true
	}
	noFlags := !s.IsClient && !s.HasTraction && !s.IsJammed && !s.IsDead
	return (st.Client && s.IsClient) ||
		(st.Traction && s.HasTraction) ||
		(st.Jammed && s.IsJammed) ||
		(st.Dead && s.IsDead) ||
		(st.None && noFlags)
}

// contactReasonsPredicate applies each reason filter only to records that
// carry the corresponding status; other records are unaffected.
func contactReasonsPredicate(s *ContactSummary, cfg ContactFilterConfig) bool {
	checks := []struct {
		reason string
		active bool
		note   string
	}{
		{cfg.ClientReason, s.IsClient, s.ClientNote},
		{cfg.TractionReason, s.HasTraction, s.TractionNote},
		{cfg.JammedReason, s.IsJammed, s.JammedNote},
		{cfg.DeadReason, s.IsDead, s.DeadNote},
	}
	for _, c := range checks {
		q := strings.ToLower(strings.TrimSpace(c.reason))
		if q == "" || !c.active {
			continue
		}
		if containsEmptinessKeyword(q) {
			if c.note != "" {
				return false
			}
			continue
		}
		if !strings.Contains(strings.ToLower(c.note), q) {
			return false
		}
	}
	return true
}

func recencyPredicate(s *ContactSummary, bucket string, now time.Time) bool {
	if bucket == "" || bucket == "all" {
		return true
	}
	days, err := strconv.Atoi(bucket)
	if err != nil {
		return true
	}
	latest := lastActivity(s)
	if latest.IsZero() {
		return false
	}
	daysSince := int(now.Sub(latest).Hours() / 24)
	return daysSince <= days
}
