package services

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

// ContactSummary is a contact joined with everything the desk has logged
// against it. Summaries are derived on every read and never persisted.
type ContactSummary struct {
	*types.Contact

	TotalCalls   int `json:"total_calls"`
	TotalEmails  int `json:"total_emails"`
	TotalDeals   int `json:"total_deals"`
	TotalTasks   int `json:"total_tasks"`
	PendingTasks int `json:"pending_tasks"`
	TotalPersons int `json:"total_persons"`
	TotalVessels int `json:"total_vessels"`

	LastCallDate  *time.Time `json:"last_call_date,omitempty"`
	LastEmailDate *time.Time `json:"last_email_date,omitempty"`

	NextCallDue  *time.Time `json:"next_call_due,omitempty"`
	IsOverdue    bool       `json:"is_overdue"`
	DaysUntilDue *int       `json:"days_until_due,omitempty"`

	NextTaskDue   *time.Time `json:"next_task_due,omitempty"`
	NextTaskTitle string     `json:"next_task_title,omitempty"`
}

type SupplierSummary struct {
	*types.Supplier

	TotalOrders   int        `json:"total_orders"`
	TotalContacts int        `json:"total_contacts"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`

	Contacts []*types.SupplierContact `json:"contacts,omitempty"`
	PortList []*types.SupplierPort    `json:"port_list,omitempty"`
}

type TaskSummary struct {
	*types.Task

	IsOverdue    bool `json:"is_overdue"`
	DaysUntilDue *int `json:"days_until_due,omitempty"`
}

// SummarizeContacts joins the related record arrays onto each contact by
// foreign key and computes the derived activity fields. Output order matches
// the input contact order; sorting is the filter engine's job. The function
// never fails: missing optional data contributes no count and no date.
func SummarizeContacts(
	contacts []*types.Contact,
	persons []*types.ContactPerson,
	calls []*types.Call,
	emails []*types.Email,
	deals []*types.FuelDeal,
	vessels []*types.Vessel,
	tasks []*types.Task,
	now time.Time,
) []*ContactSummary {
	personsByOwner := map[uuid.UUID][]*types.ContactPerson{}
	for _, p := range persons {
		personsByOwner[p.ContactID] = append(personsByOwner[p.ContactID], p)
	}
	callsByOwner := map[uuid.UUID][]*types.Call{}
	for _, c := range calls {
		callsByOwner[c.ContactID] = append(callsByOwner[c.ContactID], c)
	}
	emailsByOwner := map[uuid.UUID][]*types.Email{}
	for _, e := range emails {
		emailsByOwner[e.ContactID] = append(emailsByOwner[e.ContactID], e)
	}
	dealsByOwner := map[uuid.UUID][]*types.FuelDeal{}
	for _, d := range deals {
		dealsByOwner[d.ContactID] = append(dealsByOwner[d.ContactID], d)
	}
	vesselsByOwner := map[uuid.UUID][]*types.Vessel{}
	for _, v := range vessels {
		vesselsByOwner[v.ContactID] = append(vesselsByOwner[v.ContactID], v)
	}
	tasksByOwner := map[uuid.UUID][]*types.Task{}
	for _, t := range tasks {
		if t.ContactID != nil {
			tasksByOwner[*t.ContactID] = append(tasksByOwner[*t.ContactID], t)
		}
	}

	summaries := make([]*ContactSummary, 0, len(contacts))
	for _, contact := range contacts {
		s := &ContactSummary{Contact: contact}

		ownCalls := callsByOwner[contact.ID]
		ownEmails := emailsByOwner[contact.ID]
		ownTasks := tasksByOwner[contact.ID]

		s.TotalCalls = len(ownCalls)
		s.TotalEmails = len(ownEmails)
		s.TotalDeals = len(dealsByOwner[contact.ID])
		s.TotalTasks = len(ownTasks)
		s.TotalPersons = len(personsByOwner[contact.ID])
		s.TotalVessels = len(vesselsByOwner[contact.ID])

		for _, c := range ownCalls {
			if s.LastCallDate == nil || c.Date.After(*s.LastCallDate) {
				d := c.Date
				s.LastCallDate = &d
			}
		}
		for _, e := range ownEmails {
			if s.LastEmailDate == nil || e.Date.After(*s.LastEmailDate) {
				d := e.Date
				s.LastEmailDate = &d
			}
		}

		// Next call due: reminder cadence anchored on the last call, or on
		// creation when the contact has never been called.
		if contact.ReminderDays != nil {
			anchor := contact.CreatedAt
			if s.LastCallDate != nil {
				anchor = *s.LastCallDate
			}
			due := anchor.AddDate(0, 0, *contact.ReminderDays)
			s.NextCallDue = &due
			days := daysUntil(due, now)
			s.DaysUntilDue = &days
			s.IsOverdue = days < 0
		}

		for _, t := range ownTasks {
			if t.Completed {
				continue
			}
			s.PendingTasks++
			if t.DueDate == nil {
				continue
			}
			if s.NextTaskDue == nil || t.DueDate.Before(*s.NextTaskDue) {
				d := *t.DueDate
				s.NextTaskDue = &d
				s.NextTaskTitle = t.Title
			}
		}
		if !s.IsOverdue && s.NextTaskDue != nil && daysUntil(*s.NextTaskDue, now) < 0 {
			s.IsOverdue = true
		}

		summaries = append(summaries, s)
	}
	return summaries
}

// SummarizeSuppliers is the supplier analogue of SummarizeContacts. The
// contact and port rows are carried on the summary so the filter engine and
// matcher can consult them without another lookup.
func SummarizeSuppliers(
	suppliers []*types.Supplier,
	orders []*types.SupplierOrder,
	contacts []*types.SupplierContact,
	ports []*types.SupplierPort,
) []*SupplierSummary {
	ordersByOwner := map[uuid.UUID][]*types.SupplierOrder{}
	for _, o := range orders {
		ordersByOwner[o.SupplierID] = append(ordersByOwner[o.SupplierID], o)
	}
	contactsByOwner := map[uuid.UUID][]*types.SupplierContact{}
	for _, c := range contacts {
		contactsByOwner[c.SupplierID] = append(contactsByOwner[c.SupplierID], c)
	}
	portsByOwner := map[uuid.UUID][]*types.SupplierPort{}
	for _, p := range ports {
		portsByOwner[p.SupplierID] = append(portsByOwner[p.SupplierID], p)
	}

	summaries := make([]*SupplierSummary, 0, len(suppliers))
	for _, supplier := range suppliers {
		s := &SupplierSummary{Supplier: supplier}

		ownOrders := ordersByOwner[supplier.ID]
		s.TotalOrders = len(ownOrders)
		for _, o := range ownOrders {
			if s.LastOrderDate == nil || o.Date.After(*s.LastOrderDate) {
				d := o.Date
				s.LastOrderDate = &d
			}
		}

		s.Contacts = contactsByOwner[supplier.ID]
		s.TotalContacts = len(s.Contacts)
		s.PortList = portsByOwner[supplier.ID]

		summaries = append(summaries, s)
	}
	return summaries
}

// SummarizeTasks computes the overdue state of each task. Completed tasks are
// never overdue.
func SummarizeTasks(tasks []*types.Task, now time.Time) []*TaskSummary {
	summaries := make([]*TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		s := &TaskSummary{Task: task}
		if !task.Completed && task.DueDate != nil {
			days := daysUntil(*task.DueDate, now)
			s.DaysUntilDue = &days
			s.IsOverdue = days < 0
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
