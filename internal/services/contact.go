package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/repos"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

const contactViewKind = "contacts"

type ContactService interface {
	Create(ctx context.Context, workspaceID uuid.UUID, contacts []*types.Contact) ([]*types.Contact, error)
	Update(ctx context.Context, contact *types.Contact) (*types.Contact, error)
	Delete(ctx context.Context, workspaceID uuid.UUID, contactIDs []uuid.UUID) error

	LogCall(ctx context.Context, workspaceID uuid.UUID, call *types.Call) (*types.Call, error)
	LogEmail(ctx context.Context, workspaceID uuid.UUID, email *types.Email) (*types.Email, error)
	AddDeal(ctx context.Context, workspaceID uuid.UUID, deal *types.FuelDeal) (*types.FuelDeal, error)
	AddPerson(ctx context.Context, workspaceID uuid.UUID, person *types.ContactPerson) (*types.ContactPerson, error)
	AddVessel(ctx context.Context, workspaceID uuid.UUID, vessel *types.Vessel) (*types.Vessel, error)

	// ListSummaries recomputes every contact summary for the workspace.
	ListSummaries(ctx context.Context, workspaceID uuid.UUID, now time.Time) ([]*ContactSummary, error)
	// View filters and sorts the summaries; results are memoized until the
	// workspace changes.
	View(ctx context.Context, workspaceID uuid.UUID, cfg ContactFilterConfig, now time.Time) ([]*ContactSummary, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	personRepo  repos.ContactPersonRepo
	callRepo    repos.CallRepo
	emailRepo   repos.EmailRepo
	dealRepo    repos.FuelDealRepo
	vesselRepo  repos.VesselRepo
	taskRepo    repos.TaskRepo
	viewCache   ViewCache
}

func NewContactService(
	db *gorm.DB,
	log *logger.Logger,
	contactRepo repos.ContactRepo,
	personRepo repos.ContactPersonRepo,
	callRepo repos.CallRepo,
	emailRepo repos.EmailRepo,
	dealRepo repos.FuelDealRepo,
	vesselRepo repos.VesselRepo,
	taskRepo repos.TaskRepo,
	viewCache ViewCache,
) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		db:          db,
		log:         serviceLog,
		contactRepo: contactRepo,
		personRepo:  personRepo,
		callRepo:    callRepo,
		emailRepo:   emailRepo,
		dealRepo:    dealRepo,
		vesselRepo:  vesselRepo,
		taskRepo:    taskRepo,
		viewCache:   viewCache,
	}
}

func (cs *contactService) Create(ctx context.Context, workspaceID uuid.UUID, contacts []*types.Contact) ([]*types.Contact, error) {
	for _, c := range contacts {
		c.WorkspaceID = workspaceID
	}
	created, err := cs.contactRepo.Create(ctx, nil, contacts)
	if err != nil {
		return nil, fmt.Errorf("create contacts: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return created, nil
}

func (cs *contactService) Update(ctx context.Context, contact *types.Contact) (*types.Contact, error) {
	updated, err := cs.contactRepo.Update(ctx, nil, contact)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	cs.viewCache.Invalidate(ctx, contact.WorkspaceID)
	return updated, nil
}

func (cs *contactService) Delete(ctx context.Context, workspaceID uuid.UUID, contactIDs []uuid.UUID) error {
	if err := cs.contactRepo.Delete(ctx, nil, contactIDs); err != nil {
		return fmt.Errorf("delete contacts: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return nil
}

func (cs *contactService) LogCall(ctx context.Context, workspaceID uuid.UUID, call *types.Call) (*types.Call, error) {
	created, err := cs.callRepo.Create(ctx, nil, []*types.Call{call})
	if err != nil {
		return nil, fmt.Errorf("log call: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (cs *contactService) LogEmail(ctx context.Context, workspaceID uuid.UUID, email *types.Email) (*types.Email, error) {
	created, err := cs.emailRepo.Create(ctx, nil, []*types.Email{email})
	if err != nil {
		return nil, fmt.Errorf("log email: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (cs *contactService) AddDeal(ctx context.Context, workspaceID uuid.UUID, deal *types.FuelDeal) (*types.FuelDeal, error) {
	created, err := cs.dealRepo.Create(ctx, nil, []*types.FuelDeal{deal})
	if err != nil {
		return nil, fmt.Errorf("add deal: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (cs *contactService) AddPerson(ctx context.Context, workspaceID uuid.UUID, person *types.ContactPerson) (*types.ContactPerson, error) {
	created, err := cs.personRepo.Create(ctx, nil, []*types.ContactPerson{person})
	if err != nil {
		return nil, fmt.Errorf("add contact person: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (cs *contactService) AddVessel(ctx context.Context, workspaceID uuid.UUID, vessel *types.Vessel) (*types.Vessel, error) {
	created, err := cs.vesselRepo.Create(ctx, nil, []*types.Vessel{vessel})
	if err != nil {
		return nil, fmt.Errorf("add vessel: %w", err)
	}
	cs.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

// ListSummaries loads the workspace's contacts and all related records, then
// hands everything to the aggregator. The related loads fan out; the
// aggregation itself is a single pure call.
func (cs *contactService) ListSummaries(ctx context.Context, workspaceID uuid.UUID, now time.Time) ([]*ContactSummary, error) {
	contacts, err := cs.contactRepo.ListByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}

	var (
		persons []*types.ContactPerson
		calls   []*types.Call
		emails  []*types.Email
		deals   []*types.FuelDeal
		vessels []*types.Vessel
		tasks   []*types.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persons, err = cs.personRepo.ListByContactIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		calls, err = cs.callRepo.ListByContactIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		emails, err = cs.emailRepo.ListByContactIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		deals, err = cs.dealRepo.ListByContactIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		vessels, err = cs.vesselRepo.ListByContactIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = cs.taskRepo.ListByContactIDs(gctx, nil, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load contact activity: %w", err)
	}

	return SummarizeContacts(contacts, persons, calls, emails, deals, vessels, tasks, now), nil
}

func (cs *contactService) View(ctx context.Context, workspaceID uuid.UUID, cfg ContactFilterConfig, now time.Time) ([]*ContactSummary, error) {
	if payload, ok := cs.viewCache.Get(ctx, workspaceID, contactViewKind, cfg); ok {
		var cached []*ContactSummary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	summaries, err := cs.ListSummaries(ctx, workspaceID, now)
	if err != nil {
		return nil, err
	}
	filtered := FilterContacts(summaries, cfg, now)

	if payload, err := json.Marshal(filtered); err == nil {
		cs.viewCache.Set(ctx, workspaceID, contactViewKind, cfg, payload)
	}
	return filtered, nil
}
