package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/repos"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

const supplierViewKind = "suppliers"

type SupplierService interface {
	Create(ctx context.Context, workspaceID uuid.UUID, suppliers []*types.Supplier) ([]*types.Supplier, error)
	Update(ctx context.Context, supplier *types.Supplier) (*types.Supplier, error)
	Delete(ctx context.Context, workspaceID uuid.UUID, supplierIDs []uuid.UUID) error

	AddOrder(ctx context.Context, workspaceID uuid.UUID, order *types.SupplierOrder) (*types.SupplierOrder, error)
	AddContact(ctx context.Context, workspaceID uuid.UUID, contact *types.SupplierContact) (*types.SupplierContact, error)
	AddPort(ctx context.Context, workspaceID uuid.UUID, port *types.SupplierPort) (*types.SupplierPort, error)

	ListSummaries(ctx context.Context, workspaceID uuid.UUID) ([]*SupplierSummary, error)
	View(ctx context.Context, workspaceID uuid.UUID, cfg SupplierFilterConfig) ([]*SupplierSummary, error)
}

type supplierService struct {
	db           *gorm.DB
	log          *logger.Logger
	supplierRepo repos.SupplierRepo
	orderRepo    repos.SupplierOrderRepo
	contactRepo  repos.SupplierContactRepo
	portRepo     repos.SupplierPortRepo
	viewCache    ViewCache
}

func NewSupplierService(
	db *gorm.DB,
	log *logger.Logger,
	supplierRepo repos.SupplierRepo,
	orderRepo repos.SupplierOrderRepo,
	contactRepo repos.SupplierContactRepo,
	portRepo repos.SupplierPortRepo,
	viewCache ViewCache,
) SupplierService {
	serviceLog := log.With("service", "SupplierService")
	return &supplierService{
		db:           db,
		log:          serviceLog,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		contactRepo:  contactRepo,
		portRepo:     portRepo,
		viewCache:    viewCache,
	}
}

func (ss *supplierService) Create(ctx context.Context, workspaceID uuid.UUID, suppliers []*types.Supplier) ([]*types.Supplier, error) {
	for _, s := range suppliers {
		s.WorkspaceID = workspaceID
	}
	created, err := ss.supplierRepo.Create(ctx, nil, suppliers)
	if err != nil {
		return nil, fmt.Errorf("create suppliers: %w", err)
	}
	ss.viewCache.Invalidate(ctx, workspaceID)
	return created, nil
}

func (ss *supplierService) Update(ctx context.Context, supplier *types.Supplier) (*types.Supplier, error) {
	updated, err := ss.supplierRepo.Update(ctx, nil, supplier)
	if err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	ss.viewCache.Invalidate(ctx, supplier.WorkspaceID)
	return updated, nil
}

func (ss *supplierService) Delete(ctx context.Context, workspaceID uuid.UUID, supplierIDs []uuid.UUID) error {
	if err := ss.supplierRepo.Delete(ctx, nil, supplierIDs); err != nil {
		return fmt.Errorf("delete suppliers: %w", err)
	}
	ss.viewCache.Invalidate(ctx, workspaceID)
	return nil
}

func (ss *supplierService) AddOrder(ctx context.Context, workspaceID uuid.UUID, order *types.SupplierOrder) (*types.SupplierOrder, error) {
	created, err := ss.orderRepo.Create(ctx, nil, []*types.SupplierOrder{order})
	if err != nil {
		return nil, fmt.Errorf("add supplier order: %w", err)
	}
	ss.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (ss *supplierService) AddContact(ctx context.Context, workspaceID uuid.UUID, contact *types.SupplierContact) (*types.SupplierContact, error) {
	created, err := ss.contactRepo.Create(ctx, nil, []*types.SupplierContact{contact})
	if err != nil {
		return nil, fmt.Errorf("add supplier contact: %w", err)
	}
	ss.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (ss *supplierService) AddPort(ctx context.Context, workspaceID uuid.UUID, port *types.SupplierPort) (*types.SupplierPort, error) {
	created, err := ss.portRepo.Create(ctx, nil, []*types.SupplierPort{port})
	if err != nil {
		return nil, fmt.Errorf("add supplier port: %w", err)
	}
	ss.viewCache.Invalidate(ctx, workspaceID)
	return created[0], nil
}

func (ss *supplierService) ListSummaries(ctx context.Context, workspaceID uuid.UUID) ([]*SupplierSummary, error) {
	suppliers, err := ss.supplierRepo.ListByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.ID)
	}

	var (
		orders   []*types.SupplierOrder
		contacts []*types.SupplierContact
		ports    []*types.SupplierPort
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = ss.orderRepo.ListBySupplierIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = ss.contactRepo.ListBySupplierIDs(gctx, nil, ids)
		return err
	})
	g.Go(func() error {
		var err error
		ports, err = ss.portRepo.ListBySupplierIDs(gctx, nil, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load supplier records: %w", err)
	}

	return SummarizeSuppliers(suppliers, orders, contacts, ports), nil
}

func (ss *supplierService) View(ctx context.Context, workspaceID uuid.UUID, cfg SupplierFilterConfig) ([]*SupplierSummary, error) {
	if payload, ok := ss.viewCache.Get(ctx, workspaceID, supplierViewKind, cfg); ok {
		var cached []*SupplierSummary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	summaries, err := ss.ListSummaries(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	filtered := FilterSuppliers(summaries, cfg)

	if payload, err := json.Marshal(filtered); err == nil {
		ss.viewCache.Set(ctx, workspaceID, supplierViewKind, cfg, payload)
	}
	return filtered, nil
}
