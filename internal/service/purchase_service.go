package service

import (
	"context"
	"errors"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PurchaseService interface {
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	List(ctx context.Context) ([]dto.PurchaseResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseStatusRequest) (*dto.PurchaseResponse, error)
}

type purchaseService struct {
	repo         repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
}

func NewPurchaseService(repo repository.PurchaseRepository, supplierRepo repository.SupplierRepository) PurchaseService {
	return &purchaseService{repo: repo, supplierRepo: supplierRepo}
}

func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.NewValidation(map[string]string{"date": "must be YYYY-MM-DD"})
	}
	status := req.Status
	if status == "" {
		status = model.PurchaseStatusOrdered
	}
	p := &model.Purchase{
		Date:      date,
		Project:   req.Project,
		Item:      req.Item,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Total:     req.Quantity.Mul(req.UnitPrice),
		Supplier:  req.Supplier,
		Status:    status,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.NewPersistence("purchase: create", err)
	}

	// Roll the order value into the vendor's running total. The purchase row
	// is the source of truth; a miss here only skews the vendor aggregate.
	if p.Supplier != "" {
		sup, err := s.supplierRepo.FindByName(ctx, p.Supplier)
		if err == nil {
			sup.TotalPurchases = sup.TotalPurchases.Add(p.Total)
			if err := s.supplierRepo.Update(ctx, sup); err != nil {
				log.Warn().Err(err).Str("supplier", p.Supplier).Msg("purchase: failed to update supplier total")
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("supplier", p.Supplier).Msg("purchase: supplier lookup failed")
		}
	}

	return purchaseToResponse(p), nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("purchase", id.String())
		}
		return nil, apierror.NewFetch("purchase: find", err)
	}
	return purchaseToResponse(p), nil
}

func (s *purchaseService) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("purchase: list", err)
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, *purchaseToResponse(&purchases[i]))
	}
	return out, nil
}

func (s *purchaseService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseStatusRequest) (*dto.PurchaseResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("purchase", id.String())
		}
		return nil, apierror.NewFetch("purchase: find", err)
	}
	p.Status = req.Status
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.NewPersistence("purchase: update status", err)
	}
	return purchaseToResponse(p), nil
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:        p.ID.String(),
		Date:      p.Date.Format("2006-01-02"),
		Project:   p.Project,
		Item:      p.Item,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Total:     p.Total,
		Supplier:  p.Supplier,
		Status:    p.Status,
	}
}
