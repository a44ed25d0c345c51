package service

import (
	"context"
	"errors"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		MaterialType: req.MaterialType,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, apierror.NewPersistence("supplier: create", err)
	}
	return supplierToResponse(sup), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("supplier", id.String())
		}
		return nil, apierror.NewFetch("supplier: find", err)
	}
	return supplierToResponse(sup), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("supplier: list", err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("supplier", id.String())
		}
		return nil, apierror.NewFetch("supplier: find", err)
	}
	sup.Name = req.Name
	sup.Phone = req.Phone
	sup.Address = req.Address
	sup.MaterialType = req.MaterialType
	sup.Notes = req.Notes
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, apierror.NewPersistence("supplier: update", err)
	}
	return supplierToResponse(sup), nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("supplier", id.String())
		}
		return apierror.NewFetch("supplier: find", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NewPersistence("supplier: delete", err)
	}
	return nil
}

func supplierToResponse(sup *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:             sup.ID.String(),
		Name:           sup.Name,
		Phone:          sup.Phone,
		Address:        sup.Address,
		MaterialType:   sup.MaterialType,
		TotalPurchases: sup.TotalPurchases,
		Notes:          sup.Notes,
	}
}
