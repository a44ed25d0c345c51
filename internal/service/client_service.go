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

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c := &model.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
		Notes:   req.Notes,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apierror.NewPersistence("client: create", err)
	}
	return clientToResponse(c), nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("client", id.String())
		}
		return nil, apierror.NewFetch("client: find", err)
	}
	return clientToResponse(c), nil
}

func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("client: list", err)
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *clientToResponse(&clients[i]))
	}
	return out, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("client", id.String())
		}
		return nil, apierror.NewFetch("client: find", err)
	}
	c.Name = req.Name
	c.Phone = req.Phone
	c.Address = req.Address
	c.Email = req.Email
	c.Notes = req.Notes
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apierror.NewPersistence("client: update", err)
	}
	return clientToResponse(c), nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("client", id.String())
		}
		return apierror.NewFetch("client: find", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NewPersistence("client: delete", err)
	}
	return nil
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		TotalDebt: c.TotalDebt,
		Notes:     c.Notes,
	}
}
