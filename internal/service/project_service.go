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
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	status := req.Status
	if status == "" {
		status = model.ProjectStatusPending
	}
	p := &model.Project{
		Name:     req.Name,
		Client:   req.Client,
		Status:   status,
		Budget:   req.Budget,
		Progress: req.Progress,
	}
	if d, err := parseDatePtr(req.StartDate); err == nil {
		p.StartDate = d
	}
	if d, err := parseDatePtr(req.EndDate); err == nil {
		p.EndDate = d
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.NewPersistence("project: create", err)
	}
	return projectToResponse(p), nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("project", id.String())
		}
		return nil, apierror.NewFetch("project: find", err)
	}
	return projectToResponse(p), nil
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("project: list", err)
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, *projectToResponse(&projects[i]))
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("project", id.String())
		}
		return nil, apierror.NewFetch("project: find", err)
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Client != "" {
		p.Client = req.Client
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.Expenses != nil {
		p.Expenses = *req.Expenses
	}
	if req.Progress != nil {
		p.Progress = *req.Progress
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.NewPersistence("project: update", err)
	}
	return projectToResponse(p), nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("project", id.String())
		}
		return apierror.NewFetch("project: find", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NewPersistence("project: delete", err)
	}
	return nil
}

func projectToResponse(p *model.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Client:   p.Client,
		Status:   p.Status,
		Budget:   p.Budget,
		Expenses: p.Expenses,
		Progress: p.Progress,
	}
	if p.StartDate != nil {
		d := p.StartDate.Format("2006-01-02")
		resp.StartDate = &d
	}
	if p.EndDate != nil {
		d := p.EndDate.Format("2006-01-02")
		resp.EndDate = &d
	}
	return resp
}

// parseDatePtr parses an optional "YYYY-MM-DD" string; nil in, nil out.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
