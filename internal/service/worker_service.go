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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WorkerService interface {
	Create(ctx context.Context, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkerResponse, error)
	List(ctx context.Context) ([]dto.WorkerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error)
	RecordAttendance(ctx context.Context, id uuid.UUID, req dto.RecordAttendanceRequest) error
	RecordPayment(ctx context.Context, id uuid.UUID, req dto.RecordWorkerPaymentRequest) error
	// Statement derives the payroll figures for one worker: days worked at
	// half-day granularity, earned = days × daily rate, paid, and balance.
	Statement(ctx context.Context, id uuid.UUID) (*dto.WorkerStatement, error)
}

type workerService struct {
	repo repository.WorkerRepository
}

func NewWorkerService(repo repository.WorkerRepository) WorkerService {
	return &workerService{repo: repo}
}

func (s *workerService) Create(ctx context.Context, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	w := &model.Worker{
		Name:           req.Name,
		Trade:          req.Trade,
		Phone:          req.Phone,
		DailyRate:      req.DailyRate,
		CurrentProject: req.CurrentProject,
		Active:         true,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, apierror.NewPersistence("worker: create", err)
	}
	return workerToResponse(w), nil
}

func (s *workerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.WorkerResponse, error) {
	w, err := s.findWorker(ctx, id)
	if err != nil {
		return nil, err
	}
	return workerToResponse(w), nil
}

func (s *workerService) List(ctx context.Context) ([]dto.WorkerResponse, error) {
	workers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("worker: list", err)
	}
	out := make([]dto.WorkerResponse, 0, len(workers))
	for i := range workers {
		out = append(out, *workerToResponse(&workers[i]))
	}
	return out, nil
}

func (s *workerService) Update(ctx context.Context, id uuid.UUID, req dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	w, err := s.findWorker(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Name = req.Name
	w.Trade = req.Trade
	w.Phone = req.Phone
	w.DailyRate = req.DailyRate
	w.CurrentProject = req.CurrentProject
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, apierror.NewPersistence("worker: update", err)
	}
	return workerToResponse(w), nil
}

func (s *workerService) RecordAttendance(ctx context.Context, id uuid.UUID, req dto.RecordAttendanceRequest) error {
	if _, err := s.findWorker(ctx, id); err != nil {
		return err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return apierror.NewValidation(map[string]string{"date": "must be YYYY-MM-DD"})
	}
	a := &model.Attendance{
		WorkerID: id,
		Date:     date,
		Morning:  req.Morning,
		Evening:  req.Evening,
	}
	if err := s.repo.CreateAttendance(ctx, a); err != nil {
		return apierror.NewPersistence("worker: record attendance", err)
	}
	return nil
}

func (s *workerService) RecordPayment(ctx context.Context, id uuid.UUID, req dto.RecordWorkerPaymentRequest) error {
	if _, err := s.findWorker(ctx, id); err != nil {
		return err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return apierror.NewValidation(map[string]string{"date": "must be YYYY-MM-DD"})
	}
	p := &model.WorkerPayment{
		WorkerID: id,
		Amount:   req.Amount,
		Date:     date,
		Notes:    req.Notes,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return apierror.NewPersistence("worker: record payment", err)
	}
	return nil
}

func (s *workerService) Statement(ctx context.Context, id uuid.UUID) (*dto.WorkerStatement, error) {
	w, err := s.findWorker(ctx, id)
	if err != nil {
		return nil, err
	}
	attendance, err := s.repo.ListAttendance(ctx, id)
	if err != nil {
		return nil, apierror.NewFetch("worker: list attendance", err)
	}
	payments, err := s.repo.ListPayments(ctx, id)
	if err != nil {
		return nil, apierror.NewFetch("worker: list payments", err)
	}

	// Each half-day present counts 0.5.
	half := decimal.NewFromFloat(0.5)
	days := decimal.Zero
	for _, a := range attendance {
		if a.Morning {
			days = days.Add(half)
		}
		if a.Evening {
			days = days.Add(half)
		}
	}
	earned := days.Mul(w.DailyRate)

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return &dto.WorkerStatement{
		Worker:          *workerToResponse(w),
		TotalDaysWorked: days,
		TotalEarned:     earned,
		TotalPaid:       paid,
		Balance:         earned.Sub(paid),
	}, nil
}

func (s *workerService) findWorker(ctx context.Context, id uuid.UUID) (*model.Worker, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("worker", id.String())
		}
		return nil, apierror.NewFetch("worker: find", err)
	}
	return w, nil
}

func workerToResponse(w *model.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:             w.ID.String(),
		Name:           w.Name,
		Trade:          w.Trade,
		Phone:          w.Phone,
		DailyRate:      w.DailyRate,
		CurrentProject: w.CurrentProject,
		Active:         w.Active,
	}
}
