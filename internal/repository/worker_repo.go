package repository

import (
	"context"

	"banaapro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(ctx context.Context, w *model.Worker) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Worker, error)
	List(ctx context.Context) ([]model.Worker, error)
	Update(ctx context.Context, w *model.Worker) error
	CreateAttendance(ctx context.Context, a *model.Attendance) error
	ListAttendance(ctx context.Context, workerID uuid.UUID) ([]model.Attendance, error)
	CreatePayment(ctx context.Context, p *model.WorkerPayment) error
	ListPayments(ctx context.Context, workerID uuid.UUID) ([]model.WorkerPayment, error)
}

type workerRepo struct{ db *gorm.DB }

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepo{db: db}
}

func (r *workerRepo) Create(ctx context.Context, w *model.Worker) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Worker, error) {
	var w model.Worker
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *workerRepo) List(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	err := r.db.WithContext(ctx).Order("name ASC").Find(&workers).Error
	return workers, err
}

func (r *workerRepo) Update(ctx context.Context, w *model.Worker) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *workerRepo) CreateAttendance(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *workerRepo) ListAttendance(ctx context.Context, workerID uuid.UUID) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *workerRepo) CreatePayment(ctx context.Context, p *model.WorkerPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *workerRepo) ListPayments(ctx context.Context, workerID uuid.UUID) ([]model.WorkerPayment, error) {
	var payments []model.WorkerPayment
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("date ASC").
		Find(&payments).Error
	return payments, err
}
