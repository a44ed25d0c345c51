package service_test

import (
	"context"
	"testing"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubWorkerRepo struct {
	workers    map[uuid.UUID]*model.Worker
	attendance []model.Attendance
	payments   []model.WorkerPayment
}

func newStubWorkerRepo() *stubWorkerRepo {
	return &stubWorkerRepo{workers: make(map[uuid.UUID]*model.Worker)}
}

func (r *stubWorkerRepo) Create(_ context.Context, w *model.Worker) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	cloned := *w
	r.workers[w.ID] = &cloned
	return nil
}

func (r *stubWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubWorkerRepo) List(_ context.Context) ([]model.Worker, error) {
	out := make([]model.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, *w)
	}
	return out, nil
}

func (r *stubWorkerRepo) Update(_ context.Context, w *model.Worker) error {
	cloned := *w
	r.workers[w.ID] = &cloned
	return nil
}

func (r *stubWorkerRepo) CreateAttendance(_ context.Context, a *model.Attendance) error {
	r.attendance = append(r.attendance, *a)
	return nil
}

func (r *stubWorkerRepo) ListAttendance(_ context.Context, workerID uuid.UUID) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, a := range r.attendance {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubWorkerRepo) CreatePayment(_ context.Context, p *model.WorkerPayment) error {
	r.payments = append(r.payments, *p)
	return nil
}

func (r *stubWorkerRepo) ListPayments(_ context.Context, workerID uuid.UUID) ([]model.WorkerPayment, error) {
	var out []model.WorkerPayment
	for _, p := range r.payments {
		if p.WorkerID == workerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func seedWorker(repo *stubWorkerRepo, rate string) uuid.UUID {
	w := &model.Worker{Name: "Karim", Trade: "mason", DailyRate: dec(rate), Active: true}
	_ = repo.Create(context.Background(), w)
	return w.ID
}

func day(offset int) time.Time {
	return time.Date(2026, 3, 1+offset, 0, 0, 0, 0, time.UTC)
}

func TestStatementCountsHalfDays(t *testing.T) {
	repo := newStubWorkerRepo()
	id := seedWorker(repo, "3000")
	repo.attendance = []model.Attendance{
		{WorkerID: id, Date: day(0), Morning: true, Evening: true},  // 1.0
		{WorkerID: id, Date: day(1), Morning: true, Evening: false}, // 0.5
		{WorkerID: id, Date: day(2), Morning: false, Evening: true}, // 0.5
		{WorkerID: id, Date: day(3), Morning: false, Evening: false},
	}
	svc := service.NewWorkerService(repo)

	st, err := svc.Statement(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, st.TotalDaysWorked.Equal(dec("2")), "days = %s", st.TotalDaysWorked)
	assert.True(t, st.TotalEarned.Equal(dec("6000")), "earned = %s", st.TotalEarned)
}

func TestStatementBalanceIsEarnedMinusPaid(t *testing.T) {
	repo := newStubWorkerRepo()
	id := seedWorker(repo, "2500")
	repo.attendance = []model.Attendance{
		{WorkerID: id, Date: day(0), Morning: true, Evening: true},
		{WorkerID: id, Date: day(1), Morning: true, Evening: true},
	}
	repo.payments = []model.WorkerPayment{
		{WorkerID: id, Amount: dec("3000"), Date: day(5)},
		{WorkerID: id, Amount: dec("1000"), Date: day(6)},
	}
	svc := service.NewWorkerService(repo)

	st, err := svc.Statement(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, st.TotalEarned.Equal(dec("5000")))
	assert.True(t, st.TotalPaid.Equal(dec("4000")))
	assert.True(t, st.Balance.Equal(dec("1000")))
}

func TestStatementIgnoresOtherWorkers(t *testing.T) {
	repo := newStubWorkerRepo()
	id := seedWorker(repo, "3000")
	other := seedWorker(repo, "3000")
	repo.attendance = []model.Attendance{
		{WorkerID: other, Date: day(0), Morning: true, Evening: true},
	}
	repo.payments = []model.WorkerPayment{
		{WorkerID: other, Amount: dec("3000"), Date: day(1)},
	}
	svc := service.NewWorkerService(repo)

	st, err := svc.Statement(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, st.TotalDaysWorked.IsZero())
	assert.True(t, st.TotalPaid.IsZero())
	assert.True(t, st.Balance.IsZero())
}

func TestStatementUnknownWorker(t *testing.T) {
	svc := service.NewWorkerService(newStubWorkerRepo())

	_, err := svc.Statement(context.Background(), uuid.New())

	assert.True(t, apierror.IsNotFound(err))
}

func TestRecordAttendanceRejectsBadDate(t *testing.T) {
	repo := newStubWorkerRepo()
	id := seedWorker(repo, "3000")
	svc := service.NewWorkerService(repo)

	err := svc.RecordAttendance(context.Background(), id, dto.RecordAttendanceRequest{
		Date:    "01-03-2026",
		Morning: true,
	})

	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.attendance)
}
