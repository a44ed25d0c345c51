package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/model"
	"banaapro/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	reportOverviewKey = "reports:overview"
	reportCacheTTL    = 60 * time.Second
)

type ReportService interface {
	// Overview aggregates project performance figures. Results are cached
	// in Redis for a minute; a nil client disables caching.
	Overview(ctx context.Context) (*dto.ReportOverview, error)
}

type reportService struct {
	projectRepo repository.ProjectRepository
	rdb         *redis.Client
}

func NewReportService(projectRepo repository.ProjectRepository, rdb *redis.Client) ReportService {
	return &reportService{projectRepo: projectRepo, rdb: rdb}
}

func (s *reportService) Overview(ctx context.Context) (*dto.ReportOverview, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, reportOverviewKey).Result(); err == nil {
			var overview dto.ReportOverview
			if err := json.Unmarshal([]byte(cached), &overview); err == nil {
				return &overview, nil
			}
		}
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, apierror.NewFetch("report: list projects", err)
	}

	activeCount := 0
	progressSum := 0
	totalBudget := decimal.Zero
	totalExpenses := decimal.Zero
	for _, p := range projects {
		if p.Status == model.ProjectStatusActive {
			activeCount++
			progressSum += p.Progress
		}
		totalBudget = totalBudget.Add(p.Budget)
		totalExpenses = totalExpenses.Add(p.Expenses)
	}

	avgProgress := 0
	if activeCount > 0 {
		avgProgress = int(math.Round(float64(progressSum) / float64(activeCount)))
	}
	utilization := 0
	if totalBudget.IsPositive() {
		ratio := totalExpenses.Div(totalBudget).Mul(decimal.NewFromInt(100))
		utilization = int(ratio.Round(0).IntPart())
	}

	overview := &dto.ReportOverview{
		ActiveCount:       activeCount,
		AvgProgress:       avgProgress,
		TotalBudget:       totalBudget,
		TotalExpenses:     totalExpenses,
		BudgetUtilization: utilization,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(overview); err == nil {
			if err := s.rdb.Set(ctx, reportOverviewKey, data, reportCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("report: failed to cache overview")
			}
		}
	}

	return overview, nil
}
