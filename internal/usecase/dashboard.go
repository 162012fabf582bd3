package usecase

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/catalog"
	"github.com/glass-strategies/stormcommand/internal/entity"
	"github.com/glass-strategies/stormcommand/internal/infra/http/middleware"
)

// newsLimit caps how many advisory items the dashboard shows.
const newsLimit = 5

// successThreshold is the opportunity score at or above which a lead counts
// toward the success rate.
const successThreshold = 70

type DashboardUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	News     NewsFetcher
	Log      *zap.Logger
}

func NewDashboardUseCase(leadRepo entity.LeadRepositoryInterface, news NewsFetcher, logger *zap.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		LeadRepo: leadRepo,
		News:     news,
		Log:      logger,
	}
}

// Execute assembles the dashboard view model: summary stats, the application
// grid, the hurricane zone markers, and up to five advisory items. A failed
// feed fetch degrades to an empty news list.
func (uc *DashboardUseCase) Execute(ctx context.Context) (*DashboardOutput, error) {
	stats, err := uc.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	news, err := uc.News.Fetch(ctx, newsLimit)
	if err != nil {
		middleware.RecordFeedError()
		uc.Log.Warn("advisory feed fetch failed, rendering empty", zap.Error(err))
		news = nil
	}

	return &DashboardOutput{
		Stats:          stats,
		AppGrid:        catalog.AppGrid(),
		HurricaneZones: catalog.HurricaneZones,
		News:           news,
	}, nil
}

// computeStats mirrors the dashboard counters: success rate is only computed
// once at least one email has gone out, and is the share of leads scoring at
// or above the threshold, rounded to one decimal place.
func (uc *DashboardUseCase) computeStats(ctx context.Context) (Stats, error) {
	totalLeads, err := uc.LeadRepo.CountTotal(ctx)
	if err != nil {
		return Stats{}, err
	}

	citiesActive, err := uc.LeadRepo.CountDistinctCities(ctx)
	if err != nil {
		return Stats{}, err
	}

	emailsSent, err := uc.LeadRepo.SumTimesContacted(ctx)
	if err != nil {
		return Stats{}, err
	}

	var successRate float64
	if emailsSent > 0 && totalLeads > 0 {
		successful, err := uc.LeadRepo.CountWithScoreAtLeast(ctx, successThreshold)
		if err != nil {
			return Stats{}, err
		}
		successRate = math.Round(float64(successful)/float64(totalLeads)*1000) / 10
	}

	return Stats{
		TotalLeads:   totalLeads,
		CitiesActive: citiesActive,
		EmailsSent:   emailsSent,
		SuccessRate:  successRate,
	}, nil
}
