package entity

import (
	"context"
)

type Lead struct {
	ID               int64  `json:"id"`
	CompanyName      string `json:"company_name"`
	SourceApp        string `json:"source_app"`
	City             string `json:"city"`
	Category         string `json:"category"`
	Website          string `json:"website,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	LastContacted    string `json:"last_contacted"` // YYYY-MM-DD
	TimesContacted   int    `json:"times_contacted"`
	OpportunityScore int    `json:"opportunity_score"` // 0-100
}

// GroupCount is one row of a grouped report (by city, category or company name).
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]Lead, error)
	CountTotal(ctx context.Context) (int, error)
	CountDistinctCities(ctx context.Context) (int, error)
	SumTimesContacted(ctx context.Context) (int, error)
	CountWithScoreAtLeast(ctx context.Context, threshold int) (int, error)
	CountByCity(ctx context.Context) ([]GroupCount, error)
	CountByCategory(ctx context.Context) ([]GroupCount, error)
	FindDuplicateNames(ctx context.Context) ([]GroupCount, error)
}
