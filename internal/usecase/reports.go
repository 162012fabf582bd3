package usecase

import (
	"context"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

type ReportsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewReportsUseCase(leadRepo entity.LeadRepositoryInterface) *ReportsUseCase {
	return &ReportsUseCase{LeadRepo: leadRepo}
}

// Execute is a straight pass-through of the three grouped lead queries. The
// three reads run as separate statements, so a write landing between them can
// be visible in one report and not another; acceptable for an internal tool.
func (uc *ReportsUseCase) Execute(ctx context.Context) (*ReportsOutput, error) {
	byCity, err := uc.LeadRepo.CountByCity(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.LeadRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	duplicates, err := uc.LeadRepo.FindDuplicateNames(ctx)
	if err != nil {
		return nil, err
	}

	return &ReportsOutput{
		ByCity:     byCity,
		ByCategory: byCategory,
		Duplicates: duplicates,
	}, nil
}
