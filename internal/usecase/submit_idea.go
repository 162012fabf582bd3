package usecase

import (
	"context"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

// recentSubmissionsLimit caps the collaboration page listing.
const recentSubmissionsLimit = 20

type SubmitIdeaUseCase struct {
	SubmissionRepo entity.SubmissionRepositoryInterface
}

func NewSubmitIdeaUseCase(submissionRepo entity.SubmissionRepositoryInterface) *SubmitIdeaUseCase {
	return &SubmitIdeaUseCase{SubmissionRepo: submissionRepo}
}

func (uc *SubmitIdeaUseCase) Execute(ctx context.Context, input SubmitIdeaInput) (*SubmitIdeaOutput, error) {
	validationErrors := ValidateSubmitIdeaInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	submission := &entity.CollabSubmission{
		Name:        input.Name,
		IdeaType:    input.Type,
		Description: input.Description,
		Priority:    input.Priority,
	}

	id, err := uc.SubmissionRepo.Insert(ctx, submission)
	if err != nil {
		return nil, err
	}

	return &SubmitIdeaOutput{Success: true, ID: id}, nil
}

func (uc *SubmitIdeaUseCase) ListRecent(ctx context.Context) ([]entity.CollabSubmission, error) {
	return uc.SubmissionRepo.ListRecent(ctx, recentSubmissionsLimit)
}
