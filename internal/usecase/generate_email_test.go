package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

func TestGenerateEmailComposesAndRecordsLead(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	var recorded *entity.Lead
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(*entity.Lead)
	}).Return(nil).Once()

	uc := NewGenerateEmailUseCase(mockRepo, nil, zap.NewNop())

	output, err := uc.Execute(context.Background(), GenerateEmailInput{
		CompanyName: "Acme Hotels",
		Website:     "acme.com",
		City:        "Miami",
		Category:    "Hotels",
	})

	assert.NoError(t, err)
	assert.Contains(t, output.Email, "Acme Hotels")
	assert.Contains(t, output.Email, "Miami")
	assert.Contains(t, output.Email, "Hotels")
	assert.Contains(t, output.Email, "Subject: Hurricane Protection for Acme Hotels")

	mockRepo.AssertNumberOfCalls(t, "Upsert", 1)
	assert.Equal(t, "Acme Hotels", recorded.CompanyName)
	assert.Equal(t, "email-generator", recorded.SourceApp)
	assert.Equal(t, "Miami", recorded.City)
	assert.Equal(t, "Hotels", recorded.Category)
	assert.Equal(t, "acme.com", recorded.Website)
	assert.Equal(t, time.Now().Format("2006-01-02"), recorded.LastContacted)
	assert.Equal(t, 1, recorded.TimesContacted)
	assert.Equal(t, 50, recorded.OpportunityScore)
}

func TestGenerateEmailUpsertFailureStillReturnsEmail(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := NewGenerateEmailUseCase(mockRepo, nil, zap.NewNop())

	output, err := uc.Execute(context.Background(), GenerateEmailInput{
		CompanyName: "Acme Hotels",
		City:        "Miami",
		Category:    "Hotels",
	})

	assert.NoError(t, err)
	assert.Contains(t, output.Email, "Acme Hotels")
}

func TestGenerateEmailEmptyFieldsDegradeGracefully(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	uc := NewGenerateEmailUseCase(mockRepo, nil, zap.NewNop())

	output, err := uc.Execute(context.Background(), GenerateEmailInput{})

	assert.NoError(t, err)
	assert.Contains(t, output.Email, "Subject: Hurricane Protection for ")
	assert.Contains(t, output.Email, "Dear  Team")
}

func TestGenerateEmailDeliversWhenRecipientSet(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	mockMail := new(MockMailSender)
	mockMail.On("Send", "buyer@acme.com", "Hurricane Protection for Acme Hotels", mock.Anything).Return(nil).Once()

	uc := NewGenerateEmailUseCase(mockRepo, mockMail, zap.NewNop())

	_, err := uc.Execute(context.Background(), GenerateEmailInput{
		CompanyName: "Acme Hotels",
		City:        "Miami",
		Category:    "Hotels",
		Recipient:   "buyer@acme.com",
	})

	assert.NoError(t, err)
	mockMail.AssertExpectations(t)
}

func TestGenerateEmailDeliveryFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	mockMail := new(MockMailSender)
	mockMail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	uc := NewGenerateEmailUseCase(mockRepo, mockMail, zap.NewNop())

	output, err := uc.Execute(context.Background(), GenerateEmailInput{
		CompanyName: "Acme Hotels",
		City:        "Miami",
		Category:    "Hotels",
		Recipient:   "buyer@acme.com",
	})

	assert.NoError(t, err)
	assert.Contains(t, output.Email, "Acme Hotels")
}

func TestGenerateEmailNoDeliveryWithoutRecipient(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	mockMail := new(MockMailSender)

	uc := NewGenerateEmailUseCase(mockRepo, mockMail, zap.NewNop())

	_, err := uc.Execute(context.Background(), GenerateEmailInput{
		CompanyName: "Acme Hotels",
		City:        "Miami",
		Category:    "Hotels",
	})

	assert.NoError(t, err)
	mockMail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
