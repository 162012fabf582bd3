package usecase

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/glass-strategies/stormcommand/internal/entity"
	"github.com/glass-strategies/stormcommand/internal/infra/http/middleware"
)

const pitchTemplate = `Dear {{.Company}} Team,

As a {{.Category}} in {{.City}}, your property faces significant hurricane risk. Glass Strategies specializes in impact-resistant window solutions that meet Miami-Dade standards. We've protected over 500 properties in hurricane zones with our certified systems.

Would you be interested in a brief consultation about fortifying {{.Company}} before the next hurricane season?

Best regards,
Glass Strategies Team`

var pitch = template.Must(template.New("pitch").Parse(pitchTemplate))

type GenerateEmailUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Mail     MailSender // nil when SMTP is not configured
	Log      *zap.Logger
}

func NewGenerateEmailUseCase(leadRepo entity.LeadRepositoryInterface, mail MailSender, logger *zap.Logger) *GenerateEmailUseCase {
	return &GenerateEmailUseCase{
		LeadRepo: leadRepo,
		Mail:     mail,
		Log:      logger,
	}
}

// Execute composes the outreach email and records the contact. The lead
// upsert and the optional SMTP delivery are best-effort: their failures are
// logged and counted but never surface to the caller, who always gets the
// composed text back. Empty input fields degrade into empty interpolations.
func (uc *GenerateEmailUseCase) Execute(ctx context.Context, input GenerateEmailInput) (*GenerateEmailOutput, error) {
	subject := fmt.Sprintf("Hurricane Protection for %s", input.CompanyName)

	var body bytes.Buffer
	err := pitch.Execute(&body, struct {
		Company, City, Category string
	}{input.CompanyName, input.City, input.Category})
	if err != nil {
		return nil, err
	}

	email := fmt.Sprintf("Subject: %s\n\n%s", subject, body.String())

	lead := &entity.Lead{
		CompanyName:      input.CompanyName,
		SourceApp:        "email-generator",
		City:             input.City,
		Category:         input.Category,
		Website:          input.Website,
		LastContacted:    time.Now().Format("2006-01-02"),
		TimesContacted:   1,
		OpportunityScore: 50,
	}

	if err := uc.LeadRepo.Upsert(ctx, lead); err != nil {
		middleware.RecordLeadUpsertFailure()
		uc.Log.Warn("lead upsert failed, email still returned",
			zap.String("company", input.CompanyName),
			zap.Error(err))
	}

	if uc.Mail != nil && input.Recipient != "" {
		if err := uc.Mail.Send(input.Recipient, subject, body.String()); err != nil {
			middleware.RecordMailSendFailure()
			uc.Log.Warn("outreach email delivery failed",
				zap.String("recipient", input.Recipient),
				zap.Error(err))
		}
	}

	middleware.RecordEmailGenerated()

	return &GenerateEmailOutput{Email: email}, nil
}
