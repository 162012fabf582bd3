package usecase

import (
	"github.com/glass-strategies/stormcommand/internal/catalog"
	"github.com/glass-strategies/stormcommand/internal/entity"
)

type GenerateEmailInput struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	City        string `json:"city"`
	Category    string `json:"category"`

	// Recipient is optional; when set and SMTP is configured the generated
	// email is also delivered, best-effort.
	Recipient string `json:"recipient,omitempty"`
}

type GenerateEmailOutput struct {
	Email string `json:"email"`
}

type Stats struct {
	TotalLeads   int     `json:"total_leads"`
	CitiesActive int     `json:"cities_active"`
	EmailsSent   int     `json:"emails_sent"`
	SuccessRate  float64 `json:"success_rate"`
}

type DashboardOutput struct {
	Stats          Stats              `json:"stats"`
	AppGrid        []catalog.AppEntry `json:"app_grid"`
	HurricaneZones []catalog.Zone     `json:"hurricane_zones"`
	News           []entity.NewsItem  `json:"news"`
}

type ReportsOutput struct {
	ByCity     []entity.GroupCount `json:"by_city"`
	ByCategory []entity.GroupCount `json:"by_category"`
	Duplicates []entity.GroupCount `json:"duplicates"`
}

type SubmitIdeaInput struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type SubmitIdeaOutput struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type ExportOutput struct {
	Filename string
	Data     []byte
}
