package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

var exportHeader = []string{
	"ID", "Company", "Source", "City", "Category", "Website",
	"Email", "Phone", "Last Contacted", "Times Contacted", "Score",
}

type ExportLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewExportLeadsUseCase(leadRepo entity.LeadRepositoryInterface) *ExportLeadsUseCase {
	return &ExportLeadsUseCase{LeadRepo: leadRepo}
}

// Execute serializes every lead to CSV, one row per record in store order,
// columns matching the schema. The filename embeds the current date.
func (uc *ExportLeadsUseCase) Execute(ctx context.Context) (*ExportOutput, error) {
	leads, err := uc.LeadRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, l := range leads {
		record := []string{
			strconv.FormatInt(l.ID, 10),
			l.CompanyName,
			l.SourceApp,
			l.City,
			l.Category,
			l.Website,
			l.Email,
			l.Phone,
			l.LastContacted,
			strconv.Itoa(l.TimesContacted),
			strconv.Itoa(l.OpportunityScore),
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &ExportOutput{
		Filename: fmt.Sprintf("leads_export_%s.csv", time.Now().Format("20060102")),
		Data:     buf.Bytes(),
	}, nil
}
