package database

import (
	"context"
	"database/sql"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert writes the lead keyed by company name, replacing any existing row in
// full. Replacement resets times_contacted to 1 and clears email/phone; the
// row id changes because INSERT OR REPLACE deletes and reinserts.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT OR REPLACE INTO leads
			(company_name, source_app, city, category, website, last_contacted, times_contacted, opportunity_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		lead.CompanyName,
		lead.SourceApp,
		lead.City,
		lead.Category,
		nullString(lead.Website),
		lead.LastContacted,
		lead.TimesContacted,
		lead.OpportunityScore,
	)
	if err != nil {
		return err
	}

	if id, err := res.LastInsertId(); err == nil {
		lead.ID = id
	}

	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, company_name, source_app, city, category,
		       COALESCE(website, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(last_contacted, ''), times_contacted, opportunity_score
		FROM leads
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID,
			&l.CompanyName,
			&l.SourceApp,
			&l.City,
			&l.Category,
			&l.Website,
			&l.Email,
			&l.Phone,
			&l.LastContacted,
			&l.TimesContacted,
			&l.OpportunityScore,
		); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) CountTotal(ctx context.Context) (int, error) {
	return r.scalar(ctx, `SELECT COUNT(*) FROM leads`)
}

func (r *LeadRepository) CountDistinctCities(ctx context.Context) (int, error) {
	return r.scalar(ctx, `SELECT COUNT(DISTINCT city) FROM leads`)
}

func (r *LeadRepository) SumTimesContacted(ctx context.Context) (int, error) {
	return r.scalar(ctx, `SELECT COALESCE(SUM(times_contacted), 0) FROM leads`)
}

func (r *LeadRepository) CountWithScoreAtLeast(ctx context.Context, threshold int) (int, error) {
	return r.scalar(ctx, `SELECT COUNT(*) FROM leads WHERE opportunity_score >= ?`, threshold)
}

func (r *LeadRepository) CountByCity(ctx context.Context) ([]entity.GroupCount, error) {
	return r.grouped(ctx, `
		SELECT city, COUNT(*) AS count
		FROM leads
		GROUP BY city
		ORDER BY count DESC
	`)
}

func (r *LeadRepository) CountByCategory(ctx context.Context) ([]entity.GroupCount, error) {
	return r.grouped(ctx, `
		SELECT category, COUNT(*) AS count
		FROM leads
		GROUP BY category
		ORDER BY count DESC
	`)
}

// FindDuplicateNames reports company names appearing more than once. With the
// UNIQUE constraint and insert-or-replace writes this is always empty; the
// query stays in case uniqueness is ever relaxed.
func (r *LeadRepository) FindDuplicateNames(ctx context.Context) ([]entity.GroupCount, error) {
	return r.grouped(ctx, `
		SELECT company_name, COUNT(*) AS count
		FROM leads
		GROUP BY company_name
		HAVING count > 1
	`)
}

func (r *LeadRepository) scalar(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *LeadRepository) grouped(ctx context.Context, query string) ([]entity.GroupCount, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.GroupCount
	for rows.Next() {
		var gc entity.GroupCount
		if err := rows.Scan(&gc.Name, &gc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, gc)
	}

	return counts, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
