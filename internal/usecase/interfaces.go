package usecase

import (
	"context"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

// MailSender delivers an already-composed outreach email. Implementations
// must be safe to call from request handlers.
type MailSender interface {
	Send(to, subject, body string) error
}

// NewsFetcher pulls the latest hurricane advisories. Injected so tests can
// exercise both the populated path and the empty-on-failure path.
type NewsFetcher interface {
	Fetch(ctx context.Context, limit int) ([]entity.NewsItem, error)
}
