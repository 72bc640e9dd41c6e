package repositories

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// TemplateRepository defines persistence operations for posting templates.
type TemplateRepository interface {
	SaveTemplate(ctx context.Context, template domain.Template) error

	// DeleteTemplate removes a template by id. Fails with
	// apperrors.ErrNotFound for an unknown id.
	DeleteTemplate(ctx context.Context, templateID string) error

	ListTemplates(ctx context.Context) ([]domain.Template, error)
}
