package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
	"github.com/ledgerlite/ledgerlite/internal/dto"
)

// templateService manages posting templates.
type templateService struct {
	BaseService
	templateRepo portsrepo.TemplateRepository
}

// NewTemplateService creates a new template service.
func NewTemplateService(templateRepo portsrepo.TemplateRepository) portssvc.TemplateSvc {
	return &templateService{templateRepo: templateRepo}
}

var _ portssvc.TemplateSvc = (*templateService)(nil)

func (s *templateService) AddTemplate(ctx context.Context, req dto.SaveTemplateRequest) (*domain.Template, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	template := domain.Template{
		TemplateID:  uuid.NewString(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Postings:    dto.ToPostings(req.Postings),
	}
	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		s.LogError(ctx, err, "Failed to save template", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Template created",
		slog.String("template_id", template.TemplateID),
		slog.String("name", template.Name))
	return &template, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, templateID string) error {
	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		s.LogError(ctx, err, "Failed to delete template", slog.String("template_id", templateID))
		return err
	}
	s.LogInfo(ctx, "Template deleted", slog.String("template_id", templateID))
	return nil
}

func (s *templateService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return s.templateRepo.ListTemplates(ctx)
}
