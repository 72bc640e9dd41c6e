package memory

import (
	"context"
	"fmt"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func (s *Store) SaveTemplate(ctx context.Context, template domain.Template) error {
	stored := template.Clone()

	s.mu.Lock()
	s.templates = append(s.templates, stored)
	s.logAction("Create Template", fmt.Sprintf("Created template %s", stored.Name))
	s.mu.Unlock()

	s.notify("Create Template", stored.TemplateID)
	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, templateID string) error {
	s.mu.Lock()
	idx := -1
	for i, t := range s.templates {
		if t.TemplateID == templateID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: template %s", apperrors.ErrNotFound, templateID)
	}
	name := s.templates[idx].Name
	s.templates = append(s.templates[:idx], s.templates[idx+1:]...)
	s.logAction("Delete Template", fmt.Sprintf("Deleted template %s", name))
	s.mu.Unlock()

	s.notify("Delete Template", templateID)
	return nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneTemplates(s.templates), nil
}
