package application

import (
	"context"
	"time"

	"github.com/eventware/survey-go/internal/domain/survey"
	"github.com/eventware/survey-go/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// TemplateService owns custom survey template documents. It also reads the
// responses collection so list and get results carry a freshly computed
// response count instead of the stored counter, which may drift.
type TemplateService struct {
	templates repository.TemplateRepo
	responses repository.ResponseRepo
}

func NewTemplateService(repos *repository.Repos) *TemplateService {
	return &TemplateService{
		templates: repos.Template,
		responses: repos.Response,
	}
}

func (s *TemplateService) Create(ctx context.Context, input survey.CreateTemplateDTO) (string, error) {
	now := time.Now().UTC()
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	t := &survey.Template{
		Name:          input.Name,
		Description:   input.Description,
		Schema:        input.Schema,
		CreatedBy:     input.CreatedBy,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
		ResponseCount: 0,
	}
	return s.templates.Create(ctx, t)
}

// GetByID returns (nil, nil) when the id resolves to nothing.
func (s *TemplateService) GetByID(ctx context.Context, id string) (*survey.Template, error) {
	t, err := s.templates.FindByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	count, err := s.responses.Count(ctx, t.ID.Hex())
	if err != nil {
		return nil, err
	}
	t.ResponseCount = count
	return t, nil
}

func (s *TemplateService) List(ctx context.Context, skip, limit int64, isActive *bool) ([]survey.Template, error) {
	templates, err := s.templates.Find(ctx, isActive, skip, limit)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		count, err := s.responses.Count(ctx, templates[i].ID.Hex())
		if err != nil {
			return nil, err
		}
		templates[i].ResponseCount = count
	}
	return templates, nil
}

func (s *TemplateService) Count(ctx context.Context, isActive *bool) (int64, error) {
	return s.templates.Count(ctx, isActive)
}

// Update applies only the supplied fields. Returns false when the id is
// unknown or nothing was supplied.
func (s *TemplateService) Update(ctx context.Context, id string, input survey.UpdateTemplateDTO) (bool, error) {
	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Schema != nil {
		fields["schema"] = *input.Schema
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) == 0 {
		return false, nil
	}
	fields["updated_at"] = time.Now().UTC()
	return s.templates.Update(ctx, id, fields)
}

// Delete removes the template only. Its responses are left in place; the
// orphaning is accepted rather than cascaded.
func (s *TemplateService) Delete(ctx context.Context, id string) (bool, error) {
	return s.templates.Delete(ctx, id)
}
