package application

import (
	"context"
	"log"
	"time"

	"github.com/eventware/survey-go/internal/domain/survey"
	"github.com/eventware/survey-go/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// ResponseService persists validated submissions. A response is only ever
// created through Submit; nothing writes to the responses collection without
// passing the validation engine first.
type ResponseService struct {
	responses repository.ResponseRepo
	templates repository.TemplateRepo
}

func NewResponseService(repos *repository.Repos) *ResponseService {
	return &ResponseService{
		responses: repos.Response,
		templates: repos.Template,
	}
}

// Submit resolves the template, validates the payload against its schema and
// persists the response with the template name denormalized at write time.
// The template's counter increment is best-effort: the four store operations
// are not transactional, and reads recompute the live count anyway.
func (s *ResponseService) Submit(ctx context.Context, input survey.SubmitResponseDTO) (string, error) {
	template, err := s.templates.FindByID(ctx, input.TemplateID)
	if err != nil {
		return "", err
	}
	if template == nil {
		return "", ErrTemplateNotFound
	}

	if err := survey.ValidateResponses(template.Schema, input.Responses); err != nil {
		return "", err
	}

	resp := &survey.Response{
		TemplateID:   input.TemplateID,
		TemplateName: template.Name,
		Responses:    input.Responses,
		SubmittedBy:  input.SubmittedBy,
		SubmittedAt:  time.Now().UTC(),
		Metadata:     input.Metadata,
	}
	id, err := s.responses.Insert(ctx, resp)
	if err != nil {
		return "", err
	}

	if err := s.templates.IncResponseCount(ctx, input.TemplateID, 1); err != nil {
		log.Printf("Failed to increment response_count for template %s: %v", input.TemplateID, err)
	}
	return id, nil
}

// GetByID returns the response enriched with the owning template's current
// schema. A response whose template has since been deleted reads as not
// found, matching the listing-only visibility of orphans.
func (s *ResponseService) GetByID(ctx context.Context, id string) (*survey.ResponseDetail, error) {
	resp, err := s.responses.FindByID(ctx, id)
	if err != nil || resp == nil {
		return nil, err
	}
	template, err := s.templates.FindByID(ctx, resp.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		log.Printf("Template %s not found for response %s", resp.TemplateID, id)
		return nil, nil
	}
	return &survey.ResponseDetail{Response: *resp, Schema: template.Schema}, nil
}

func (s *ResponseService) List(ctx context.Context, templateID string, skip, limit int64) ([]survey.Response, error) {
	return s.responses.Find(ctx, templateID, skip, limit)
}

func (s *ResponseService) Count(ctx context.Context, templateID string) (int64, error) {
	return s.responses.Count(ctx, templateID)
}

// Update applies a partial update. When the responses mapping is part of the
// update it is re-validated against the template schema as it exists now,
// not as it was at submission time. A metadata-only update skips validation.
func (s *ResponseService) Update(ctx context.Context, id string, input survey.UpdateResponseDTO) (bool, error) {
	fields := bson.M{}

	if input.Responses != nil {
		existing, err := s.responses.FindByID(ctx, id)
		if err != nil {
			return false, err
		}
		if existing == nil {
			return false, nil
		}
		template, err := s.templates.FindByID(ctx, existing.TemplateID)
		if err != nil {
			return false, err
		}
		if template != nil {
			if err := survey.ValidateResponses(template.Schema, input.Responses); err != nil {
				return false, err
			}
		}
		fields["responses"] = input.Responses
	}
	if input.Metadata != nil {
		fields["metadata"] = input.Metadata
	}
	if len(fields) == 0 {
		return false, nil
	}
	return s.responses.Update(ctx, id, fields)
}

func (s *ResponseService) Delete(ctx context.Context, id string) (bool, error) {
	return s.responses.Delete(ctx, id)
}
