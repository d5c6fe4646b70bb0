package application

import (
	"context"
	"time"

	"github.com/eventware/survey-go/internal/domain/websurvey"
	"github.com/eventware/survey-go/internal/repository"
)

type WebSurveyService struct {
	repo repository.WebSurveyRepo
}

func NewWebSurveyService(repo repository.WebSurveyRepo) *WebSurveyService {
	return &WebSurveyService{repo: repo}
}

func (s *WebSurveyService) Submit(ctx context.Context, input websurvey.CreateSurveyDTO) (string, error) {
	now := time.Now().UTC()
	survey := &websurvey.Survey{
		GeneralInfo:  input.GeneralInfo,
		Branding:     input.Branding,
		WebStructure: input.WebStructure,
		WebContent:   input.WebContent,
		Ticketing:    input.Ticketing,
		About:        input.About,
		Gallery:      input.Gallery,
		FAQ:          input.FAQ,
		Domain:       input.Domain,
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Insert(ctx, survey)
}

func (s *WebSurveyService) GetByID(ctx context.Context, id string) (*websurvey.Survey, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WebSurveyService) List(ctx context.Context, skip, limit int64) ([]websurvey.Survey, error) {
	return s.repo.Find(ctx, skip, limit)
}

func (s *WebSurveyService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
