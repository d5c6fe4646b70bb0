package application

import (
	"context"
	"time"

	"github.com/eventware/survey-go/internal/domain/tagsurvey"
	"github.com/eventware/survey-go/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

type TagSurveyService struct {
	repo repository.TagSurveyRepo
}

func NewTagSurveyService(repo repository.TagSurveyRepo) *TagSurveyService {
	return &TagSurveyService{repo: repo}
}

func (s *TagSurveyService) Create(ctx context.Context, input tagsurvey.CreateSurveyDTO) (string, error) {
	now := time.Now().UTC()
	survey := &tagsurvey.Survey{
		EventName:            input.EventName,
		EventDate:            input.EventDate,
		EventLocation:        input.EventLocation,
		EventDescription:     input.EventDescription,
		RequestedTags:        input.RequestedTags,
		TagCategory:          input.TagCategory,
		ReasonForTags:        input.ReasonForTags,
		OrganizerName:        input.OrganizerName,
		OrganizerEmail:       input.OrganizerEmail,
		OrganizerPhoneNumber: input.OrganizerPhoneNumber,
		OrganizationName:     input.OrganizationName,
		TargetAudience:       input.TargetAudience,
		ExpectedAttendees:    input.ExpectedAttendees,
		AdditionalNotes:      input.AdditionalNotes,
		Status:               tagsurvey.StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return s.repo.Insert(ctx, survey)
}

func (s *TagSurveyService) GetByID(ctx context.Context, id string) (*tagsurvey.Survey, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TagSurveyService) List(ctx context.Context, skip, limit int64) ([]tagsurvey.Survey, error) {
	return s.repo.Find(ctx, nil, skip, limit)
}

func (s *TagSurveyService) ListByStatus(ctx context.Context, status string, skip, limit int64) ([]tagsurvey.Survey, error) {
	return s.repo.Find(ctx, bson.M{"status": status}, skip, limit)
}

func (s *TagSurveyService) ListByOrganizer(ctx context.Context, email string, skip, limit int64) ([]tagsurvey.Survey, error) {
	return s.repo.Find(ctx, bson.M{"organizer_email": email}, skip, limit)
}

func (s *TagSurveyService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *TagSurveyService) Update(ctx context.Context, id string, input tagsurvey.UpdateSurveyDTO) (bool, error) {
	fields := bson.M{}
	if input.EventName != nil {
		fields["event_name"] = *input.EventName
	}
	if input.EventDate != nil {
		fields["event_date"] = *input.EventDate
	}
	if input.EventLocation != nil {
		fields["event_location"] = *input.EventLocation
	}
	if input.EventDescription != nil {
		fields["event_description"] = *input.EventDescription
	}
	if input.RequestedTags != nil {
		fields["requested_tags"] = *input.RequestedTags
	}
	if input.TagCategory != nil {
		fields["tag_category"] = *input.TagCategory
	}
	if input.ReasonForTags != nil {
		fields["reason_for_tags"] = *input.ReasonForTags
	}
	if input.OrganizerName != nil {
		fields["organizer_name"] = *input.OrganizerName
	}
	if input.OrganizerEmail != nil {
		fields["organizer_email"] = *input.OrganizerEmail
	}
	if input.OrganizerPhoneNumber != nil {
		fields["organizer_phone_number"] = *input.OrganizerPhoneNumber
	}
	if input.OrganizationName != nil {
		fields["organization_name"] = *input.OrganizationName
	}
	if input.TargetAudience != nil {
		fields["target_audience"] = *input.TargetAudience
	}
	if input.ExpectedAttendees != nil {
		fields["expected_attendees"] = *input.ExpectedAttendees
	}
	if input.AdditionalNotes != nil {
		fields["additional_notes"] = *input.AdditionalNotes
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if len(fields) == 0 {
		return false, nil
	}
	fields["updated_at"] = time.Now().UTC()
	return s.repo.Update(ctx, id, fields)
}

func (s *TagSurveyService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
