package application

import (
	"errors"

	"github.com/eventware/survey-go/internal/repository"
)

// ErrTemplateNotFound is returned when a submission or update references a
// template id with no backing document.
var ErrTemplateNotFound = errors.New("template not found")

type Services struct {
	Template *TemplateService
	Response *ResponseService
	Web      *WebSurveyService
	Tag      *TagSurveyService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Template: NewTemplateService(repos),
		Response: NewResponseService(repos),
		Web:      NewWebSurveyService(repos.Web),
		Tag:      NewTagSurveyService(repos.Tag),
	}
}
