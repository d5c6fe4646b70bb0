package handlers

import (
	"context"

	"github.com/eventware/survey-go/internal/application"
)

// Pinger is what the health endpoint needs from the store connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Template *TemplateHandler
	Response *ResponseHandler
	Web      *WebSurveyHandler
	Tag      *TagSurveyHandler
	Health   *HealthHandler
}

func New(svc *application.Services, store Pinger) *Handlers {
	return &Handlers{
		Template: NewTemplateHandler(svc.Template),
		Response: NewResponseHandler(svc.Response),
		Web:      NewWebSurveyHandler(svc.Web),
		Tag:      NewTagSurveyHandler(svc.Tag),
		Health:   NewHealthHandler(store),
	}
}
