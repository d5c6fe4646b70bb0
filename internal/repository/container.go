package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names, one per logical resource.
const (
	TemplatesCollection     = "custom_survey_templates"
	ResponsesCollection     = "custom_survey_responses"
	WebsiteSurveyCollection = "website_building_survey"
	TagSurveyCollection     = "event_tags_surveys"
)

type Repos struct {
	Template TemplateRepo
	Response ResponseRepo
	Web      WebSurveyRepo
	Tag      TagSurveyRepo
}

func NewRepositories(database *mongo.Database) *Repos {
	return &Repos{
		Template: NewTemplateRepo(database),
		Response: NewResponseRepo(database),
		Web:      NewWebSurveyRepo(database),
		Tag:      NewTagSurveyRepo(database),
	}
}
