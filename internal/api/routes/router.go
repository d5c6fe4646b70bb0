package routes

import (
	"github.com/eventware/survey-go/internal/api/handlers"
	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/db"
	"github.com/eventware/survey-go/internal/repository"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires repositories, services and handlers from the given
// store connection and mounts the route table.
func RegisterRoutes(r *gin.Engine, store *db.Mongo) {
	repos := repository.NewRepositories(store.Database)
	services := application.New(repos)
	h := handlers.New(services, store)
	Register(r, h)
}

// Register mounts the route table for an already-built handler set. Split
// out so tests can mount handlers over fakes.
func Register(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Check)

	templates := r.Group("/custom-survey-template")
	{
		templates.POST("/", h.Template.CreateTemplate)
		templates.GET("/", h.Template.GetTemplates)
		templates.GET("/:id", h.Template.GetTemplateByID)
		templates.PUT("/:id", h.Template.UpdateTemplate)
		templates.DELETE("/:id", h.Template.DeleteTemplate)
	}

	responses := r.Group("/custom-survey-responses")
	{
		responses.POST("/", h.Response.SubmitResponse)
		responses.GET("/", h.Response.GetResponses)
		responses.GET("/:id", h.Response.GetResponseByID)
		responses.PUT("/:id", h.Response.UpdateResponse)
		responses.DELETE("/:id", h.Response.DeleteResponse)
	}

	webSurveys := r.Group("/website-survey")
	{
		webSurveys.POST("/", h.Web.SubmitSurvey)
		webSurveys.GET("/", h.Web.GetSurveys)
		webSurveys.GET("/:id", h.Web.GetSurveyByID)
	}

	tagSurveys := r.Group("/tag-survey")
	{
		tagSurveys.POST("/", h.Tag.CreateSurvey)
		tagSurveys.GET("/", h.Tag.GetSurveys)
		tagSurveys.GET("/status/:status", h.Tag.GetSurveysByStatus)
		tagSurveys.GET("/organizer/:organizer_email", h.Tag.GetSurveysByOrganizer)
		tagSurveys.GET("/:id", h.Tag.GetSurveyByID)
		tagSurveys.PUT("/:id", h.Tag.UpdateSurvey)
		tagSurveys.DELETE("/:id", h.Tag.DeleteSurvey)
	}
}
