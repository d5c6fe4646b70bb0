package handlers

import (
	"fmt"
	"net/http"

	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/domain/websurvey"
	"github.com/eventware/survey-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type WebSurveyHandler struct {
	service *application.WebSurveyService
}

func NewWebSurveyHandler(service *application.WebSurveyService) *WebSurveyHandler {
	return &WebSurveyHandler{service: service}
}

func (h *WebSurveyHandler) SubmitSurvey(c *gin.Context) {
	var input websurvey.CreateSurveyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error creating survey: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.SurveyIDResponse{
		Message:  "Website Survey Created successfully",
		SurveyID: id,
	})
}

func (h *WebSurveyHandler) GetSurveys(c *gin.Context) {
	skip, limit := parsePagination(c)

	surveys, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	total, err := h.service.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"skip":    skip,
		"limit":   limit,
		"surveys": surveys,
	})
}

func (h *WebSurveyHandler) GetSurveyByID(c *gin.Context) {
	id := c.Param("id")

	survey, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if survey == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Survey with ID %s not found", id)})
		return
	}
	c.JSON(http.StatusOK, survey)
}
