package handlers

import (
	"fmt"
	"net/http"

	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/domain/tagsurvey"
	"github.com/eventware/survey-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type TagSurveyHandler struct {
	service *application.TagSurveyService
}

func NewTagSurveyHandler(service *application.TagSurveyService) *TagSurveyHandler {
	return &TagSurveyHandler{service: service}
}

func (h *TagSurveyHandler) CreateSurvey(c *gin.Context) {
	var input tagsurvey.CreateSurveyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error creating survey: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.SurveyIDResponse{
		Message:  "Tag Survey created successfully",
		SurveyID: id,
	})
}

func (h *TagSurveyHandler) GetSurveys(c *gin.Context) {
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

func (h *TagSurveyHandler) GetSurveysByStatus(c *gin.Context) {
	skip, limit := parsePagination(c)
	status := c.Param("status")

	surveys, err := h.service.ListByStatus(c.Request.Context(), status, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"total":   len(surveys),
		"skip":    skip,
		"limit":   limit,
		"surveys": surveys,
	})
}

func (h *TagSurveyHandler) GetSurveysByOrganizer(c *gin.Context) {
	skip, limit := parsePagination(c)
	email := c.Param("organizer_email")

	surveys, err := h.service.ListByOrganizer(c.Request.Context(), email, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organizer_email": email,
		"total":           len(surveys),
		"skip":            skip,
		"limit":           limit,
		"surveys":         surveys,
	})
}

func (h *TagSurveyHandler) GetSurveyByID(c *gin.Context) {
	id := c.Param("id")

	survey, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if survey == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Tag survey with ID %s not found", id)})
		return
	}
	c.JSON(http.StatusOK, survey)
}

func (h *TagSurveyHandler) UpdateSurvey(c *gin.Context) {
	id := c.Param("id")

	var input tagsurvey.UpdateSurveyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ok, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Tag survey not found or no changes were made"})
		return
	}

	c.JSON(http.StatusOK, response.SurveyIDResponse{
		Message:  "Tag survey updated successfully",
		SurveyID: id,
	})
}

func (h *TagSurveyHandler) DeleteSurvey(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Tag survey with ID %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, response.SurveyIDResponse{
		Message:  "Tag survey deleted successfully",
		SurveyID: id,
	})
}
