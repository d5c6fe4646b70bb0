package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/domain/survey"
	"github.com/eventware/survey-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	service *application.TemplateService
}

func NewTemplateHandler(service *application.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var input survey.CreateTemplateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error creating template: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.TemplateIDResponse{
		Message:    "Template was created successfully",
		TemplateID: id,
	})
}

func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	skip, limit := parsePagination(c)

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid is_active filter"})
			return
		}
		isActive = &parsed
	}

	templates, err := h.service.List(c.Request.Context(), skip, limit, isActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	total, err := h.service.Count(c.Request.Context(), isActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"skip":      skip,
		"limit":     limit,
		"templates": templates,
	})
}

func (h *TemplateHandler) GetTemplateByID(c *gin.Context) {
	id := c.Param("id")

	template, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if template == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Template with ID %s not found", id)})
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id := c.Param("id")

	var input survey.UpdateTemplateDTO
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
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Template with ID %s not found or no changes made", id)})
		return
	}

	c.JSON(http.StatusOK, response.TemplateIDResponse{
		Message:    "Template was updated successfully",
		TemplateID: id,
	})
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Template with ID %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, response.TemplateIDResponse{
		Message:    "Template was deleted successfully",
		TemplateID: id,
	})
}
