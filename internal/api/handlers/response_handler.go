package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/domain/survey"
	"github.com/eventware/survey-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	service *application.ResponseService
}

func NewResponseHandler(service *application.ResponseService) *ResponseHandler {
	return &ResponseHandler{service: service}
}

func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	var input survey.SubmitResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		var rejection *survey.RejectionError
		switch {
		case errors.Is(err, application.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Template with ID %s not found", input.TemplateID)})
		case errors.As(err, &rejection):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: rejection.Reason})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error submitting response: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.ResponseIDResponse{
		Message:    "Response submitted successfully",
		ResponseID: id,
	})
}

func (h *ResponseHandler) GetResponses(c *gin.Context) {
	skip, limit := parsePagination(c)
	templateID := c.Query("template_id")

	responses, err := h.service.List(c.Request.Context(), templateID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	total, err := h.service.Count(c.Request.Context(), templateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"skip":        skip,
		"limit":       limit,
		"template_id": templateID,
		"responses":   responses,
	})
}

func (h *ResponseHandler) GetResponseByID(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Response with ID %s not found", id)})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	id := c.Param("id")

	var input survey.UpdateResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ok, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		var rejection *survey.RejectionError
		if errors.As(err, &rejection) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: rejection.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error updating response: " + err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Response with ID %s not found or no changes made", id)})
		return
	}

	c.JSON(http.StatusOK, response.ResponseIDResponse{
		Message:    "Response updated successfully",
		ResponseID: id,
	})
}

func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("Response with ID %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, response.ResponseIDResponse{
		Message:    "Response deleted successfully",
		ResponseID: id,
	})
}
