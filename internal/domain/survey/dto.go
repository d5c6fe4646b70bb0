package survey

type CreateTemplateDTO struct {
	Name        string        `json:"name" binding:"required,min=1,max=200"`
	Description string        `json:"description" binding:"omitempty,max=1000"`
	Schema      []FieldSchema `json:"schema" binding:"required,min=1,dive"`
	CreatedBy   string        `json:"created_by"`
	IsActive    *bool         `json:"is_active"`
}

type UpdateTemplateDTO struct {
	Name        *string        `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string        `json:"description" binding:"omitempty,max=1000"`
	Schema      *[]FieldSchema `json:"schema" binding:"omitempty,min=1,dive"`
	IsActive    *bool          `json:"is_active"`
}

type SubmitResponseDTO struct {
	TemplateID  string         `json:"template_id" binding:"required"`
	Responses   map[string]any `json:"responses" binding:"required"`
	SubmittedBy string         `json:"submitted_by"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateResponseDTO struct {
	Responses map[string]any `json:"responses"`
	Metadata  map[string]any `json:"metadata"`
}
