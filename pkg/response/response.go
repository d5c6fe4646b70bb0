package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TemplateIDResponse struct {
	Message    string `json:"message"`
	TemplateID string `json:"template_id"`
}

type ResponseIDResponse struct {
	Message    string `json:"message"`
	ResponseID string `json:"response_id"`
}

type SurveyIDResponse struct {
	Message  string `json:"message"`
	SurveyID string `json:"survey_id"`
}
