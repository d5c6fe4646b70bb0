package websurvey

type CreateSurveyDTO struct {
	GeneralInfo  GeneralInfo  `json:"general_info" binding:"required"`
	Branding     Branding     `json:"branding" binding:"required"`
	WebStructure WebStructure `json:"web_structure" binding:"required"`
	WebContent   WebContent   `json:"web_content" binding:"required"`
	Ticketing    Ticketing    `json:"ticketing" binding:"required"`
	About        AboutSection `json:"about" binding:"required"`
	Gallery      Gallery      `json:"gallery" binding:"required"`
	FAQ          FAQ          `json:"faq" binding:"required"`
	Domain       Domain       `json:"domain" binding:"required"`
}
