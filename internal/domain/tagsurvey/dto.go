package tagsurvey

type CreateSurveyDTO struct {
	EventName            string   `json:"event_name" binding:"required,min=1,max=300"`
	EventDate            string   `json:"event_date" binding:"required"`
	EventLocation        string   `json:"event_location" binding:"required,min=1,max=250"`
	EventDescription     string   `json:"event_description"`
	RequestedTags        []string `json:"requested_tags" binding:"required,min=1"`
	TagCategory          string   `json:"tag_category" binding:"required"`
	ReasonForTags        string   `json:"reason_for_tags"`
	OrganizerName        string   `json:"organizer_name" binding:"required,min=1,max=250"`
	OrganizerEmail       string   `json:"organizer_email" binding:"required,email"`
	OrganizerPhoneNumber string   `json:"organizer_phone_number"`
	OrganizationName     string   `json:"organization_name" binding:"required,min=1,max=250"`
	TargetAudience       string   `json:"target_audience"`
	ExpectedAttendees    *int     `json:"expected_attendees"`
	AdditionalNotes      string   `json:"additional_notes"`
}

type UpdateSurveyDTO struct {
	EventName            *string   `json:"event_name" binding:"omitempty,min=1,max=300"`
	EventDate            *string   `json:"event_date"`
	EventLocation        *string   `json:"event_location" binding:"omitempty,min=1,max=250"`
	EventDescription     *string   `json:"event_description"`
	RequestedTags        *[]string `json:"requested_tags" binding:"omitempty,min=1"`
	TagCategory          *string   `json:"tag_category"`
	ReasonForTags        *string   `json:"reason_for_tags"`
	OrganizerName        *string   `json:"organizer_name" binding:"omitempty,min=1,max=250"`
	OrganizerEmail       *string   `json:"organizer_email" binding:"omitempty,email"`
	OrganizerPhoneNumber *string   `json:"organizer_phone_number"`
	OrganizationName     *string   `json:"organization_name" binding:"omitempty,min=1,max=250"`
	TargetAudience       *string   `json:"target_audience"`
	ExpectedAttendees    *int      `json:"expected_attendees"`
	AdditionalNotes      *string   `json:"additional_notes"`
	Status               *string   `json:"status"`
}
