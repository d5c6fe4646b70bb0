package tagsurvey

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Survey is one event-tag request: an organizer asking for a set of tags to
// be created for an event. Plain pass-through CRUD, no embedded validation.
type Survey struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventName            string             `bson:"event_name" json:"event_name"`
	EventDate            string             `bson:"event_date" json:"event_date"`
	EventLocation        string             `bson:"event_location" json:"event_location"`
	EventDescription     string             `bson:"event_description,omitempty" json:"event_description,omitempty"`
	RequestedTags        []string           `bson:"requested_tags" json:"requested_tags"`
	TagCategory          string             `bson:"tag_category" json:"tag_category"`
	ReasonForTags        string             `bson:"reason_for_tags,omitempty" json:"reason_for_tags,omitempty"`
	OrganizerName        string             `bson:"organizer_name" json:"organizer_name"`
	OrganizerEmail       string             `bson:"organizer_email" json:"organizer_email"`
	OrganizerPhoneNumber string             `bson:"organizer_phone_number,omitempty" json:"organizer_phone_number,omitempty"`
	OrganizationName     string             `bson:"organization_name" json:"organization_name"`
	TargetAudience       string             `bson:"target_audience,omitempty" json:"target_audience,omitempty"`
	ExpectedAttendees    *int               `bson:"expected_attendees,omitempty" json:"expected_attendees,omitempty"`
	AdditionalNotes      string             `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`
	Status               string             `bson:"status" json:"status"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}
