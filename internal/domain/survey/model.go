package survey

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldType is the closed set of field kinds a template schema may use.
// The validator dispatches on it exhaustively; a value outside this set is a
// template configuration error, never a submission failure.
type FieldType string

const (
	FieldTypeString  FieldType = "STRING"
	FieldTypeText    FieldType = "TEXT"
	FieldTypeNumber  FieldType = "NUMBER"
	FieldTypeDate    FieldType = "DATE"
	FieldTypeBoolean FieldType = "BOOLEAN"
	FieldTypeOption  FieldType = "OPTION"
	FieldTypeEmail   FieldType = "EMAIL"
	FieldTypeFile    FieldType = "FILE"
)

// FieldValidation carries the optional constraints of a field. Length bounds
// apply to STRING/TEXT, value bounds to NUMBER. Pattern is stored but not
// enforced yet.
type FieldValidation struct {
	MinLength *int     `bson:"min_length,omitempty" json:"min_length,omitempty"`
	MaxLength *int     `bson:"max_length,omitempty" json:"max_length,omitempty"`
	MinValue  *float64 `bson:"min_value,omitempty" json:"min_value,omitempty"`
	MaxValue  *float64 `bson:"max_value,omitempty" json:"max_value,omitempty"`
	Pattern   *string  `bson:"pattern,omitempty" json:"pattern,omitempty"`
}

type FieldSchema struct {
	FieldID     string           `bson:"field_id" json:"field_id" binding:"required"`
	Title       string           `bson:"title" json:"title" binding:"required,min=1,max=200"`
	Type        FieldType        `bson:"type" json:"type" binding:"required"`
	Required    *bool            `bson:"required" json:"required,omitempty"`
	Options     []string         `bson:"options,omitempty" json:"options,omitempty"`
	Validation  *FieldValidation `bson:"validation,omitempty" json:"validation,omitempty"`
	Placeholder string           `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	HelpText    string           `bson:"help_text,omitempty" json:"help_text,omitempty"`
}

// IsRequired reports whether the field must be present in a submission.
// Fields default to required when the flag is omitted.
func (f FieldSchema) IsRequired() bool {
	return f.Required == nil || *f.Required
}

// DisplayName is the label used in rejection messages: the title, falling
// back to the field id when no title resolves.
func (f FieldSchema) DisplayName() string {
	if f.Title != "" {
		return f.Title
	}
	return f.FieldID
}

type Template struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Schema      []FieldSchema      `bson:"schema" json:"schema"`
	CreatedBy   string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`

	// ResponseCount is a denormalized cache bumped on each accepted
	// submission. Reads recompute the live value from the responses
	// collection, so staleness here is tolerated.
	ResponseCount int64 `bson:"response_count" json:"response_count"`
}

type Response struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID string             `bson:"template_id" json:"template_id"`

	// TemplateName is copied from the template at submission time and is
	// intentionally not kept in sync with later renames.
	TemplateName string         `bson:"template_name" json:"template_name"`
	Responses    map[string]any `bson:"responses" json:"responses"`
	SubmittedBy  string         `bson:"submitted_by,omitempty" json:"submitted_by,omitempty"`
	SubmittedAt  time.Time      `bson:"submitted_at" json:"submitted_at"`
	Metadata     map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// ResponseDetail is the get-by-id view: the stored response enriched with the
// owning template's current schema.
type ResponseDetail struct {
	Response
	Schema []FieldSchema `json:"schema"`
}
