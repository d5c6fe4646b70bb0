package websurvey

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GeneralInfo struct {
	OrganizationName        string            `bson:"organization_name" json:"organization_name" binding:"required,min=1,max=200"`
	EventName               string            `bson:"event_name" json:"event_name" binding:"required,min=1,max=200"`
	EventDate               string            `bson:"event_date,omitempty" json:"event_date,omitempty"`
	EventLocation           string            `bson:"event_location,omitempty" json:"event_location,omitempty" binding:"omitempty,max=250"`
	OrganizationEmail       string            `bson:"organization_email" json:"organization_email" binding:"required,email"`
	OrganizationPhone       string            `bson:"organization_phone,omitempty" json:"organization_phone,omitempty"`
	OrganizationSocialMedia map[string]string `bson:"organization_social_media,omitempty" json:"organization_social_media,omitempty"`
	EventType               string            `bson:"event_type,omitempty" json:"event_type,omitempty" binding:"omitempty,max=100"`
	EventAttendees          *int              `bson:"event_attendees,omitempty" json:"event_attendees,omitempty" binding:"omitempty,gte=0"`
}

type Branding struct {
	BrandColors        string `bson:"brand_colors,omitempty" json:"brand_colors,omitempty"`
	OrganizationLogo   string `bson:"organization_logo,omitempty" json:"organization_logo,omitempty"`
	Fonts              string `bson:"fonts,omitempty" json:"fonts,omitempty" binding:"omitempty,max=100"`
	TargetAudience     string `bson:"target_audience,omitempty" json:"target_audience,omitempty"`
	BrandDescription   string `bson:"brand_description,omitempty" json:"brand_description,omitempty"`
	ThemeMode          string `bson:"theme_mode" json:"theme_mode" binding:"required"`
	BrandGuidelinesURL string `bson:"brand_guidelines_url,omitempty" json:"brand_guidelines_url,omitempty"`
}

type WebStructure struct {
	RequiredPages     string `bson:"required_pages" json:"required_pages" binding:"required"`
	HasNavigation     bool   `bson:"has_navigation" json:"has_navigation"`
	HasFooter         bool   `bson:"has_footer" json:"has_footer"`
	PrimaryCTA        string `bson:"primary_cta" json:"primary_cta" binding:"required"`
	ReferenceWebsites string `bson:"reference_websites,omitempty" json:"reference_websites,omitempty"`
}

type WebContent struct {
	MottoTagline        string           `bson:"motto_tagline" json:"motto_tagline" binding:"required"`
	HomepageDescription string           `bson:"homepage_description" json:"homepage_description" binding:"required"`
	CurrentEvent        []string         `bson:"current_event,omitempty" json:"current_event,omitempty"`
	PastEvents          []string         `bson:"past_events,omitempty" json:"past_events,omitempty"`
	ShowPortfolio       bool             `bson:"show_portfolio" json:"show_portfolio"`
	ShowTestimonials    bool             `bson:"show_testimonials" json:"show_testimonials"`
	Testimonials        []string         `bson:"testimonials,omitempty" json:"testimonials,omitempty"`
	EventPhotos         []string         `bson:"event_photos,omitempty" json:"event_photos,omitempty"`
	EventVideos         []string         `bson:"event_videos,omitempty" json:"event_videos,omitempty"`
	ShowSponsors        bool             `bson:"show_sponsors" json:"show_sponsors"`
	Sponsors            []map[string]any `bson:"sponsors,omitempty" json:"sponsors,omitempty"`
}

type Ticketing struct {
	SalesMethod      string    `bson:"sales_method" json:"sales_method" binding:"required"`
	HasTicketing     bool      `bson:"has_ticketing" json:"has_ticketing"`
	TicketType       []string  `bson:"ticket_type,omitempty" json:"ticket_type,omitempty"`
	TicketPriceRange []float64 `bson:"ticket_price_range,omitempty" json:"ticket_price_range,omitempty"`
	TicketPlatform   []string  `bson:"ticket_platform,omitempty" json:"ticket_platform,omitempty"`
	TicketURL        string    `bson:"ticket_url,omitempty" json:"ticket_url,omitempty"`
}

type AboutSection struct {
	OrganizationStory string           `bson:"organization_story" json:"organization_story" binding:"required"`
	Motto             string           `bson:"motto,omitempty" json:"motto,omitempty"`
	MissionStatement  string           `bson:"mission_statement,omitempty" json:"mission_statement,omitempty"`
	VisionStatement   string           `bson:"vision_statement,omitempty" json:"vision_statement,omitempty"`
	KeyMessage        string           `bson:"key_message,omitempty" json:"key_message,omitempty"`
	Accomplishment    []map[string]any `bson:"accomplishment,omitempty" json:"accomplishment,omitempty"`
	ShowFounder       bool             `bson:"show_founder" json:"show_founder"`
	FounderInfo       map[string]any   `bson:"founder_info,omitempty" json:"founder_info,omitempty"`
	ShowTeam          bool             `bson:"show_team" json:"show_team"`
	TeamMembers       []map[string]any `bson:"team_members,omitempty" json:"team_members,omitempty"`
	Sponsors          []map[string]any `bson:"sponsors,omitempty" json:"sponsors,omitempty"`
	Partners          []map[string]any `bson:"partners,omitempty" json:"partners,omitempty"`
}

type Gallery struct {
	IsSectioned bool             `bson:"is_sectioned" json:"is_sectioned"`
	Sectioned   []map[string]any `bson:"sectioned,omitempty" json:"sectioned,omitempty"`
	Photos      []map[string]any `bson:"photos,omitempty" json:"photos,omitempty"`
	ImageURLs   []map[string]any `bson:"image_urls,omitempty" json:"image_urls,omitempty"`
	VideoURLs   []map[string]any `bson:"video_urls,omitempty" json:"video_urls,omitempty"`
}

type FAQ struct {
	Questions []map[string]any `bson:"questions" json:"questions" binding:"required"`
}

type Domain struct {
	HasDomain  bool   `bson:"has_domain" json:"has_domain"`
	DomainName string `bson:"domain_name,omitempty" json:"domain_name,omitempty" binding:"omitempty,max=250"`
	NeedsHelp  bool   `bson:"needs_help" json:"needs_help"`
}

// Survey is one website-building submission. The sections are stored as
// provided; there is no field-level validation beyond request binding.
type Survey struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GeneralInfo  GeneralInfo        `bson:"general_info" json:"general_info"`
	Branding     Branding           `bson:"branding" json:"branding"`
	WebStructure WebStructure       `bson:"web_structure" json:"web_structure"`
	WebContent   WebContent         `bson:"web_content" json:"web_content"`
	Ticketing    Ticketing          `bson:"ticketing" json:"ticketing"`
	About        AboutSection       `bson:"about" json:"about"`
	Gallery      Gallery            `bson:"gallery" json:"gallery"`
	FAQ          FAQ                `bson:"faq" json:"faq"`
	Domain       Domain             `bson:"domain" json:"domain"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
