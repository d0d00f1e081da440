package project

import (
	"errors"
	"time"
)

// ErrNotFound is returned by the store when a project id does not exist.
var ErrNotFound = errors.New("project not found")

// Status is the editorial state of a project.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Project holds the scalar attributes of a real-estate launch.
type Project struct {
	ID                  string    `json:"id" yaml:"id,omitempty"`
	CreatedAt           time.Time `json:"created_at" yaml:"created_at,omitempty"`
	Name                string    `json:"name" yaml:"name"`
	Slug                string    `json:"slug" yaml:"slug"`
	BuilderName         string    `json:"builder_name" yaml:"builder_name"`
	CityState           string    `json:"city_state" yaml:"city_state"`
	AddressFull         string    `json:"address_full" yaml:"address_full"`
	WhatsAppLink        string    `json:"whatsapp_link" yaml:"whatsapp_link"`
	EmailContact        string    `json:"email_contact" yaml:"email_contact"`
	BrandColor          string    `json:"brand_color" yaml:"brand_color"`
	HeroHeadline        string    `json:"hero_headline" yaml:"hero_headline"`
	HeroSubheadline     string    `json:"hero_subheadline" yaml:"hero_subheadline"`
	HeroImageURL        string    `json:"hero_image_url" yaml:"hero_image_url"`
	LogoURL             string    `json:"logo_url" yaml:"logo_url"`
	SEOImageURL         string    `json:"seo_image_url" yaml:"seo_image_url"`
	DeliveryDate        string    `json:"delivery_date" yaml:"delivery_date"`
	LaunchDate          string    `json:"launch_date" yaml:"launch_date"`
	FootageRange        string    `json:"footage_range" yaml:"footage_range"`
	TypologiesText      string    `json:"typologies_text" yaml:"typologies_text"`
	CTALink             string    `json:"cta_link" yaml:"cta_link"`
	LocationDesc        string    `json:"location_desc" yaml:"location_desc"`
	MapEmbedSrc         string    `json:"map_embed_src" yaml:"map_embed_src"`
	PointsOfInterest    string    `json:"points_of_interest" yaml:"points_of_interest"`
	TechSpecs           string    `json:"tech_specs" yaml:"tech_specs"`
	SEOTitle            string    `json:"seo_title" yaml:"seo_title"`
	SEODesc             string    `json:"seo_desc" yaml:"seo_desc"`
	Status              Status    `json:"status" yaml:"status"`
	FaviconFilename     string    `json:"favicon_filename" yaml:"favicon_filename"`
	WebclipFilename     string    `json:"webclip_filename" yaml:"webclip_filename"`
	DashboardCoverImage string    `json:"dashboard_cover_image" yaml:"dashboard_cover_image"`
}

// GalleryItem is one gallery image with its display position.
type GalleryItem struct {
	ID           string `json:"id" yaml:"id,omitempty"`
	ProjectID    string `json:"project_id" yaml:"-"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	DisplayOrder int    `json:"display_order" yaml:"display_order"`
}

// Plant is a unit type (floor plan) offered in a given style and package.
type Plant struct {
	ID               string `json:"id" yaml:"id,omitempty"`
	ProjectID        string `json:"project_id" yaml:"-"`
	Title            string `json:"title" yaml:"title"`
	Style            string `json:"style" yaml:"style"`     // ECO, SLIM, URBAN
	Package          string `json:"package" yaml:"package"` // STANDARD, BASIC, ESSENTIAL, DESIGN
	Footage          string `json:"footage" yaml:"footage"`
	ImageURL         string `json:"image_url" yaml:"image_url"`
	AvailabilityText string `json:"availability_text" yaml:"availability_text"`
}

// StyleLabel returns the plant's style; plants have no secondary label.
func (p Plant) StyleLabel() (string, string) { return p.Style, "" }

// Tour is a 360° virtual tour embedded through an iframe.
type Tour struct {
	ID            string `json:"id" yaml:"id,omitempty"`
	ProjectID     string `json:"project_id" yaml:"-"`
	Label         string `json:"label" yaml:"label"`
	IframeURL     string `json:"iframe_url" yaml:"iframe_url"`
	StyleCategory string `json:"style_category" yaml:"style_category"`
}

// StyleLabel returns the tour's style category as the secondary label.
func (t Tour) StyleLabel() (string, string) { return "", t.StyleCategory }

// Price is a pricing tier card.
type Price struct {
	ID         string `json:"id" yaml:"id,omitempty"`
	ProjectID  string `json:"project_id" yaml:"-"`
	Title      string `json:"title" yaml:"title"`
	PriceValue string `json:"price_value" yaml:"price_value"`
	BadgeText  string `json:"badge_text" yaml:"badge_text"`
	Features   string `json:"features" yaml:"features"` // newline-delimited
	CTALink    string `json:"cta_link" yaml:"cta_link"`
}

// Faq is a question/answer pair.
type Faq struct {
	ID        string `json:"id" yaml:"id,omitempty"`
	ProjectID string `json:"project_id" yaml:"-"`
	Question  string `json:"question" yaml:"question"`
	Answer    string `json:"answer" yaml:"answer"`
}

// Full is a project together with its related collections, already scoped
// to the project.
type Full struct {
	Project `yaml:",inline"`
	Gallery []GalleryItem `json:"gallery" yaml:"gallery"`
	Plants  []Plant       `json:"plants" yaml:"plants"`
	Tours   []Tour        `json:"tours" yaml:"tours"`
	Prices  []Price       `json:"prices" yaml:"prices"`
	Faqs    []Faq         `json:"faqs" yaml:"faqs"`
}
