package models

import "time"

// Stored settings document names. Each maps to one row in the settings table.
const (
	SettingsConfig = "config"
	SettingsDesign = "design"
)

// SiteSettings is the site-wide configuration document edited in the admin
// panel and read by every public page.
type SiteSettings struct {
	Contact      ContactInfo  `json:"contact"`
	Social       SocialLinks  `json:"social"`
	Company      CompanyInfo  `json:"company"`
	Buttons      ButtonLabels `json:"buttons"`
	SEO          SEODefaults  `json:"seo"`
	WorkingHours []WorkingDay `json:"workingHours,omitempty"`

	// Language is the primary site language ("he" or "en").
	Language string `json:"language"`

	// UpdatedAt is the timestamp of the last save.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ContactInfo holds the studio's contact details shown in the footer and on
// the contact page.
type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// SocialLinks holds the studio's social profile URLs.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// CompanyInfo holds the studio's presentation texts.
type CompanyInfo struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	About   string `json:"about,omitempty"`
}

// ButtonLabels holds site-wide button captions so that copy changes do not
// require a deployment.
type ButtonLabels struct {
	ContactUs    string `json:"contactUs,omitempty"`
	ViewProjects string `json:"viewProjects,omitempty"`
	SendMessage  string `json:"sendMessage,omitempty"`
	ReadMore     string `json:"readMore,omitempty"`
}

// SEODefaults holds the fallback SEO metadata used by pages without their
// own overrides.
type SEODefaults struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

// WorkingDay is one row of the working-hours table on the contact page.
type WorkingDay struct {
	// Day is the display label of the day (e.g. "ראשון-חמישי").
	Day string `json:"day"`

	Open  string `json:"open,omitempty"`
	Close string `json:"close,omitempty"`

	// Closed marks the day as a non-working day; Open/Close are ignored.
	Closed bool `json:"closed,omitempty"`
}

// DesignSettings is the theme-token document edited in the admin panel.
// The server persists and serves it verbatim; interpreting the tokens is the
// front-end's concern.
type DesignSettings struct {
	Dark  Palette `json:"dark"`
	Light Palette `json:"light"`

	FontFamily string `json:"fontFamily,omitempty"`
	Layout     string `json:"layout,omitempty"`
	Columns    int    `json:"columns,omitempty"`
	Spacing    string `json:"spacing,omitempty"`

	// UpdatedAt is the timestamp of the last save.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Palette is one color scheme of the site theme.
type Palette struct {
	Background string `json:"background,omitempty"`
	Surface    string `json:"surface,omitempty"`
	Text       string `json:"text,omitempty"`
	Accent     string `json:"accent,omitempty"`
}
