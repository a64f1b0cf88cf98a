// Package content holds the static text of the landing page.
// The page copy lives in content.yaml, embedded into the binary and parsed once at startup.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// Validation errors.
var (
	ErrEmptySection   = errors.New("content section is empty")
	ErrDuplicateNavID = errors.New("duplicate navigation id")
	ErrInvalidRating  = errors.New("review rating must be between 1 and 5")
	ErrUnknownTarget  = errors.New("call to action points to unknown section")
)

// Page is the full copy of the landing page.
type Page struct {
	Brand      Brand      `yaml:"brand" json:"brand"`
	Nav        []NavItem  `yaml:"nav" json:"nav"`
	Hero       Hero       `yaml:"hero" json:"hero"`
	About      About      `yaml:"about" json:"about"`
	Services   Services   `yaml:"services" json:"services"`
	Calculator Calculator `yaml:"calculator" json:"calculator"`
	FAQ        FAQ        `yaml:"faq" json:"faq"`
	Reviews    Reviews    `yaml:"reviews" json:"reviews"`
	Contacts   Contacts   `yaml:"contacts" json:"contacts"`
	Footer     Footer     `yaml:"footer" json:"footer"`
}

type Brand struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline" json:"tagline"`
	Icon    string `yaml:"icon" json:"icon"`
}

// NavItem is one entry of the header navigation; ID is the anchor of its section.
type NavItem struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

type CTA struct {
	Label  string `yaml:"label" json:"label"`
	Target string `yaml:"target" json:"target"`
}

type Stat struct {
	Icon  string `yaml:"icon" json:"icon"`
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Hero struct {
	Title        string `yaml:"title" json:"title"`
	Subtitle     string `yaml:"subtitle" json:"subtitle"`
	PrimaryCTA   CTA    `yaml:"primary_cta" json:"primary_cta"`
	SecondaryCTA CTA    `yaml:"secondary_cta" json:"secondary_cta"`
	Stats        []Stat `yaml:"stats" json:"stats"`
}

type Highlight struct {
	Icon  string `yaml:"icon" json:"icon"`
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

type About struct {
	Title      string      `yaml:"title" json:"title"`
	Highlights []Highlight `yaml:"highlights" json:"highlights"`
}

type Service struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Price       string `yaml:"price" json:"price"`
}

type Services struct {
	Title string    `yaml:"title" json:"title"`
	Items []Service `yaml:"items" json:"items"`
}

// Calculator holds the labels of the price estimator card.
type Calculator struct {
	Title                 string `yaml:"title" json:"title"`
	PowerLabel            string `yaml:"power_label" json:"power_label"`
	PowerPlaceholder      string `yaml:"power_placeholder" json:"power_placeholder"`
	AgeLabel              string `yaml:"age_label" json:"age_label"`
	AgePlaceholder        string `yaml:"age_placeholder" json:"age_placeholder"`
	ExperienceLabel       string `yaml:"experience_label" json:"experience_label"`
	ExperiencePlaceholder string `yaml:"experience_placeholder" json:"experience_placeholder"`
	RegionLabel           string `yaml:"region_label" json:"region_label"`
	RegionPlaceholder     string `yaml:"region_placeholder" json:"region_placeholder"`
	Submit                string `yaml:"submit" json:"submit"`
	ResultCaption         string `yaml:"result_caption" json:"result_caption"`
	ResultPeriod          string `yaml:"result_period" json:"result_period"`
	ResultCTA             string `yaml:"result_cta" json:"result_cta"`
}

type FAQItem struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

type FAQ struct {
	Title string    `yaml:"title" json:"title"`
	Items []FAQItem `yaml:"items" json:"items"`
}

type Review struct {
	Author string `yaml:"author" json:"author"`
	City   string `yaml:"city" json:"city"`
	Rating int    `yaml:"rating" json:"rating"`
	Text   string `yaml:"text" json:"text"`
}

// Stars returns the rating as a row of filled and empty stars.
func (r Review) Stars() string {
	s := ""
	for i := 1; i <= 5; i++ {
		if i <= r.Rating {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}

type Reviews struct {
	Title string   `yaml:"title" json:"title"`
	Items []Review `yaml:"items" json:"items"`
}

type Channel struct {
	Icon  string `yaml:"icon" json:"icon"`
	Title string `yaml:"title" json:"title"`
	Value string `yaml:"value" json:"value"`
	Note  string `yaml:"note" json:"note"`
}

// ContactForm holds the labels of the contact form.
type ContactForm struct {
	Title        string `yaml:"title" json:"title"`
	NameLabel    string `yaml:"name_label" json:"name_label"`
	PhoneLabel   string `yaml:"phone_label" json:"phone_label"`
	EmailLabel   string `yaml:"email_label" json:"email_label"`
	MessageLabel string `yaml:"message_label" json:"message_label"`
	Submit       string `yaml:"submit" json:"submit"`
	Success      string `yaml:"success" json:"success"`
}

type Contacts struct {
	Title    string      `yaml:"title" json:"title"`
	Channels []Channel   `yaml:"channels" json:"channels"`
	Form     ContactForm `yaml:"form" json:"form"`
}

type FooterColumn struct {
	Title string   `yaml:"title" json:"title"`
	Links []string `yaml:"links" json:"links"`
}

type Footer struct {
	Columns   []FooterColumn `yaml:"columns" json:"columns"`
	Copyright string         `yaml:"copyright" json:"copyright"`
}

// Load parses the embedded page copy.
func Load() (*Page, error) {
	return Parse(defaultYAML)
}

// Parse decodes and validates page copy from YAML.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every section has content and references are consistent.
func (p *Page) Validate() error {
	if p.Brand.Name == "" {
		return fmt.Errorf("brand: %w", ErrEmptySection)
	}
	if len(p.Nav) == 0 {
		return fmt.Errorf("nav: %w", ErrEmptySection)
	}

	seen := make(map[string]bool, len(p.Nav))
	for _, item := range p.Nav {
		if seen[item.ID] {
			return fmt.Errorf("%q: %w", item.ID, ErrDuplicateNavID)
		}
		seen[item.ID] = true
	}

	for _, cta := range []CTA{p.Hero.PrimaryCTA, p.Hero.SecondaryCTA} {
		if cta.Target != "" && !seen[cta.Target] {
			return fmt.Errorf("%q: %w", cta.Target, ErrUnknownTarget)
		}
	}

	sections := map[string]int{
		"hero.stats":        len(p.Hero.Stats),
		"about.highlights":  len(p.About.Highlights),
		"services.items":    len(p.Services.Items),
		"faq.items":         len(p.FAQ.Items),
		"reviews.items":     len(p.Reviews.Items),
		"contacts.channels": len(p.Contacts.Channels),
	}
	for name, n := range sections {
		if n == 0 {
			return fmt.Errorf("%s: %w", name, ErrEmptySection)
		}
	}

	for _, r := range p.Reviews.Items {
		if r.Rating < 1 || r.Rating > 5 {
			return fmt.Errorf("review by %s: %w", r.Author, ErrInvalidRating)
		}
	}

	return nil
}

// HasSection reports whether id names a navigation section.
func (p *Page) HasSection(id string) bool {
	for _, item := range p.Nav {
		if item.ID == id {
			return true
		}
	}
	return false
}
