// Package content holds the static portfolio tables: navigation items, hero
// texts, links, services and projects. The default set is embedded; a YAML
// file with the same shape can replace it.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

//go:embed content.yaml
var defaultContent []byte

// Link is an outbound link. URLs are opaque and never validated.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

// NavItem is an in-page anchor.
type NavItem struct {
	Label    string `json:"label"`
	Anchor   string `json:"anchor"`
	Disabled bool   `json:"disabled,omitempty"`
}

type Hero struct {
	Badge     string `json:"badge"`
	Greeting  string `json:"greeting"`
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Image     string `json:"image"`
	Contact   Link   `json:"contact"`
	Portfolio Link   `json:"portfolio"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type About struct {
	Title     string `json:"title"`
	Highlight string `json:"highlight"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image"`
	// Text is a markdown subset: paragraphs, emphasis, strong, links.
	Text      string `json:"text"`
	ShowStats bool   `json:"showStats"`
	Stats     []Stat `json:"stats"`
}

// Intro is a section heading with a highlighted word and a lead paragraph.
type Intro struct {
	Title     string `json:"title"`
	Highlight string `json:"highlight"`
	Text      string `json:"text"`
}

type Service struct {
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
}

// Content is the whole page.
type Content struct {
	Logo          string    `json:"logo"`
	Nav           []NavItem `json:"nav"`
	Hero          Hero      `json:"hero"`
	Socials       []Link    `json:"socials"`
	About         About     `json:"about"`
	ServicesIntro Intro     `json:"servicesIntro"`
	Services      []Service `json:"services"`
	ProjectsIntro Intro     `json:"projectsIntro"`
	Projects      []Project `json:"projects"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return parse(defaultContent)
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid content file %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the page cannot render without.
func (c *Content) Validate() error {
	var errs []error

	if c.Hero.Name == "" {
		errs = append(errs, errors.New("hero.name is required"))
	}

	seen := make(map[string]bool)
	for i, item := range c.Nav {
		if item.Anchor == "" {
			errs = append(errs, fmt.Errorf("nav[%d]: anchor is required", i))
			continue
		}
		if seen[item.Anchor] {
			errs = append(errs, fmt.Errorf("nav[%d]: duplicate anchor %q", i, item.Anchor))
		}
		seen[item.Anchor] = true
	}
	if len(c.Links()) == 0 {
		errs = append(errs, errors.New("nav: at least one enabled item is required"))
	}

	for i, s := range c.Services {
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("services[%d]: title is required", i))
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}

	return errors.Join(errs...)
}

// Links returns the enabled navigation items in order.
func (c *Content) Links() []NavItem {
	var out []NavItem
	for _, item := range c.Nav {
		if !item.Disabled {
			out = append(out, item)
		}
	}
	return out
}

// Outbound lists every outbound link on the page in reading order.
func (c *Content) Outbound() []Link {
	out := []Link{c.Hero.Contact, c.Hero.Portfolio}
	out = append(out, c.Socials...)
	for _, p := range c.Projects {
		if p.Link != "" {
			out = append(out, Link{Label: p.Title, URL: p.Link})
		}
	}
	return out
}
