// Package content holds the static copy shown around the portfolio: hero,
// stats, services, process, team, testimonials and contact details.
package content

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"luxe-studio/data"
)

type Site struct {
	Brand        Brand         `yaml:"brand"`
	Hero         Hero          `yaml:"hero"`
	Stats        []Stat        `yaml:"stats"`
	Services     []Service     `yaml:"services"`
	Process      []Step        `yaml:"process"`
	Team         []Member      `yaml:"team"`
	Testimonials []Testimonial `yaml:"testimonials"`
	About        About         `yaml:"about"`
	Contact      Contact       `yaml:"contact"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Blurb   string `yaml:"blurb"`
	Year    int    `yaml:"year"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type Stat struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
}

var statPrinter = message.NewPrinter(language.English)

// Display renders the value with English thousands separators and suffix.
func (s Stat) Display() string {
	return statPrinter.Sprintf("%d", s.Value) + s.Suffix
}

type Service struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// Step is one stage of the studio's process timeline.
type Step struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
}

type Member struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Image string `yaml:"image"`
	Bio   string `yaml:"bio"`
}

type Testimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
	Image   string `yaml:"image"`
}

// Stars returns Rating clamped to 0..5, for ranging in templates.
func (t Testimonial) Stars() []struct{} {
	n := min(max(t.Rating, 0), 5)
	return make([]struct{}, n)
}

type About struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Contact struct {
	Address []string `yaml:"address"`
	Phone   string   `yaml:"phone"`
	Email   string   `yaml:"email"`
	Hours   string   `yaml:"hours"`
}

func Decode(r io.Reader) (*Site, error) {
	var s Site
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if s.Brand.Name == "" {
		return nil, fmt.Errorf("decode site content: brand name is empty")
	}
	return &s, nil
}

// Load reads site content from path, or the built-in content when path is
// empty.
func Load(path string) (*Site, error) {
	var (
		r   io.ReadCloser
		err error
	)
	if path == "" {
		r, err = data.FS.Open(data.SiteFile)
	} else {
		r, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open site content: %w", err)
	}
	defer r.Close()

	return Decode(r)
}
