package portfolio

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yml
var defaultContent []byte

var ErrProjectNotFound = errors.New("project not found")

type Owner struct {
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Tagline string `yaml:"tagline" json:"tagline"`
}

type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

type SkillCategory struct {
	Title  string  `yaml:"title" json:"title"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

type Project struct {
	ID           int      `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Image        string   `yaml:"image" json:"image"`
	GitHub       string   `yaml:"github" json:"github"`
	Live         string   `yaml:"live" json:"live"`
	Featured     bool     `yaml:"featured" json:"featured"`
	Demo         string   `yaml:"demo" json:"demo,omitempty"`
}

type Experience struct {
	Type         string   `yaml:"type" json:"type"`
	Title        string   `yaml:"title" json:"title"`
	Organization string   `yaml:"organization" json:"organization"`
	Location     string   `yaml:"location" json:"location"`
	Period       string   `yaml:"period" json:"period"`
	Description  string   `yaml:"description" json:"description"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

type SocialLink struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Contact struct {
	Email    string       `yaml:"email" json:"email"`
	Phone    string       `yaml:"phone" json:"phone"`
	Location string       `yaml:"location" json:"location"`
	Social   []SocialLink `yaml:"social" json:"social"`
}

// Content is everything the portfolio page shows besides the game widget.
type Content struct {
	Owner      Owner           `yaml:"owner" json:"owner"`
	About      string          `yaml:"about" json:"about"`
	Skills     []SkillCategory `yaml:"skills" json:"skills"`
	Projects   []Project       `yaml:"projects" json:"projects"`
	Experience []Experience    `yaml:"experience" json:"experience"`
	Contact    Contact         `yaml:"contact" json:"contact"`
}

// Default - the content shipped with the binary.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

func Parse(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio content: %w", err)
	}

	if content.Owner.Name == "" {
		return nil, errors.New("portfolio content has no owner name")
	}

	return &content, nil
}

func (that *Content) FeaturedProjects() []Project {
	featured := make([]Project, 0, len(that.Projects))
	for _, project := range that.Projects {
		if project.Featured {
			featured = append(featured, project)
		}
	}

	return featured
}

func (that *Content) ProjectByID(id int) (Project, error) {
	for _, project := range that.Projects {
		if project.ID == id {
			return project, nil
		}
	}

	return Project{}, fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
}
