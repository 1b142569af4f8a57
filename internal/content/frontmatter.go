package content

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter represents the parsed YAML header of a note file.
// Unknown fields cause parse errors (use Meta for extensions).
type Frontmatter struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Section     string         `yaml:"section"`
	Slug        string         `yaml:"slug"`
	Order       int            `yaml:"order"`
	Tags        []string       `yaml:"tags"`
	Draft       bool           `yaml:"draft"`
	Meta        map[string]any `yaml:"meta"` // Extension point for custom fields
}

// FrontmatterResult holds the result of frontmatter extraction.
type FrontmatterResult struct {
	Config  *Frontmatter
	Body    string // markdown content after the frontmatter block
	HasYAML bool
}

// frontmatterPattern matches a leading --- ... --- fence.
var frontmatterPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n?`)

// ExtractFrontmatter extracts the YAML header from note content.
// Content without a fence is returned unchanged with an empty config.
func ExtractFrontmatter(input string) (*FrontmatterResult, error) {
	result := &FrontmatterResult{
		Config: &Frontmatter{},
		Body:   input,
	}

	matches := frontmatterPattern.FindStringSubmatch(input)
	if matches == nil {
		return result, nil
	}

	result.HasYAML = true
	result.Body = strings.TrimPrefix(input[len(matches[0]):], "\n")

	config, err := parseFrontmatterYAML(matches[1])
	if err != nil {
		return nil, err
	}

	result.Config = config
	return result, nil
}

// parseFrontmatterYAML parses YAML content with strict field validation.
func parseFrontmatterYAML(yamlContent string) (*Frontmatter, error) {
	// Decode into a map first to reject unknown fields with a useful error.
	var rawMap map[string]any
	if err := yaml.Unmarshal([]byte(yamlContent), &rawMap); err != nil {
		return nil, &FrontmatterParseError{
			Message: fmt.Sprintf("invalid YAML: %v", err),
		}
	}

	knownFields := map[string]bool{
		"title":       true,
		"description": true,
		"section":     true,
		"slug":        true,
		"order":       true,
		"tags":        true,
		"draft":       true,
		"meta":        true,
	}

	for field := range rawMap {
		if !knownFields[field] {
			return nil, &UnknownFieldError{Field: field}
		}
	}

	var config Frontmatter
	if err := yaml.Unmarshal([]byte(yamlContent), &config); err != nil {
		return nil, &FrontmatterParseError{
			Message: fmt.Sprintf("failed to parse frontmatter: %v", err),
		}
	}

	return &config, nil
}

// FrontmatterParseError represents a frontmatter parsing error.
type FrontmatterParseError struct {
	File    string
	Message string
}

func (e *FrontmatterParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// UnknownFieldError is returned for fields outside the known set.
type UnknownFieldError struct {
	File  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q in frontmatter, use \"meta\" for custom fields", e.Field)
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}
