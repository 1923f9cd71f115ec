// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IssueSpec describes a single issue to be created.
// Specs are read-only once parsed; the workflow never mutates them.
type IssueSpec struct {
	Title     string   `yaml:"title"`
	Body      string   `yaml:"body"`
	Milestone string   `yaml:"milestone"`
	Labels    []string `yaml:"labels"`
}

// Validate checks that the spec can be submitted at all.
func (s IssueSpec) Validate() error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Manifest is the top-level document of an issues file.
//
// Format:
//
//	issues:
//	  - title: Implement hand ranking
//	    body: |
//	      Details here.
//	    labels: [enhancement, core]
//	    milestone: v1.0
type Manifest struct {
	Issues []IssueSpec `yaml:"issues"`
}

// ParseManifest parses YAML manifest content.
// A document without an issues key parses to an empty manifest;
// that is zero work, not an error.
func ParseManifest(content []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Empty reports whether the manifest contains no issues.
func (m *Manifest) Empty() bool {
	return len(m.Issues) == 0
}
