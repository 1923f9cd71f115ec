package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/zabooya/gh-seed/internal/domain"
)

// ValidateManifestInput contains the raw manifest content to check.
type ValidateManifestInput struct {
	Content []byte
}

// ManifestProblem describes a lint finding for one issue entry.
type ManifestProblem struct {
	Reason string
	Index  int // 1-based position in the manifest
}

// ValidateManifestOutput contains the parsed manifest and any findings.
type ValidateManifestOutput struct {
	Manifest *domain.Manifest
	Problems []ManifestProblem
}

// ValidateManifest parses and lints a manifest without touching the backend.
type ValidateManifest struct{}

// NewValidateManifest creates a new ValidateManifest use case.
func NewValidateManifest() *ValidateManifest {
	return &ValidateManifest{}
}

// Execute parses the content and reports entries that would fail or
// behave surprisingly during a create run.
func (uc *ValidateManifest) Execute(_ context.Context, in ValidateManifestInput) (*ValidateManifestOutput, error) {
	manifest, err := domain.ParseManifest(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ValidateManifestOutput{Manifest: manifest}

	seen := make(map[string]int)
	for i, spec := range manifest.Issues {
		index := i + 1

		if err := spec.Validate(); err != nil {
			reason := err.Error()
			if errors.Is(err, domain.ErrEmptyTitle) {
				reason = "missing title"
			}
			out.Problems = append(out.Problems, ManifestProblem{Index: index, Reason: reason})
			continue
		}

		if first, ok := seen[spec.Title]; ok {
			out.Problems = append(out.Problems, ManifestProblem{
				Index:  index,
				Reason: fmt.Sprintf("duplicate title of issue %d: %q", first, spec.Title),
			})
			continue
		}
		seen[spec.Title] = index
	}

	return out, nil
}
