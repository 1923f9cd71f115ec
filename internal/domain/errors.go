package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle         = errors.New("issue title cannot be empty")
	ErrMilestoneNotFound  = errors.New("milestone could not be resolved")
	ErrIssueNotCreated    = errors.New("issue creation returned no result")
	ErrBackendUnavailable = errors.New("gh CLI not found or not authenticated (run 'gh auth login')")
	ErrRepoNotDetected    = errors.New("repository not specified and could not be detected from the git remote")
)
