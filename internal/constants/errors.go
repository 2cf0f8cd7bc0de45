package constants

import "errors"

// Configuration errors.
var (
	ErrNoServerConfigured = errors.New("no Redmine server configured, use 'redmine login' or set REDMINE_URL")
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'redmine login' or set REDMINE_API_KEY")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json, or yaml")
)

// Argument validation errors.
var (
	ErrProjectRequired = errors.New("--project flag is required")
	ErrIssueRequired   = errors.New("an issue id argument is required")
	ErrSubjectRequired = errors.New("--subject flag is required")
	ErrHoursRequired   = errors.New("--hours flag is required")
	ErrInvalidID       = errors.New("argument is not a numeric id")
)

// File system errors.
var (
	ErrNotRegularFile = errors.New("path is not a regular file")
)
