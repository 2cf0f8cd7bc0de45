package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for attachment uploads.
	UploadHTTPTimeout = 120 * time.Second
)

// Retry limits. Retries are disabled unless the caller opts in.
const (
	// DefaultRetryMax disables transport retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opted-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP headers specific to the Redmine API.
const (
	// APIKeyHeader carries the API key on every request.
	APIKeyHeader = "x-redmine-api-key"

	// SwitchUserHeader carries the impersonated login or user id.
	SwitchUserHeader = "X-Redmine-Switch-User"
)

// Content types.
const (
	// ContentTypeJSON is the content type for JSON request bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeOctetStream is the content type for raw upload bodies.
	ContentTypeOctetStream = "application/octet-stream"
)

// Pagination and display limits.
const (
	// MaxPageSize is the largest page size the Redmine API honors.
	MaxPageSize = 100

	// DefaultCLIPageSize is the page size used by CLI list commands.
	DefaultCLIPageSize = 25
)

// Output format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// DescriptionDisplayLength is the default length for displaying
	// subjects and descriptions in tables.
	DescriptionDisplayLength = 60
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)
