package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// renderStructured writes data as JSON or YAML to stdout. It returns
// false when the selected output format is the table default, leaving
// rendering to the caller.
func renderStructured(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		if err := encoder.Encode(data); err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(data); err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	case constants.FormatTable:
		return false, nil
	default:
		return true, constants.ErrInvalidOutput
	}
}

// truncate shortens s for table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}

// idNameOrNA renders an optional reference for table cells.
func idNameOrNA(ref *redmine.IDName) string {
	if ref == nil {
		return constants.NotAvailable
	}

	return ref.Name
}

// timestampOrNA renders an optional timestamp for table cells.
func timestampOrNA(ts *redmine.Timestamp) string {
	if ts == nil {
		return constants.NotAvailable
	}

	return ts.Time.Format("2006-01-02 15:04")
}

// dateOrNA renders an optional date for table cells.
func dateOrNA(d *redmine.Date) string {
	if d == nil {
		return constants.NotAvailable
	}

	return d.Format("2006-01-02")
}
