package commands

import (
	"strconv"

	"github.com/spf13/viper"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
	"github.com/redmine-go/redmine/pkg/redmineclient"
)

// createClient builds a client from the resolved configuration (flags,
// environment, config file).
func createClient() (redmine.Client, error) {
	baseURL := viper.GetString("url")
	if baseURL == "" {
		return nil, constants.ErrNoServerConfigured
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	return redmineclient.New(&redmine.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Debug:   viper.GetBool("verbose"),
	})
}

// parseID parses a numeric id argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, constants.ErrInvalidID
	}

	return id, nil
}
