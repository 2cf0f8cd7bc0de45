package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
	"github.com/redmine-go/redmine/pkg/redmineclient"
)

// cliConfig is the on-disk shape of ~/.redmine/config.yml.
type cliConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		serverURL string
		apiKey    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Redmine server",
		Long:  "Store the server URL and API key in the config file after verifying them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(serverURL, apiKey)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Redmine base URL")
	cmd.Flags().StringVar(&apiKey, "key", "", "Redmine API key (prompted when omitted)")

	return cmd
}

func runLoginCommand(serverURL, apiKey string) error {
	if serverURL == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Redmine URL: ")

		input, _ := reader.ReadString('\n')
		serverURL = strings.TrimSpace(input)
	}

	if serverURL == "" {
		return constants.ErrNoServerConfigured
	}

	if apiKey == "" {
		fmt.Print("API key: ")

		byteKey, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("reading API key: %w", err)
		}

		apiKey = strings.TrimSpace(string(byteKey))

		fmt.Println()
	}

	if apiKey == "" {
		return constants.ErrNoAPIKeyConfigured
	}

	client, err := redmineclient.New(&redmine.Config{
		BaseURL: serverURL,
		APIKey:  apiKey,
	})
	if err != nil {
		return err
	}

	user, err := client.Users().Current(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("verifying credentials: %w", err)
	}

	if err := saveConfig(&cliConfig{URL: serverURL, APIKey: apiKey}); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s %s (%s)\n", user.Firstname, user.Lastname, user.Login)
	fmt.Printf("API key: %s\n", constants.MaskedSecret)

	return nil
}

func saveConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".redmine")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Println("Configuration saved to", configPath)

	return nil
}
