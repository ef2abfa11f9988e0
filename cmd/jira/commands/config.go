package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/fivetwenty-io/jira-client/pkg/jiraclient"
)

// passwordReader reads a password without echo. Tests replace it.
var passwordReader = func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", constants.ErrPasswordRequired
	}

	fmt.Fprint(os.Stderr, "Password: ")

	bytePassword, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(bytePassword), nil
}

// buildConfig turns the merged flag, environment and file settings into a
// client configuration.
func buildConfig() (*jira.Config, error) {
	server := strings.TrimSpace(viper.GetString("server"))
	if server == "" {
		return nil, constants.ErrNoServerConfigured
	}

	config := &jira.Config{
		ServerURI:   server,
		Username:    viper.GetString("user"),
		Password:    viper.GetString("password"),
		AccessToken: viper.GetString("token"),
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if config.AccessToken == "" && config.Username != "" && config.Password == "" {
		password, err := passwordReader()
		if err != nil {
			return nil, err
		}

		config.Password = password
	}

	if viper.GetBool("verbose") {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)

		config.Debug = true
		config.Logger = jira.NewLogrusLogger(logger)
	}

	return config, nil
}

func createClient() (jira.Client, error) {
	config, err := buildConfig()
	if err != nil {
		return nil, err
	}

	client, err := jiraclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
