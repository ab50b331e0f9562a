package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modmeta/cli/internal/config"
	"github.com/modmeta/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the modmeta CLI.`,
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigVetCmd())

	return c
}

var initForce bool

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new modmeta configuration file",
		Long: `Create a new modmeta configuration file with default values.

The configuration file is created at ~/.modmeta/config.yaml by default.
Use --config flag to specify a different location.`,
		RunE: runConfigInit,
	}

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runConfigInit(command *cobra.Command, _ []string) error {
	expandedPath, err := resolveConfigPath(command)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !initForce {
		return NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
			ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# modmeta CLI configuration\n\n")
	data = append(header, data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file created: %s\n",
		output.Styled(os.Stdout, output.StyleNoun, expandedPath))
	return nil
}

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the modmeta configuration file",
		Long: `Validate the modmeta configuration file against the internal schema.

The command validates the configuration file at ~/.modmeta/config.yaml by
default. Use --config flag to specify a different location.`,
		RunE: runConfigVet,
	}
}

func runConfigVet(command *cobra.Command, _ []string) error {
	expandedPath, err := resolveConfigPath(command)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return NewExitError(
			fmt.Errorf("config file not found: %s", expandedPath),
			ExitNotFound,
		)
	}

	cfg, err := config.NewLoader().Load(expandedPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		if validationErrs, ok := err.(config.ValidationErrors); ok {
			fmt.Fprintln(command.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(command.ErrOrStderr(), "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(command.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			exitErr := NewExitError(err, ExitGeneralError)
			exitErr.Logged = true
			return exitErr
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintf(command.OutOrStdout(), "%s Config file is valid: %s\n",
		output.Styled(os.Stdout, output.StyleOK, "✔"), expandedPath)
	return nil
}

// resolveConfigPath returns the expanded config file path from the --config
// flag or the default location.
func resolveConfigPath(command *cobra.Command) (string, error) {
	configFile := command.Flag("config").Value.String()
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expandedPath, nil
}
