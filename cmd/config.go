/*
Copyright © 2025 TALLY Project
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/common-creation/tally/internal/config"
	apperrors "github.com/common-creation/tally/internal/errors"
	"github.com/common-creation/tally/internal/styles"
)

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tally configuration",
		Long: `View, edit, initialize and validate tally configuration settings.

Settings are read from the file given with --config, $TALLY_CONFIG_PATH,
./tally.yaml or ~/.config/tally/config.yaml, in that order, and can be
overridden with TALLY_* environment variables and command-line flags.`,
		PersistentPreRunE: a.initializeLenient,
	}

	configCmd.AddCommand(a.newConfigShowCmd())
	configCmd.AddCommand(a.newConfigSetCmd())
	configCmd.AddCommand(a.newConfigGetCmd())
	configCmd.AddCommand(a.newConfigInitCmd())
	configCmd.AddCommand(a.newConfigValidateCmd())
	configCmd.AddCommand(a.newConfigPathCmd())

	return configCmd
}

func (a *app) newConfigShowCmd() *cobra.Command {
	var outputFormat string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration after files, environment and flags are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.loadErr != nil {
				return a.loadErr
			}

			var output []byte
			var err error

			switch strings.ToLower(outputFormat) {
			case "json":
				output, err = json.MarshalIndent(a.cfg, "", "  ")
				output = append(output, '\n')
			case "yaml", "":
				output, err = yaml.Marshal(a.cfg)
			default:
				return apperrors.Wrap(apperrors.UsageError, fmt.Errorf("unsupported output format: %s (must be 'yaml' or 'json')", outputFormat))
			}
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	showCmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "output format (yaml, json)")
	return showCmd
}

func (a *app) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the configuration file.

Only the file is rewritten; environment variables and flags are not saved.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Examples:
  tally config set type float
  tally config set output json
  tally config set logging.level debug`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			path := a.loader.GetConfigPath(a.cfgFile)

			cfg, err := a.loader.LoadFile(path)
			if err != nil {
				return apperrors.WithHint(apperrors.ConfigError, err, "Run 'tally config init --force' to replace it.")
			}

			if err := cfg.Set(key, value); err != nil {
				return apperrors.Wrap(apperrors.UsageError, fmt.Errorf("failed to set configuration value: %w", err))
			}
			if err := cfg.Validate(); err != nil {
				return apperrors.Wrap(apperrors.UsageError, err)
			}

			if err := a.loader.Save(path, cfg); err != nil {
				return apperrors.Wrap(apperrors.SystemError, err)
			}

			a.logger.Debug("saved configuration", "path", path, "key", key)
			s := styles.New(cmd.OutOrStdout(), a.colorDisabled())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Success.Render(fmt.Sprintf("✓ Configuration updated: %s = %s", key, value)))
			return err
		},
	}
}

func (a *app) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a specific configuration value",
		Long: `Print the effective value of a configuration key.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Examples:
  tally config get type
  tally config get logging.level`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.loadErr != nil {
				return a.loadErr
			}

			value, err := a.cfg.Get(args[0])
			if err != nil {
				return apperrors.Wrap(apperrors.UsageError, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func (a *app) newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long:  `Validate the effective configuration for errors.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.loadErr != nil {
				return a.loadErr
			}
			if err := a.cfg.Validate(); err != nil {
				return apperrors.Wrap(apperrors.ConfigError, fmt.Errorf("configuration is invalid: %w", err))
			}

			out := cmd.OutOrStdout()
			s := styles.New(out, a.colorDisabled())
			if a.loader.ConfigFileUsed() == "" {
				fmt.Fprintln(out, s.Warning.Render("! No configuration file found, using defaults"))
			}
			_, err := fmt.Fprintln(out, s.Success.Render("✓ Configuration is valid"))
			return err
		},
	}
}

func (a *app) newConfigInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new configuration file with default values.

This creates a config.yaml file in the default location (~/.config/tally/config.yaml),
in the location specified by --config, or at the given path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.DefaultConfigPath()
			}

			if err := a.loader.WriteSample(path, force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return apperrors.WithHint(apperrors.ConfigError, err, "Use --force to overwrite it.")
				}
				return apperrors.Wrap(apperrors.SystemError, err)
			}

			a.logger.Debug("wrote sample configuration", "path", path)
			s := styles.New(cmd.OutOrStdout(), a.colorDisabled())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s.Success.Render("✓ Created "+path))
			return err
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return initCmd
}

func (a *app) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Long:  `Print the file that configuration is read from, or would be created at.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.loader.ConfigFileUsed()
			if path == "" {
				path = a.loader.GetConfigPath(a.cfgFile)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
