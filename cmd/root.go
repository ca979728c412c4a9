/*
Copyright © 2025 TALLY Project

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/common-creation/tally/internal/config"
	apperrors "github.com/common-creation/tally/internal/errors"
	"github.com/common-creation/tally/internal/logging"
	"github.com/common-creation/tally/internal/styles"
	"github.com/common-creation/tally/internal/sum"
)

const usageLine = "Usage: tally [flags] <a> <b>"

// app holds the state shared by one invocation's command tree.
type app struct {
	cfgFile   string
	debugMode bool
	noColor   bool

	loader  *config.Loader
	cfg     *config.Config
	logger  *log.Logger
	runID   string
	loadErr error

	stderr io.Writer
}

// Execute runs the command line in os.Args and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command tree with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		loader: config.NewLoader(),
		logger: logging.Discard(),
		stderr: stderr,
	}

	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(separateOperands(root, args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	s := styles.New(stderr, a.colorDisabled())
	return apperrors.NewHandler(a.logger, stderr, s.Error, s.Muted).Handle(err)
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tally <a> <b>",
		Short: "Add two command-line operands",
		Long: `tally parses its two operands and prints their sum.

Operands are integers by default. Other types are selected with --type:
- int:    64-bit integers, overflow is an error
- float:  64-bit floating point numbers
- bool:   booleans, combined with logical AND
- string: text, concatenated
- json:   JSON numbers or arrays of numbers, every number is added`,
		Example: `  tally 2 3
  tally -2 3
  tally --type float 1.5 2.25
  tally --type json '[1,2]' '[3]'`,
		Version:           Version,
		Args:              a.operandArgs,
		PersistentPreRunE: a.initialize,
		RunE:              a.runSum,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/tally/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringP("type", "t", "", "operand type: "+strings.Join(sum.Kinds(), ", ")+" (default from config, int)")
	rootCmd.Flags().StringP("output", "o", "", "result format: text or json (default from config, text)")

	// Bind flags to the config loader
	a.mustBindFlag("type", rootCmd.Flags().Lookup("type"))
	a.mustBindFlag("output", rootCmd.Flags().Lookup("output"))
	a.mustBindFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	a.mustBindFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.SetVersionTemplate("tally version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return apperrors.WithHint(apperrors.UsageError, err, fmt.Sprintf("Run '%s --help' for usage.", c.CommandPath()))
	})

	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd
}

// mustBindFlag binds flag to key and panics if the flag is missing, which only
// happens when the command tree itself is wrong.
func (a *app) mustBindFlag(key string, flag *pflag.Flag) {
	if err := a.loader.BindFlag(key, flag); err != nil {
		panic(err)
	}
}

// initialize reads in config file and ENV variables and sets up logging.
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := a.loader.Load(a.cfgFile)
	if err != nil {
		return apperrors.Wrap(apperrors.ConfigError, err)
	}
	return a.setup(cmd, cfg)
}

// initializeLenient is initialize for commands that must work even when the
// configuration cannot be loaded; the load error is kept in loadErr.
func (a *app) initializeLenient(cmd *cobra.Command, args []string) error {
	cfg, err := a.loader.Load(a.cfgFile)
	if err != nil {
		a.loadErr = apperrors.Wrap(apperrors.ConfigError, err)
		cfg = config.NewDefaultConfig()
	}
	if err := a.setup(cmd, cfg); err != nil {
		return err
	}
	if a.loadErr != nil {
		a.logger.Debug("using default configuration", "err", a.loadErr)
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, cfg *config.Config) error {
	// Apply command line overrides
	if a.debugMode {
		format := cfg.Logging.Format
		cfg.Logging = logging.DebugConfig()
		cfg.Logging.Format = format
	}

	logger, err := logging.New(a.stderr, cfg.Logging)
	if err != nil {
		return apperrors.Wrap(apperrors.ConfigError, err)
	}

	a.cfg = cfg
	a.runID = logging.NewRunID()
	a.logger = logging.WithRun(logger, a.runID)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	a.logger.Debug("configuration loaded",
		"version", GetVersionString(),
		"file", a.loader.ConfigFileUsed(),
		"type", cfg.Type,
		"output", cfg.Output,
	)
	return nil
}

// operandArgs requires exactly the two operands.
func (a *app) operandArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return apperrors.WithHint(apperrors.UsageError, fmt.Errorf("expected 2 operands, got %d", len(args)), usageLine)
	}
	return nil
}

// runSum is executed when no subcommands are provided
func (a *app) runSum(cmd *cobra.Command, args []string) error {
	kind, err := a.cfg.Kind()
	if err != nil {
		return apperrors.Wrap(apperrors.ConfigError, err)
	}

	logger := logging.FromContext(cmd.Context())
	logger.Debug("adding operands", "type", kind, "a", args[0], "b", args[1])

	result, err := sum.Sum(kind, args[0], args[1])
	if err != nil {
		return apperrors.Wrap(apperrors.UserError, err)
	}

	logger.Debug("result computed", "result", result)
	return a.printResult(cmd.OutOrStdout(), kind, result)
}

// sumResult is the --output json document.
type sumResult struct {
	Type   string `json:"type"`
	Result any    `json:"result"`
}

func (a *app) printResult(w io.Writer, kind sum.Kind, result sum.Value) error {
	if a.cfg.JSONOutput() {
		return json.NewEncoder(w).Encode(sumResult{Type: kind.String(), Result: result.Interface()})
	}
	_, err := fmt.Fprintln(w, result.String())
	return err
}

// colorDisabled reports whether diagnostics must be written without color.
func (a *app) colorDisabled() bool {
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	return a.cfg != nil && a.cfg.NoColor
}
