/*
Copyright © 2025 TALLY Project
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"sort"

	"github.com/spf13/cobra"

	"github.com/common-creation/tally/internal/sum"
)

// Version information variables
// These are set at build time using ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// SetVersion sets the version information for the application
func SetVersion(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}

func (a *app) newVersionCmd() *cobra.Command {
	var verbose, jsonOutput bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display detailed version information about tally.

Shows the version number, build information, and platform details.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.initializeLenient,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := getVersionInfo()
			w := cmd.OutOrStdout()

			if jsonOutput {
				return outputJSON(w, info)
			}
			if verbose {
				return outputVerbose(w, info)
			}

			// Simple version output
			_, err := fmt.Fprintf(w, "tally version %s\n", info.Version)
			return err
		},
	}

	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed version information")
	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "output version information as JSON")

	return versionCmd
}

// VersionInfo contains all version-related information
type VersionInfo struct {
	Version   string            `json:"version"`
	Commit    string            `json:"commit"`
	Date      string            `json:"date"`
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	BuildInfo map[string]string `json:"build_info,omitempty"`
	Types     []string          `json:"types"`
}

func getVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Types:     sum.Kinds(),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.BuildInfo = make(map[string]string)

		if buildInfo.Main.Version != "" {
			info.BuildInfo["module_version"] = buildInfo.Main.Version
		}

		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "unknown" {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if info.Date == "unknown" {
					info.Date = setting.Value
				}
			case "vcs.modified":
				info.BuildInfo["vcs_modified"] = setting.Value
			case "GOOS", "GOARCH", "CGO_ENABLED":
				info.BuildInfo[setting.Key] = setting.Value
			}
		}
	}

	return info
}

func outputJSON(w io.Writer, info VersionInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

func outputVerbose(w io.Writer, info VersionInfo) error {
	fmt.Fprintf(w, "tally version %s\n", info.Version)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Built: %s\n", info.Date)
	fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)

	fmt.Fprintln(w, "\nOperand types:")
	for _, name := range info.Types {
		fmt.Fprintf(w, "  - %s\n", name)
	}

	if len(info.BuildInfo) > 0 {
		fmt.Fprintln(w, "\nBuild information:")
		keys := make([]string, 0, len(info.BuildInfo))
		for key := range info.BuildInfo {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(w, "  %s: %s\n", key, info.BuildInfo[key])
		}
	}

	return nil
}

// GetVersionString returns a formatted version string
func GetVersionString() string {
	if Version == "dev" {
		return fmt.Sprintf("tally %s (commit: %s)", Version, getShortCommit())
	}
	return fmt.Sprintf("tally %s", Version)
}

func getShortCommit() string {
	if len(Commit) >= 7 {
		return Commit[:7]
	}
	return Commit
}
