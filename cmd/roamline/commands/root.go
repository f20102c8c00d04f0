package commands

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/roamline/roamline"
)

var (
	version string
	commit  string
	date    string

	configDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roamline",
	Short: "Roamline - back-office record store for a travel CRM",
	Long: `Roamline manages the collections behind a travel CRM back office:
leads, employees, quotations and itineraries, persisted as JSON envelopes
in an embedded store (SQLite by default, Redis optionally).

State lives under the config directory; use --config-dir to point at a
different instance.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default: the user config dir)")
}

// openBackoffice builds a Backoffice against the configured directory and
// the backend named in its config file.
func openBackoffice() (*roamline.Backoffice, error) {
	dir := configDir
	if dir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving user config dir: %w", err)
		}
		dir = path.Join(userDir, "roamline")
	}

	return roamline.New(
		roamline.WithConfigDir(dir),
		roamline.WithConfiguredStore(),
	)
}
