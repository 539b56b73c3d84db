package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"

	"github.com/s0up4200/notion-page/notion"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build information injected by main
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		writeLine(out, "notion-page %s", version)
		writeLine(out, "  Built:          %s", buildTime)
		writeLine(out, "  Notion-Version: %s", notion.APIVersion)
		writeLine(out, "  Go:             %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

// parseVersion parses a release version such as "v1.2.3". Development
// builds do not parse.
func parseVersion(v string) (semver.Version, error) {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("not a release version %q: %w", v, err)
	}
	return parsed, nil
}
