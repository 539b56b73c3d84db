package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepository = "s0up4200/notion-page"

var checkOnly bool

// updateCmd replaces the running binary with the latest GitHub release
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update notion-page to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := parseVersion(version)
	if err != nil {
		return fmt.Errorf("cannot update this build: %w", err)
	}

	ctx := context.Background()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepository)
	}

	out := cmd.OutOrStdout()
	if latest.LessOrEqual(current.String()) {
		writeLine(out, "Already up to date (%s)", current)
		return nil
	}

	if checkOnly {
		writeLine(out, "Update available: %s -> %s", current, latest.Version())
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().Str("from", current.String()).Str("to", latest.Version()).Msg("Updating binary")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	writeLine(out, "Updated to %s", latest.Version())
	return nil
}
