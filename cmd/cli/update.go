package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kcaldas/shellfolio/pkg/update"
	"github.com/kcaldas/shellfolio/pkg/version"
)

type updateOptions struct {
	checkOnly bool
	force     bool
	timeout   time.Duration
}

// newUpdateCommand creates the update command
func newUpdateCommand() *cobra.Command {
	uo := &updateOptions{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update shellfolio to the latest version",
		Long: `Update shellfolio to the latest version from GitHub releases.

Examples:
  shellfolio update             # Update to latest version
  shellfolio update --check     # Check for updates without updating
  shellfolio update --force     # Force update even if same version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			updater, err := update.NewUpdater()
			if err != nil {
				return fmt.Errorf("failed to create updater: %w", err)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out := cmd.OutOrStdout()
			if uo.checkOnly {
				return checkForUpdates(ctx, out, updater)
			}
			return performUpdate(ctx, out, updater, uo)
		},
	}

	cmd.Flags().BoolVar(&uo.checkOnly, "check", false, "Check for updates without updating")
	cmd.Flags().BoolVar(&uo.force, "force", false, "Force update even if current version is latest")
	cmd.Flags().DurationVar(&uo.timeout, "timeout", 5*time.Minute, "Timeout for update operation")
	return cmd
}

func checkForUpdates(ctx context.Context, out io.Writer, updater *update.Updater) error {
	fmt.Fprintf(out, "Current version: %s\n", version.GetVersion())
	fmt.Fprintln(out, "Checking for updates...")

	info, err := updater.CheckForUpdates(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	printUpdateInfo(out, info)
	return nil
}

func printUpdateInfo(out io.Writer, info *update.UpdateInfo) {
	fmt.Fprintf(out, "Latest version: %s\n", info.LatestVersion)
	if !info.UpdateNeeded {
		fmt.Fprintln(out, "✅ You are already using the latest version.")
		return
	}
	fmt.Fprintln(out, "🎉 A new version is available!")
	fmt.Fprintf(out, "Current: %s → Latest: %s\n", info.CurrentVersion, info.LatestVersion)
	if info.ReleaseNotes != "" {
		fmt.Fprintf(out, "\nRelease Notes:\n%s\n", info.ReleaseNotes)
	}
	if info.ReleaseURL != "" {
		fmt.Fprintf(out, "\nDetails: %s\n", info.ReleaseURL)
	}
	fmt.Fprintln(out, "\nRun 'shellfolio update' to update to the latest version.")
}

func performUpdate(ctx context.Context, out io.Writer, updater *update.Updater, uo *updateOptions) error {
	fmt.Fprintf(out, "Current version: %s\n", version.GetVersion())
	if uo.force {
		fmt.Fprintln(out, "🔄 Force updating...")
	}

	info, err := updater.Update(ctx, update.UpdateOptions{Force: uo.force, Timeout: uo.timeout})
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	if !info.UpdateNeeded && !uo.force {
		fmt.Fprintf(out, "✅ You are already using the latest version (%s).\n", info.LatestVersion)
		fmt.Fprintln(out, "Use --force to reinstall the current version.")
		return nil
	}

	fmt.Fprintf(out, "✅ Successfully updated to version %s!\n", info.LatestVersion)
	fmt.Fprintln(out, "\n🚀 Restart shellfolio to use the new version.")
	return nil
}
