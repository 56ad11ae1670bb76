package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbirch/yule-runner/internal/assets"
	"github.com/pbirch/yule-runner/internal/output"
)

var initForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the yule_runner.yaml configuration file",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an annotated starter config to ./yule_runner.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		const target = "yule_runner.yaml"

		if !initForce {
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", target)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to stat %s: %w", target, err)
			}
		}

		content, err := fs.ReadFile(assets.Starter, "yule_runner.yaml")
		if err != nil {
			return fmt.Errorf("failed to read embedded config: %w", err)
		}

		if err := os.WriteFile(target, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		output.Logger.Info("Wrote starter config", "path", target)
		return nil
	},
}

func init() {
	configCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing yule_runner.yaml")
}
