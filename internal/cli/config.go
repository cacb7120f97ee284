package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnav/internal/config"
	"github.com/vvka-141/fnav/internal/tui"
	"github.com/vvka-141/fnav/internal/ui"
	"github.com/vvka-141/fnav/pkg/fnav"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create fnav.yaml",
	Long: `fnav.yaml holds the start directory, env files and display defaults.

It lives in the user config directory (for example ~/.config/fnav on
Linux or %AppData%\fnav on Windows) unless --config or $FNAV_CONFIG_DIR
points elsewhere. Relative env_files entries are read from the same
directory as fnav.yaml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Prints the configuration fnav will use, as YAML.

When fnav.yaml does not exist the built-in defaults are printed.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write fnav.yaml with default settings",
	Long: `Creates fnav.yaml with default settings in the config directory.

An existing file is only replaced after confirmation on a terminal,
or with --force.

Examples:
  fnav config init
  fnav config init --config ./project-settings --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configInitForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite an existing fnav.yaml")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, dir, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", filepath.Join(dir, config.ConfigFileName))
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveConfigDir(cmd)
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	_, err = config.Load(dir)
	if !errors.Is(err, config.ErrConfigNotFound) {
		approver, err := overwriteApprover(cmd)
		if err != nil {
			return fmt.Errorf("%s: %w", configPath, err)
		}
		approved, err := approver.RequestApproval(cmd.Context(), configPath)
		if err != nil {
			return err
		}
		if !approved {
			return nil
		}
	}

	if err := config.Save(dir, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", configPath)
	return nil
}

// overwriteApprover picks how replacing an existing file is confirmed.
func overwriteApprover(cmd *cobra.Command) (fnav.Approver, error) {
	if configInitForce {
		return ui.NewForcedApproverTo(cmd.ErrOrStderr()), nil
	}
	if !tui.IsInteractive() {
		return nil, errors.New("already exists (use --force to overwrite)")
	}
	return ui.NewInteractiveApprover(cmd.InOrStdin(), cmd.ErrOrStderr()), nil
}
