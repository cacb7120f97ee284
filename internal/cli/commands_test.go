package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fnav/internal/config"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// resetFlags restores every flag of the command tree, since cobra keeps
// parsed values and Changed marks between Execute calls.
func resetFlags() {
	listFlags = listFlagValues{}
	browseFlags = browseFlagValues{}
	configInitForce = false
	envFileFlags = nil

	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				if sv, ok := f.Value.(pflag.SliceValue); ok {
					_ = sv.Replace(nil)
				} else {
					_ = f.Value.Set(f.DefValue)
				}
				f.Changed = false
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Setenv("FNAV_NON_INTERACTIVE", "1")
	t.Setenv("FNAV_CONFIG_DIR", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// workspace creates a directory to list and an empty config directory.
func workspace(t *testing.T) (dir, cfgDir string) {
	t.Helper()
	root := t.TempDir()
	dir = filepath.Join(root, "work")
	cfgDir = filepath.Join(root, "cfg")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("0123456789"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0644))
	return dir, cfgDir
}

func addDotfile(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("dotfiles are not hidden on Windows")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".secret"), []byte("s"), 0644))
}

func TestListCmd_PlainOutput(t *testing.T) {
	dir, cfgDir := workspace(t)

	out, _, err := executeCommand(t, "list", "--config", cfgDir, "--sort", "name", "--columns", "type,name", dir)
	require.NoError(t, err)
	assert.Equal(t, "\tFile Name\nf\ta.md\nf\tb.txt\nd\tsub\n", out)
}

func TestListCmd_SizeDescending(t *testing.T) {
	dir, cfgDir := workspace(t)

	out, _, err := executeCommand(t, "list", "--config", cfgDir,
		"--sort", "size", "--desc", "--columns", "name,size", "--pattern", "*.{txt,md}", dir)
	require.NoError(t, err)
	assert.Equal(t, "File Name\tSize\nb.txt\t10\na.md\t1\n", out)
}

func TestListCmd_HiddenEntries(t *testing.T) {
	dir, cfgDir := workspace(t)
	addDotfile(t, dir)

	out, _, err := executeCommand(t, "list", "--config", cfgDir, "--sort", "name", "--columns", "name", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, ".secret")

	out, _, err = executeCommand(t, "list", "--config", cfgDir, "-a", "--sort", "name", "--columns", "name", dir)
	require.NoError(t, err)
	assert.Equal(t, "File Name\n.secret\na.md\nb.txt\nsub\n", out)
}

func TestListCmd_ConfigDefaultsAndFlagOverride(t *testing.T) {
	dir, cfgDir := workspace(t)
	addDotfile(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, config.ConfigFileName), []byte(`display:
  show_hidden: true
  show_type: false
  show_extension: false
  show_size: false
  show_modified: false
  show_created: false
  sort_by: name
`), 0644))

	out, _, err := executeCommand(t, "list", "--config", cfgDir, dir)
	require.NoError(t, err)
	assert.Equal(t, "File Name\n.secret\na.md\nb.txt\nsub\n", out)

	out, _, err = executeCommand(t, "list", "--config", cfgDir, "--all=false", "--desc", dir)
	require.NoError(t, err)
	assert.Equal(t, "File Name\nsub\nb.txt\na.md\n", out)
}

func TestListCmd_EnvFileVariable(t *testing.T) {
	dir, cfgDir := workspace(t)
	envFile := filepath.Join(cfgDir, "paths.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FNAV_CLI_WORK="+dir+"\n"), 0644))

	out, _, err := executeCommand(t, "list", "--config", cfgDir, "--env-file", envFile,
		"--sort", "name", "--columns", "name", "%FNAV_CLI_WORK%/sub")
	require.NoError(t, err)
	assert.Equal(t, "File Name\n", out)
}

func TestResolveCmd_RepeatedEnvFilesLaterWins(t *testing.T) {
	_, cfgDir := workspace(t)
	first := filepath.Join(cfgDir, "first.env")
	second := filepath.Join(cfgDir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("FNAV_CLI_PICK=one\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("FNAV_CLI_PICK=two\n"), 0644))

	out, _, err := executeCommand(t, "resolve", "--config", cfgDir,
		"--env-file", first, "--env-file", second, "%FNAV_CLI_PICK%")
	require.NoError(t, err)
	assert.Equal(t, "two"+string(filepath.Separator)+"\n", out)

	// Values from an earlier invocation must not leak into the next one.
	_, _, err = executeCommand(t, "resolve", "--config", cfgDir, "%FNAV_CLI_PICK%")
	assert.ErrorIs(t, err, fnav.ErrMissingVariable)
}

func TestListCmd_ConfigEnvFilesRelativeToConfigDir(t *testing.T) {
	dir, cfgDir := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "paths.env"), []byte("FNAV_CLI_CFG_WORK="+dir+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, config.ConfigFileName), []byte("env_files:\n  - paths.env\n"), 0644))

	out, _, err := executeCommand(t, "list", "--config", cfgDir, "--columns", "name", "--sort", "name", "%FNAV_CLI_CFG_WORK%")
	require.NoError(t, err)
	assert.Contains(t, out, "b.txt")
}

func TestListCmd_Errors(t *testing.T) {
	dir, cfgDir := workspace(t)

	tests := []struct {
		name     string
		args     []string
		sentinel error
		exitCode int
	}{
		{"missing directory", []string{filepath.Join(dir, "nope")}, fnav.ErrNotFound, fnav.ExitNotFound},
		{"file instead of directory", []string{filepath.Join(dir, "b.txt")}, fnav.ErrNotADirectory, fnav.ExitNotADirectory},
		{"unset variable", []string{"%FNAV_CLI_SURELY_UNSET%/x"}, fnav.ErrMissingVariable, fnav.ExitMissingVariable},
		{"bad sort key", []string{"--sort", "colour", dir}, fnav.ErrInvalidConfig, fnav.ExitConfigError},
		{"bad pattern", []string{"--pattern", "[oops", dir}, fnav.ErrInvalidConfig, fnav.ExitConfigError},
		{"bad column", []string{"--columns", "name,owner", dir}, fnav.ErrInvalidConfig, fnav.ExitConfigError},
		{"missing env file", []string{"--env-file", filepath.Join(cfgDir, "absent.env"), dir}, fnav.ErrInvalidConfig, fnav.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--config", cfgDir}, tt.args...)
			_, _, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.Equal(t, tt.exitCode, fnav.ExitCodeForError(err))
		})
	}
}

func TestListCmd_TooManyArgs(t *testing.T) {
	_, cfgDir := workspace(t)
	_, _, err := executeCommand(t, "list", "--config", cfgDir, "a", "b")
	require.Error(t, err)
	assert.Equal(t, fnav.ExitUsageError, fnav.ExitCodeForError(err))
}

func TestListCmd_InvalidConfigFile(t *testing.T) {
	dir, cfgDir := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, config.ConfigFileName), []byte("display:\n  sort_by: colour\n"), 0644))

	_, _, err := executeCommand(t, "list", "--config", cfgDir, dir)
	require.Error(t, err)
	assert.Equal(t, fnav.ExitConfigError, fnav.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "fnav.yaml")
}

func TestListCmd_VerboseLogsToStderr(t *testing.T) {
	dir, cfgDir := workspace(t)

	_, stderr, err := executeCommand(t, "list", "-v", "--config", cfgDir, dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE] Scanned")
}

func TestResolveCmd(t *testing.T) {
	_, cfgDir := workspace(t)
	base := t.TempDir()
	t.Setenv("FNAV_CLI_BASE", base)

	out, _, err := executeCommand(t, "resolve", "--config", cfgDir, "%FNAV_CLI_BASE%/a//b")
	require.NoError(t, err)

	sep := string(filepath.Separator)
	assert.Equal(t, filepath.Join(base, "a", "b")+sep+"\n", out)
}

func TestResolveCmd_Errors(t *testing.T) {
	_, cfgDir := workspace(t)

	_, _, err := executeCommand(t, "resolve", "--config", cfgDir)
	require.Error(t, err)
	assert.Equal(t, fnav.ExitUsageError, fnav.ExitCodeForError(err))

	_, _, err = executeCommand(t, "resolve", "--config", cfgDir, "%FNAV_CLI_SURELY_UNSET%")
	require.Error(t, err)
	var missing *fnav.MissingVariableError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "FNAV_CLI_SURELY_UNSET", missing.Name)
}

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	_, cfgDir := workspace(t)

	_, _, err := executeCommand(t, "browse", "--config", cfgDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fnav.ErrNotInteractive))
	assert.Equal(t, fnav.ExitUsageError, fnav.ExitCodeForError(err))
}

func TestConfigInitAndShow(t *testing.T) {
	cfgDir := filepath.Join(t.TempDir(), "fresh")

	out, _, err := executeCommand(t, "config", "show", "--config", cfgDir)
	require.NoError(t, err)
	assert.Contains(t, out, "sort_by: none")
	assert.Contains(t, out, "start_path: '~'")

	out, _, err = executeCommand(t, "config", "init", "--config", cfgDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration saved")
	_, err = os.Stat(filepath.Join(cfgDir, config.ConfigFileName))
	require.NoError(t, err)

	_, _, err = executeCommand(t, "config", "init", "--config", cfgDir)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "already exists"))

	_, _, err = executeCommand(t, "config", "init", "--config", cfgDir, "--force")
	require.NoError(t, err)
}

func TestConfigDirFromEnvironment(t *testing.T) {
	cfgDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, config.ConfigFileName), []byte("start_path: /srv\n"), 0644))

	resetFlags()
	t.Setenv("FNAV_CONFIG_DIR", cfgDir)
	dir, err := resolveConfigDir(configShowCmd)
	require.NoError(t, err)
	assert.Equal(t, cfgDir, dir)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fnav "), "got %q", out)
}
