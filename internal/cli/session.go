package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fnav/internal/config"
	"github.com/vvka-141/fnav/internal/files/filesystem"
	"github.com/vvka-141/fnav/internal/files/scanner"
	"github.com/vvka-141/fnav/internal/logging"
	"github.com/vvka-141/fnav/internal/navigator"
	"github.com/vvka-141/fnav/internal/pathresolve"
	"github.com/vvka-141/fnav/internal/vars"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// session holds everything a command needs to navigate.
type session struct {
	cfg       *config.Config
	cfgDir    string
	opts      fnav.DisplayOptions
	logger    fnav.Logger
	fs        filesystem.FileSystemProvider
	resolver  *pathresolve.Resolver
	navigator *navigator.Navigator
}

// resolveConfigDir applies --config > $FNAV_CONFIG_DIR > user config directory.
// A .env file in the working directory may set FNAV_CONFIG_DIR.
func resolveConfigDir(cmd *cobra.Command) (string, error) {
	_ = godotenv.Load()

	if dir, _ := cmd.Flags().GetString("config"); dir != "" {
		return dir, nil
	}
	if dir := os.Getenv("FNAV_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	return config.DefaultDir()
}

// loadConfig loads fnav.yaml. A missing file yields the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	dir, err := resolveConfigDir(cmd)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load fnav.yaml: %w", err)
	}
	return cfg, dir, nil
}

// newSession builds the resolver, scanner and navigator for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	cfg, dir, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Config directory: %s", dir)

	opts, err := cfg.ToDisplayOptions()
	if err != nil {
		return nil, fmt.Errorf("fnav.yaml: %w", err)
	}

	envFiles := cfg.EnvFilePaths(dir)
	envFiles = append(envFiles, envFileFlags...)
	for _, f := range envFiles {
		logger.Verbose("Reading variables from %s", f)
	}

	resolver, err := vars.NewResolver(envFiles...)
	if err != nil {
		return nil, err
	}

	fsProvider := filesystem.NewOSFileSystem()
	nav := navigator.New(resolver, scanner.NewScannerWithFS(logger, fsProvider), logger)

	return &session{
		cfg:       cfg,
		cfgDir:    dir,
		opts:      opts,
		logger:    logger,
		fs:        fsProvider,
		resolver:  resolver,
		navigator: nav,
	}, nil
}

// silence routes scanner logging to a null logger. The browser owns the
// terminal, so log lines would corrupt its screen.
func (s *session) silence() {
	s.logger = logging.NewNullLogger()
	s.navigator = navigator.New(s.resolver, scanner.NewScannerWithFS(s.logger, s.fs), s.logger)
}

// startPath returns the path argument, falling back to fallback.
func startPath(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	if fallback == "" {
		return "~"
	}
	return fallback
}
