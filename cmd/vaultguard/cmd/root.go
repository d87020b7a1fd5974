// Package cmd provides the CLI commands for vaultguard.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Brydon13/vaultguard/internal/config"
	"github.com/Brydon13/vaultguard/internal/logging"
	"github.com/Brydon13/vaultguard/internal/store"
	"github.com/Brydon13/vaultguard/internal/vault"
)

var (
	cfgFile string
	verbose bool
)

// appState holds what every command needs once configuration is loaded.
type appState struct {
	cfg    *config.Config
	logger *slog.Logger
	store  store.Store
	mgr    *vault.Manager
}

var app *appState

// rootCmd represents the base command. Without a subcommand it starts the
// interactive shell.
var rootCmd = &cobra.Command{
	Use:   "vaultguard",
	Short: "VaultGuard - a local, master-password protected password vault",
	Long: `VaultGuard stores named secrets encrypted under a key derived from
your master password. Nothing leaves your machine.

Run without arguments for the interactive shell, or use one-shot commands:
  vaultguard register --user alice_01
  vaultguard add email --user alice_01
  vaultguard get email --user alice_01
  vaultguard list --user alice_01 --output json
  vaultguard generate --length 24

The master password is read from VAULTGUARD_PASSWORD or prompted for.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
	RunE:              runShell,
}

// Execute runs the root command. The store is closed even when the command
// fails, since cobra skips post-run hooks on error.
func Execute() error {
	defer teardownApp()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.vaultguard/config.yaml)")
	flags.StringP("user", "u", "", "vault username")
	flags.String("storage-driver", "", "record storage backend: file or bolt")
	flags.String("storage-dir", "", "directory holding vault records (default ~/.vaultguard/vaults)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	viper.BindPFlag("user", flags.Lookup("user"))
	viper.BindPFlag("storage.driver", flags.Lookup("storage-driver"))
	viper.BindPFlag("storage.dir", flags.Lookup("storage-dir"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.DefaultHome())
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Load config file if it exists.
	_ = viper.ReadInConfig()
}

// isVerbose returns whether verbose mode is enabled.
func isVerbose() bool {
	if verbose {
		return true
	}
	return viper.GetBool("verbose")
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Flag values are bound only when set, so empty flags fall through to
	// config, env and defaults.
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Log.Level
	if isVerbose() {
		level = "debug"
	}
	logger, err := logging.New(os.Stderr, level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if cmd.Annotations[annotationNoStore] == "true" {
		app = &appState{cfg: cfg, logger: logger}
		return nil
	}

	st, err := store.Open(cfg.Storage.Driver, filepath.Clean(cfg.Storage.Dir))
	if err != nil {
		return fmt.Errorf("open vault storage: %w", err)
	}
	logger.Debug("storage opened", "driver", cfg.Storage.Driver, "dir", cfg.Storage.Dir)

	app = &appState{
		cfg:    cfg,
		logger: logger,
		store:  st,
		mgr:    vault.New(st, vault.WithLogger(logger)),
	}
	return nil
}

func teardownApp() {
	if app == nil || app.store == nil {
		return
	}
	if err := app.store.Close(); err != nil {
		app.logger.Warn("closing storage failed", "error", err)
	}
	app.store = nil
}

// annotationNoStore marks commands that never touch vault records.
const annotationNoStore = "vaultguard/no-store"
