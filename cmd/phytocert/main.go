package main

import (
	"fmt"
	"os"

	"phytocert/internal/config"
	"phytocert/internal/logging"
	"phytocert/internal/registry"
	"phytocert/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dbPath     string

	// Logger
	logger *zap.Logger

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phytocert",
	Short: "phytocert - bilingual phytosanitary certificate registry",
	Long: `phytocert manages bilingual (Arabic/English) phytosanitary export
certificates: a local certificate registry, portal branding, a public
lookup flow (certificate number + verification code + CAPTCHA), and the
QR payload embedded in printed certificates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Storage.DatabasePath = dbPath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve workspace: %w", err)
		}
		return logging.Initialize(cwd, cfg.Logging.DebugMode, cfg.Logging.Level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.Close()
	},
}

// openStore opens the configured record store. Callers own the Close.
func openStore() (*store.LocalStore, error) {
	s, err := store.NewLocalStore(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	logger.Debug("Record store opened", zap.String("path", s.Path()))
	return s, nil
}

func openRepos() (*store.LocalStore, *registry.CertificateRepository, *registry.BrandingRepository, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	return s, registry.NewCertificateRepository(s), registry.NewBrandingRepository(s), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "phytocert.yaml", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "override record store database path")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(brandingCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
