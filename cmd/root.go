// Package cmd implements the command-line interface for mailharvest.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/mailharvest/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug mode for all commands
	debug bool

	// inputPath and outputPath are the required run parameters
	inputPath  string
	outputPath string

	// rootCmd is the single entry point: it runs the harvest directly.
	rootCmd = &cobra.Command{
		Use:   "mailharvest",
		Short: "Harvest email addresses from a list of domains",
		Long: `mailharvest reads domains from a CSV file, fetches each domain's
homepage plus a bounded set of keyword-matched subpages (contact, about, ...),
extracts unique email addresses, and writes one CSV row per input domain.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarvest(cmd.Context())
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to viper
	_ = godotenv.Load()

	// Parse flags early so --config and --debug are set before initConfig
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input CSV file with a domain column (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV file for results (required)")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	rootCmd.Flags().Duration("timeout", config.DefaultTimeout, "per-request timeout")
	rootCmd.Flags().Int("max-retries", config.DefaultMaxRetries, "retry attempts per request")
	rootCmd.Flags().Duration("delay", config.DefaultDelay, "politeness delay between requests")
	rootCmd.Flags().Int("max-subpages", config.DefaultMaxSubpages, "maximum subpages sampled per domain")
	rootCmd.Flags().StringSlice("keywords", config.DefaultKeywords, "link keywords to follow")
	rootCmd.Flags().String("user-agent", config.DefaultUserAgent, "user agent for requests")

	bindFlags(viper.GetViper())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mailharvest version %s\n", version)
		},
	})
}

// bindFlags binds the tuning flags to their configuration keys on the
// given viper instance.
func bindFlags(v *viper.Viper) {
	bindings := map[string]string{
		"harvest.timeout":      "timeout",
		"harvest.max_retries":  "max-retries",
		"harvest.delay":        "delay",
		"harvest.max_subpages": "max-subpages",
		"harvest.keywords":     "keywords",
		"harvest.user_agent":   "user-agent",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
}

// initConfig reads in the config file and environment variables if set.
// Precedence: flags > environment > config file > defaults.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetEnvPrefix("mailharvest")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	// An absent config file is fine; defaults and environment cover the rest
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}
