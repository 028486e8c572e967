package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/rulegen/internal/logging"
	"github.com/ppiankov/rulegen/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	// flagKeys maps config keys to the flags that override them. Bindings
	// are applied in initConfig so they survive a viper reset.
	flagKeys = map[string]*pflag.Flag{}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rulegen",
	Short: "rulegen - build the call-classification lookup table from the signal workbook",
	Long: `rulegen converts the call-classification workbook into a normalized,
deduplicated lookup table keyed by call-type code.

Every run is a full rebuild. Two artifacts are written for the n8n
automation: a plain JSON file and a JS snippet declaring the same object
as a constant. Bad cells never stop a run; they fall back to documented
defaults and are listed in the summary.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "rulegen v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.rulegen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	bindFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	bindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())
	for key, flag := range flagKeys {
		_ = viper.BindPFlag(key, flag)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".rulegen"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// RULEGEN_SOURCE_PATH, RULEGEN_OUTPUT_DIR, ...
	viper.SetEnvPrefix("RULEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// bindFlag registers flag as the override for config key
func bindFlag(key string, flag *pflag.Flag) {
	flagKeys[key] = flag
}

// setDefaults registers every config key so env vars and Unmarshal see them
func setDefaults(d *model.Config) {
	viper.SetDefault("source.path", d.Source.Path)
	viper.SetDefault("source.sheet", d.Source.Sheet)
	viper.SetDefault("output.dir", d.Output.Dir)
	viper.SetDefault("output.json_file", d.Output.JSONFile)
	viper.SetDefault("output.snippet_file", d.Output.SnippetFile)
	viper.SetDefault("output.const_name", d.Output.ConstName)
	viper.SetDefault("cache.enabled", d.Cache.Enabled)
	viper.SetDefault("cache.dir", d.Cache.Dir)
	viper.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
	viper.SetDefault("verbose", d.Verbose)
}

// loadConfig resolves the effective configuration from all sources
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	return nil
}
