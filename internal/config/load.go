package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"benchdoc/internal/benchmark"
)

// Configuration keys.
const (
	KeyDocument       = "document"
	KeyPrimaryLibrary = "primary_library"
	KeyVerbose        = "verbose"
	KeyLogFile        = "log_file"
	KeyMetricsFile    = "metrics.textfile"
	KeySlackEnabled   = "notifications.slack.enabled"
	KeySlackChannel   = "notifications.slack.channel"
)

// EnvPrefix is prepended to every environment override, e.g. BENCHDOC_DOCUMENT.
const EnvPrefix = "BENCHDOC"

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Document       string
	PrimaryLibrary string
	Verbose        bool
	LogFile        string
	MetricsFile    string
	SlackEnabled   bool
	SlackChannel   string
}

// SetDefaults registers the default values.
func SetDefaults() {
	viper.SetDefault(KeyDocument, "README.md")
	viper.SetDefault(KeyPrimaryLibrary, benchmark.DefaultPrimaryLibrary)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeySlackEnabled, os.Getenv("SLACK_BOT_USER_TOKEN") != "")
	viper.SetDefault(KeySlackChannel, "#general")
}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error unless cfgFile names it explicitly.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchdoc")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Current returns the settings as currently resolved by viper.
func Current() Settings {
	return Settings{
		Document:       viper.GetString(KeyDocument),
		PrimaryLibrary: viper.GetString(KeyPrimaryLibrary),
		Verbose:        viper.GetBool(KeyVerbose),
		LogFile:        viper.GetString(KeyLogFile),
		MetricsFile:    viper.GetString(KeyMetricsFile),
		SlackEnabled:   viper.GetBool(KeySlackEnabled),
		SlackChannel:   viper.GetString(KeySlackChannel),
	}
}
