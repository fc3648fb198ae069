package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if strings.TrimSpace(viper.GetString(KeyDocument)) == "" {
		errors = append(errors, "document must not be empty")
	}

	if strings.TrimSpace(viper.GetString(KeyPrimaryLibrary)) == "" {
		errors = append(errors, "primary_library must not be empty")
	}

	// metrics.textfile must name a file, not a directory
	if path := viper.GetString(KeyMetricsFile); path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("metrics.textfile must be a file, got directory: %s", path))
		}
	}

	if viper.GetBool(KeySlackEnabled) && strings.TrimSpace(viper.GetString(KeySlackChannel)) == "" {
		errors = append(errors, "notifications.slack.channel is required when slack notifications are enabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
