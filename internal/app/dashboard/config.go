package dashboard

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Username  string
	TimeClass string
	OutputDir string

	ArchiveFetchDelay time.Duration

	AnthropicApiKey string
	AnthropicModel  string
}

func LoadConfig() (Config, error) {
	var cfg Config

	// List of env files to load
	envFiles := []string{
		"./configs/dashboard/app.env",
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, fmt.Errorf("failed to load env files: %w", err)
	}

	viper.SetDefault("TIME_CLASS", "chess_rapid")
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("ARCHIVE_FETCH_DELAY", "500ms")

	cfg.Username = viper.GetString("CHESS_USERNAME")
	if cfg.Username == "" {
		return Config{}, fmt.Errorf("missing CHESS_USERNAME")
	}
	cfg.TimeClass = viper.GetString("TIME_CLASS")
	cfg.OutputDir = viper.GetString("OUTPUT_DIR")

	delay, err := time.ParseDuration(viper.GetString("ARCHIVE_FETCH_DELAY"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ARCHIVE_FETCH_DELAY: %w", err)
	}
	cfg.ArchiveFetchDelay = delay

	cfg.AnthropicApiKey = viper.GetString("ANTHROPIC_API_KEY")
	cfg.AnthropicModel = viper.GetString("ANTHROPIC_MODEL")

	return cfg, nil
}

// loadEnvFiles merges each env file into viper. Absent files are skipped
// so the lambda, which is configured purely through the environment, can
// run without any file on disk.
func loadEnvFiles(filenames []string) error {
	for _, file := range filenames {
		viper.SetConfigType("env")
		viper.AutomaticEnv()
		if _, err := os.Stat(file); err != nil {
			continue
		}
		viper.SetConfigFile(file)

		err := viper.MergeInConfig()
		if err != nil {
			return err
		}
	}
	return nil
}
