package config

import (
	"SocialBoard/internal/pkg/util"
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 SOCIALBOARD_DATABASE_PATH
const EnvPrefix = "SOCIALBOARD"

// LoadConfig 从文件与环境变量加载配置，configPaths 为空时使用 ./configs 与当前目录
func LoadConfig(configPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"./configs", "."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Warn("Config file not found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := util.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("invalid config: kafka.brokers is required when kafka is enabled")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "social_media.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 2)
	v.SetDefault("database.max_open", 0)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("database.slow_threshold", 200)
	v.SetDefault("database.case_sensitive_search", false)
	v.SetDefault("database.enforce_foreign_keys", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.logstash_address", "")
	v.SetDefault("log.logstash_index", "socialboard")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "socialboard.changes")
	v.SetDefault("kafka.sasl.enable", false)
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")
}
