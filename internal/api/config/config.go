package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Log    LogConfig    `mapstructure:"log"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver              string `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	Path                string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	DSN                 string `mapstructure:"dsn" validate:"required_if=Driver mysql"`
	MaxIdle             int    `mapstructure:"max_idle" validate:"min=0"`
	MaxOpen             int    `mapstructure:"max_open" validate:"min=0"`
	MaxLifetime         int    `mapstructure:"max_lifetime" validate:"min=0"`
	SlowThreshold       int    `mapstructure:"slow_threshold" validate:"min=0"`
	CaseSensitiveSearch bool   `mapstructure:"case_sensitive_search"`
	EnforceForeignKeys  bool   `mapstructure:"enforce_foreign_keys"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level           string `mapstructure:"level" validate:"oneof=debug info warn error"`
	LogstashAddress string `mapstructure:"logstash_address"`
	LogstashIndex   string `mapstructure:"logstash_index"`
}

type KafkaConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	Brokers []string   `mapstructure:"brokers"`
	Topic   string     `mapstructure:"topic" validate:"required_if=Enabled true"`
	Sasl    SaslConfig `mapstructure:"sasl"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}
