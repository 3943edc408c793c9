package logger

import (
	"SocialBoard/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
	"time"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 初始化默认 slog，配置了 logstash 地址时同时远程上报
func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.LogstashAddress != "" {
		conn, err := net.DialTimeout("tcp", cfg.LogstashAddress, 3*time.Second)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, opts).
				WithAttrs([]log.Attr{log.String("target_index", cfg.LogstashIndex)})

			finalHandler = NewTeeHandler(hStdout, &RemoteFilterHandler{next: hRemote})
			LogWriter = io.MultiWriter(os.Stdout, conn)
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
