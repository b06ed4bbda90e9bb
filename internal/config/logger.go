package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger points the global zerolog logger at stdout, LOG_FILE, or both.
// With console set to false nothing is written to stdout, which the terminal
// UI needs since it owns the screen. The returned closer releases the file.
func InitLogger(cfg *Config, console bool) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	var closer io.Closer = io.NopCloser(nil)

	if cfg.LogFile != "" {
		runLogFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
		if err != nil {
			return closer, errors.Wrapf(err, "failed to open log file %s", cfg.LogFile)
		}
		writers = append(writers, runLogFile)
		closer = runLogFile
	}
	if console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch len(writers) {
	case 0:
		log.Logger = zerolog.Nop()
	case 1:
		log.Logger = zerolog.New(writers[0]).With().Timestamp().Logger()
	default:
		multi := zerolog.MultiLevelWriter(writers...)
		log.Logger = zerolog.New(multi).With().Timestamp().Logger()
	}

	return closer, nil
}
