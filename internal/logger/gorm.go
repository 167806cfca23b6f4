package logger

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct {
	l zerolog.Logger
}

var _ gormlogger.Writer = gormWriter{}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.l.Info().Msg(fmt.Sprintf(format, args...))
}

// Gorm returns a gorm logger that writes through zerolog. SQL statements are
// only traced in dev mode; slow queries and errors are always reported.
func Gorm(devMode bool) gormlogger.Interface {
	level := gormlogger.Warn
	if devMode {
		level = gormlogger.Info
	}

	return gormlogger.New(
		gormWriter{l: log.Logger.With().Str("evt.name", "gorm").Logger()},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
