package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

func Init(level string) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Warnf("bad log level %q, set default 'info'", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return log
}
