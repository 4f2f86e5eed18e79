package log

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger       *logrus.Entry
	secrets      []string
	secretsMutex sync.RWMutex
)

// Entry returns the logger entry or creates one if none is present.
func Entry() *logrus.Entry {
	if logger == nil {
		logrus.SetFormatter(&maskingFormatter{wrapped: &logrus.TextFormatter{}})
		logger = logrus.WithField("library", "odooconn")
	}
	return logger
}

// InitLogger sets log level with respect to the verbose flag.
func InitLogger(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// RegisterSecret registers a value which should be masked in the log output,
// e.g. a password handed to the remote server on every call.
func RegisterSecret(secret string) {
	if len(secret) == 0 {
		return
	}
	secretsMutex.Lock()
	defer secretsMutex.Unlock()
	secrets = append(secrets, secret)
}

// maskingFormatter replaces registered secrets in the rendered log line before
// it reaches the output stream.
type maskingFormatter struct {
	wrapped logrus.Formatter
}

func (formatter *maskingFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line, err := formatter.wrapped.Format(entry)
	if err != nil {
		return line, err
	}
	secretsMutex.RLock()
	defer secretsMutex.RUnlock()
	masked := string(line)
	for _, secret := range secrets {
		masked = strings.Replace(masked, secret, "****", -1)
	}
	return []byte(masked), nil
}
