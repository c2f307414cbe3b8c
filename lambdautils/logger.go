package lambdautils

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus logger at the given level. format is "json"
// (the default, what CloudWatch Logs Insights parses) or "text".
func NewLogger(level string, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level '%s'", level)
	}

	logger := logrus.New()
	logger.SetLevel(lvl)

	switch format {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, errors.Errorf("invalid log format '%s'", format)
	}

	return logger, nil
}

// WithInvocation returns an entry carrying the lambda metadata of ctx.
func WithInvocation(ctx context.Context, log logrus.FieldLogger) *logrus.Entry {
	return log.WithFields(GetLambdaMetaData(ctx).Fields())
}
