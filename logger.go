package sysstats

import "go.uber.org/zap"

// logger is satisfied by *zap.SugaredLogger.
type logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

func newNopLogger() logger {
	return zap.NewNop().Sugar()
}
