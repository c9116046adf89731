package telemetry

import (
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a JSON zap logger on stdout wrapped for OpenTelemetry.
// Entries logged through Ctx are also emitted as OpenTelemetry log records
// carrying the context's span. Unknown levels fall back to info.
func NewLogger(level, serviceName, version string) (*otelzap.Logger, error) {
	return newLogger(level, serviceName, version, "stdout")
}

// NewStderrLogger is NewLogger writing to stderr, for commands whose stdout
// carries the result.
func NewStderrLogger(level, serviceName, version string) (*otelzap.Logger, error) {
	return newLogger(level, serviceName, version, "stderr")
}

func newLogger(level, serviceName, version, output string) (*otelzap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.Encoding = "json"
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
		"version": version,
	}

	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return otelzap.New(zapLogger), nil
}
