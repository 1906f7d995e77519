// Package logs builds the process-wide structured logger from config.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"taxgrid/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params carries the logger dependencies.
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the slog.Logger shared by every component. The pretty flag
// switches to the text handler for local runs; production output stays
// JSON. Debug mode additionally records source locations.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: params.Config.Env.Debug,
	}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if name := params.Config.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}

	return logger, nil
}

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// parseLevel maps the configured level name; an empty value defaults to info.
func parseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}

	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", name)
	}

	return level, nil
}
