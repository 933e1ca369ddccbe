// Package env provides a structure for managing application-wide
// dependencies.
package env

import (
	"context"
	"log/slog"
	"os"

	"github.com/forkfeed/forkfeed/internal/config"
	"github.com/forkfeed/forkfeed/internal/database"
	"github.com/forkfeed/forkfeed/internal/filestore"
	"github.com/forkfeed/forkfeed/internal/imaging"
	"github.com/forkfeed/forkfeed/internal/log"
	"github.com/forkfeed/forkfeed/internal/revalidate"
)

type Env struct {
	Logger     *slog.Logger
	Database   *database.Database
	Images     filestore.Store
	Normalizer *imaging.Normalizer
	Revalidate *revalidate.Notifier
	Config     config.Config

	// vars overrides os.Getenv lookups, for tests.
	vars map[string]string
}

// New builds an Env with a null logger and the given variable overrides.
// Intended for tests; production code populates the struct directly.
func New(vars map[string]string) *Env {
	return &Env{
		Logger:     log.NullLogger(),
		Normalizer: imaging.NewNormalizer(imaging.DefaultQuality),
		vars:       vars,
	}
}

// Get looks up a variable, preferring overrides to the process environment.
func (e *Env) Get(key string) string {
	if e != nil && e.vars != nil {
		if v, ok := e.vars[key]; ok {
			return v
		}
	}
	return os.Getenv(key)
}

type envKeyType struct{}

var envKey envKeyType

// WithCtx injects the environment into a context.
func WithCtx(ctx context.Context, environment *Env) context.Context {
	return context.WithValue(ctx, envKey, environment)
}

// EnvFromCtx extracts the environment from a context. If none is found, a
// null environment is returned so callers never nil-check.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok {
		return e
	}
	return New(nil)
}
