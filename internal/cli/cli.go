package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/jot/internal/app"
	"github.com/thenoetrevino/jot/internal/config"
)

type contextKey struct{}

// WithApp returns a context carrying an already opened App. Commands run
// with this context use it instead of opening the user's database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App came from the context and belongs to the caller
	owned bool
}

// NewCLI loads the user's config and opens the task database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns the App injected with WithApp, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
