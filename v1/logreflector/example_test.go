package logreflector_test

import (
	"context"
	"errors"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/logreflector/v1/logreflector"
)

// Index is a service whose Search method is logged on every call.
type Index struct {
	Search func(ctx context.Context, query string, limit int) ([]string, error)
}

func NewIndex(ic *logreflector.Interceptor) *Index {
	return &Index{
		Search: logreflector.Method2(ic,
			logreflector.Signature{Target: "Index", Method: "Search", Params: []string{"query", "limit"}},
			func(ctx context.Context, query string, limit int) ([]string, error) {
				if limit <= 0 {
					return nil, errors.New("limit must be positive")
				}
				return []string{query}, nil
			},
		),
	}
}

// Example showing the sync registration
func ExampleForRoot() {
	app := fx.New(
		logreflector.ForRoot(logreflector.Config{
			ServiceName:     "search",
			ExceptionPolicy: logreflector.PropagateOnException,
			Redact:          []string{"password"},
		}),
		fx.Provide(NewIndex),
		fx.Invoke(func(idx *Index) {
			ctx := logreflector.NewTrackingContext(context.Background())
			_, _ = idx.Search(ctx, "golang", 10)
		}),
	)
	_ = app
}

// AppConfig stands in for the host application's configuration.
type AppConfig struct {
	Name string
}

// Example showing the async registration resolving options from the graph
func ExampleForRootAsync() {
	app := fx.New(
		fx.Supply(AppConfig{Name: "search"}),
		logreflector.ForRootAsync(logreflector.FromFactory(func(cfg AppConfig) logreflector.Config {
			return logreflector.Config{ServiceName: cfg.Name}
		})),
		fx.Provide(NewIndex),
	)
	_ = app
}
