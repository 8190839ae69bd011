package logreflector

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// AsyncOptions describes a Config that is resolved by the container instead
// of being passed in. Exactly one of UseFactory, UseExisting, UseValue and
// UseClass is expected to be set; FromFactory, FromExisting, FromValue and
// FromClass build each variant.
type AsyncOptions struct {
	// Imports are added to the module verbatim, typically the modules that
	// provide what the factory or class depends on.
	Imports []fx.Option

	// ExtraProviders are added to the module verbatim.
	ExtraProviders []fx.Option

	// UseFactory is a constructor returning Config or (Config, error).
	UseFactory any

	// Inject names the tokens of UseFactory's leading parameters.
	Inject []Token

	// UseExisting names an OptionsFactory already bound in the container.
	UseExisting Token

	// UseValue supplies the Config directly.
	UseValue *Config

	// UseClass is the constructor of an OptionsFactory implementation. It is
	// registered under ClassToken alongside the options provider.
	UseClass any
}

// FromFactory resolves the Config by calling factory with the values bound
// under inject.
func FromFactory(factory any, inject ...Token) AsyncOptions {
	return AsyncOptions{UseFactory: factory, Inject: inject}
}

// FromExisting resolves the Config through the OptionsFactory bound under token.
func FromExisting(token Token) AsyncOptions {
	return AsyncOptions{UseExisting: token}
}

// FromValue binds cfg as the resolved Config.
func FromValue(cfg Config) AsyncOptions {
	return AsyncOptions{UseValue: &cfg}
}

// FromClass registers constructor as an OptionsFactory and resolves the
// Config through it.
func FromClass(constructor any) AsyncOptions {
	return AsyncOptions{UseClass: constructor}
}

// Register builds the bindings for a resolved configuration. The logger and
// serializer are constructed here, before the container starts, and bound as
// values together with the interceptor service.
func Register(cfg Config) (ProviderSet, error) {
	if err := cfg.Validate(); err != nil {
		return ProviderSet{}, err
	}
	svc := NewService(cfg)
	l, err := svc.Logger()
	if err != nil {
		return ProviderSet{}, err
	}
	policy := cfg.exceptionPolicy()

	return ProviderSet{
		Providers: []Provider{
			{Token: LoggerToken, Kind: ValueProvider, Value: l, As: new(Logger)},
			{Token: SerializerToken, Kind: ValueProvider, Value: svc.Serializer(), As: new(Serializer)},
			{
				Kind: ClassProvider,
				Constructor: func(l Logger, hooks []Hooks) (*Interceptor, error) {
					return NewInterceptor(l, policy, hooks...)
				},
				Inject: []Token{LoggerToken, HooksGroup},
			},
		},
	}, nil
}

// ForRoot registers the log reflector with a resolved configuration.
//
// Usage:
//
//	app := fx.New(
//	    logreflector.ForRoot(logreflector.Config{ServiceName: "billing"}),
//	    fx.Provide(NewCalculator), // takes *logreflector.Interceptor
//	)
func ForRoot(cfg Config) fx.Option {
	set, err := Register(cfg)
	if err != nil {
		return fx.Error(fmt.Errorf("logreflector: %w", err))
	}
	return set.Option()
}

// RegisterAsync builds the bindings for a configuration resolved by the
// container. Nothing is constructed until fx resolves the graph; a descriptor
// with no variant set fails at that point.
func RegisterAsync(opts AsyncOptions) ProviderSet {
	providers := createAsyncProviders(opts)
	providers = append(providers,
		Provider{Token: LoggerToken, Kind: FactoryProvider, Constructor: loggerFromOptions, Inject: []Token{OptionsToken}},
		Provider{Token: SerializerToken, Kind: FactoryProvider, Constructor: serializerFromOptions, Inject: []Token{OptionsToken}},
		Provider{Kind: ClassProvider, Constructor: NewService, Inject: []Token{OptionsToken}},
		Provider{Kind: ClassProvider, Constructor: NewJSONSerializer, Inject: []Token{OptionsToken}},
		Provider{Kind: ClassProvider, Constructor: interceptorFromOptions, Inject: []Token{LoggerToken, OptionsToken, HooksGroup}},
	)

	return ProviderSet{
		Providers: providers,
		Imports:   opts.Imports,
		Extra:     opts.ExtraProviders,
	}
}

// ForRootAsync registers the log reflector with a configuration resolved by
// the container.
//
// Usage:
//
//	app := fx.New(
//	    config.Module,
//	    logreflector.ForRootAsync(logreflector.FromFactory(
//	        func(c *config.App) logreflector.Config { return c.LogReflector },
//	    )),
//	)
func ForRootAsync(opts AsyncOptions) fx.Option {
	return RegisterAsync(opts).Option()
}

func createAsyncProviders(opts AsyncOptions) []Provider {
	if opts.UseFactory != nil || opts.UseExisting != "" || opts.UseValue != nil {
		return []Provider{createAsyncOptionsProvider(opts)}
	}
	return []Provider{
		createAsyncOptionsProvider(opts),
		{Token: ClassToken, Kind: ClassProvider, Constructor: opts.UseClass, As: new(OptionsFactory)},
	}
}

func createAsyncOptionsProvider(opts AsyncOptions) Provider {
	if opts.UseFactory != nil {
		inject := make([]Token, len(opts.Inject))
		copy(inject, opts.Inject)
		return Provider{Token: OptionsToken, Kind: FactoryProvider, Constructor: opts.UseFactory, Inject: inject}
	}
	if opts.UseExisting != "" {
		return Provider{Token: OptionsToken, Kind: FactoryProvider, Constructor: optionsFromFactory, Inject: []Token{opts.UseExisting}}
	}
	if opts.UseValue != nil {
		return Provider{Token: OptionsToken, Kind: ValueProvider, Value: *opts.UseValue}
	}
	return Provider{Token: OptionsToken, Kind: FactoryProvider, Constructor: optionsFromFactory, Inject: []Token{ClassToken}}
}

func optionsFromFactory(f OptionsFactory) (Config, error) {
	cfg, err := f.CreateOptions(context.Background())
	if err != nil {
		return Config{}, fmt.Errorf("create log reflector options: %w", err)
	}
	return cfg, nil
}

func loggerFromOptions(cfg Config) (Logger, error) {
	return NewService(cfg).Logger()
}

func serializerFromOptions(cfg Config) Serializer {
	return NewService(cfg).Serializer()
}

func interceptorFromOptions(l Logger, cfg Config, hooks []Hooks) (*Interceptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewInterceptor(l, cfg.exceptionPolicy(), hooks...)
}

// Decorate wraps a value of type T already in the graph with wrap, giving it
// access to the Interceptor.
//
// Usage:
//
//	logreflector.Decorate(func(ic *logreflector.Interceptor, s Store) Store {
//	    return &loggedStore{next: s, get: logreflector.Method1(ic, sig, s.Get)}
//	})
func Decorate[T any](wrap func(*Interceptor, T) T) fx.Option {
	return fx.Decorate(func(ic *Interceptor, v T) T {
		return wrap(ic, v)
	})
}

type syncer interface {
	Sync() error
}

// RegisterLifecycle flushes the logger on shutdown when it buffers output.
func RegisterLifecycle(lc fx.Lifecycle, l Logger) {
	s, ok := l.(syncer)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Sync()
		},
	})
}
