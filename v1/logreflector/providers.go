package logreflector

import (
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/fx"
)

// Token identifies a binding in the container. A plain token is an fx value
// name, a token built with GroupToken is an fx value group and the empty
// token means "by type".
type Token string

const groupPrefix = "group:"

const (
	// OptionsToken names the resolved Config on the async path.
	OptionsToken Token = "logreflector_options"
	// LoggerToken names the Logger binding.
	LoggerToken Token = "logreflector_logger"
	// SerializerToken names the Serializer binding.
	SerializerToken Token = "logreflector_serializer"
	// ClassToken names the OptionsFactory registered for AsyncOptions.UseClass.
	ClassToken Token = "logreflector_options_factory"
)

// HooksGroup collects extra Hooks handed to the Interceptor.
var HooksGroup = GroupToken("logreflector_hooks")

// GroupToken returns the token of the fx value group name.
func GroupToken(name string) Token {
	return Token(groupPrefix + name)
}

// Tag renders the token as an fx struct tag.
func (t Token) Tag() string {
	switch {
	case t == "":
		return ""
	case strings.HasPrefix(string(t), groupPrefix):
		return fmt.Sprintf(`group:"%s"`, strings.TrimPrefix(string(t), groupPrefix))
	default:
		return fmt.Sprintf(`name:"%s"`, string(t))
	}
}

// ProviderKind tells how a Provider produces its value.
type ProviderKind int

const (
	// ValueProvider binds an already built value.
	ValueProvider ProviderKind = iota
	// ClassProvider binds a type through its constructor.
	ClassProvider
	// FactoryProvider binds the result of a factory function.
	FactoryProvider
)

func (k ProviderKind) String() string {
	switch k {
	case ValueProvider:
		return "value"
	case ClassProvider:
		return "class"
	case FactoryProvider:
		return "factory"
	default:
		return fmt.Sprintf("ProviderKind(%d)", int(k))
	}
}

// Provider describes one binding. Option turns it into an fx.Option.
type Provider struct {
	// Token the result is bound under.
	Token Token
	Kind  ProviderKind
	// Value is the bound value of a ValueProvider.
	Value any
	// Constructor builds the value of a ClassProvider or FactoryProvider.
	Constructor any
	// Inject lists the tokens of the constructor's leading parameters.
	// Remaining parameters are resolved by type.
	Inject []Token
	// As is a pointer to the interface the value is exposed as, e.g. new(Logger).
	As any
}

// Option realizes the binding. Configuration mistakes (missing constructor,
// missing value) surface as an fx error when the application is built.
func (p Provider) Option() fx.Option {
	switch p.Kind {
	case ValueProvider:
		if isNil(p.Value) {
			return fx.Error(fmt.Errorf("%s: %w", p, ErrNilValue))
		}
		ctor, err := valueConstructor(p.Value, p.As)
		if err != nil {
			return fx.Error(fmt.Errorf("%s: %w", p, err))
		}
		return fx.Provide(p.annotate(ctor, false))
	case ClassProvider, FactoryProvider:
		if isNil(p.Constructor) {
			return fx.Error(fmt.Errorf("%s: %w", p, ErrNilConstructor))
		}
		return fx.Provide(p.annotate(p.Constructor, true))
	default:
		return fx.Error(fmt.Errorf("%s: unknown provider kind", p))
	}
}

func (p Provider) String() string {
	token := string(p.Token)
	if token == "" {
		token = "<by type>"
	}
	return fmt.Sprintf("%s provider %s", p.Kind, token)
}

func (p Provider) annotate(ctor any, withAs bool) any {
	var anns []fx.Annotation
	if len(p.Inject) > 0 {
		tags := make([]string, len(p.Inject))
		for i, t := range p.Inject {
			tags[i] = t.Tag()
		}
		anns = append(anns, fx.ParamTags(tags...))
	}
	if tag := p.Token.Tag(); tag != "" {
		anns = append(anns, fx.ResultTags(tag))
	}
	if withAs && p.As != nil {
		anns = append(anns, fx.As(p.As))
	}
	if len(anns) == 0 {
		return ctor
	}
	return fx.Annotate(ctor, anns...)
}

// ProviderSet is what the facade hands to the container: the bindings, the
// caller's imports and the caller's extra providers, both carried verbatim.
type ProviderSet struct {
	Providers []Provider
	Imports   []fx.Option
	Extra     []fx.Option
}

// Lookup returns the first provider bound under token.
func (s ProviderSet) Lookup(token Token) (Provider, bool) {
	for _, p := range s.Providers {
		if p.Token == token {
			return p, true
		}
	}
	return Provider{}, false
}

// Option realizes the set as the "logreflector" fx module.
func (s ProviderSet) Option() fx.Option {
	opts := make([]fx.Option, 0, len(s.Imports)+len(s.Providers)+len(s.Extra)+1)
	opts = append(opts, s.Imports...)
	for _, p := range s.Providers {
		opts = append(opts, p.Option())
	}
	opts = append(opts, s.Extra...)
	opts = append(opts, fx.Invoke(fx.Annotate(RegisterLifecycle, fx.ParamTags(``, LoggerToken.Tag()))))
	return fx.Module("logreflector", opts...)
}

// valueConstructor builds a func() T returning value, T being the interface
// pointed to by as or the dynamic type of value.
func valueConstructor(value any, as any) (any, error) {
	v := reflect.ValueOf(value)
	typ := v.Type()
	if as != nil {
		asType := reflect.TypeOf(as)
		if asType.Kind() != reflect.Ptr {
			return nil, fmt.Errorf("As must be a pointer to an interface, got %v", asType)
		}
		typ = asType.Elem()
		if !v.Type().AssignableTo(typ) {
			return nil, fmt.Errorf("%v is not assignable to %v", v.Type(), typ)
		}
	}

	fnType := reflect.FuncOf(nil, []reflect.Type{typ}, false)
	fn := reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		out := reflect.New(typ).Elem()
		out.Set(v)
		return []reflect.Value{out}
	})
	return fn.Interface(), nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
