package logreflector

import (
	"context"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

func resultTypes[R any]() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[R](), errorType}
}

// Method0 wraps a method without parameters.
//
// A nil Interceptor returns fn unchanged. Wrapping a second function under
// the same Target.Method with other parameter or result types panics with
// ErrSignatureConflict.
func Method0[R any](i *Interceptor, sig Signature, fn func(context.Context) (R, error)) func(context.Context) (R, error) {
	if i == nil {
		return fn
	}
	info := i.describe(sig, nil, resultTypes[R]())
	return func(ctx context.Context) (R, error) {
		return invoke(ctx, i, info, nil, func() (R, error) {
			return fn(ctx)
		})
	}
}

// Method1 wraps a method with one parameter.
func Method1[A, R any](i *Interceptor, sig Signature, fn func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	if i == nil {
		return fn
	}
	info := i.describe(sig, []reflect.Type{reflect.TypeFor[A]()}, resultTypes[R]())
	return func(ctx context.Context, a A) (R, error) {
		return invoke(ctx, i, info, []any{a}, func() (R, error) {
			return fn(ctx, a)
		})
	}
}

// Method2 wraps a method with two parameters.
//
// Example:
//
//	func NewCalculator(ic *logreflector.Interceptor) *Calculator {
//	    c := &Calculator{}
//	    c.add = logreflector.Method2(ic,
//	        logreflector.Signature{Target: "Calculator", Method: "Add", Params: []string{"a", "b"}},
//	        c.doAdd)
//	    return c
//	}
func Method2[A, B, R any](i *Interceptor, sig Signature, fn func(context.Context, A, B) (R, error)) func(context.Context, A, B) (R, error) {
	if i == nil {
		return fn
	}
	info := i.describe(sig, []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}, resultTypes[R]())
	return func(ctx context.Context, a A, b B) (R, error) {
		return invoke(ctx, i, info, []any{a, b}, func() (R, error) {
			return fn(ctx, a, b)
		})
	}
}

// Method3 wraps a method with three parameters.
func Method3[A, B, C, R any](i *Interceptor, sig Signature, fn func(context.Context, A, B, C) (R, error)) func(context.Context, A, B, C) (R, error) {
	if i == nil {
		return fn
	}
	params := []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
	info := i.describe(sig, params, resultTypes[R]())
	return func(ctx context.Context, a A, b B, c C) (R, error) {
		return invoke(ctx, i, info, []any{a, b, c}, func() (R, error) {
			return fn(ctx, a, b, c)
		})
	}
}

// Procedure0 wraps a method that only returns an error. The CALL hook sees a
// nil result value.
func Procedure0(i *Interceptor, sig Signature, fn func(context.Context) error) func(context.Context) error {
	if i == nil {
		return fn
	}
	info := i.describe(sig, nil, []reflect.Type{errorType})
	return func(ctx context.Context) error {
		_, err := invoke(ctx, i, info, nil, func() (any, error) {
			return nil, fn(ctx)
		})
		return err
	}
}

// Procedure1 wraps a one-parameter method that only returns an error.
func Procedure1[A any](i *Interceptor, sig Signature, fn func(context.Context, A) error) func(context.Context, A) error {
	if i == nil {
		return fn
	}
	info := i.describe(sig, []reflect.Type{reflect.TypeFor[A]()}, []reflect.Type{errorType})
	return func(ctx context.Context, a A) error {
		_, err := invoke(ctx, i, info, []any{a}, func() (any, error) {
			return nil, fn(ctx, a)
		})
		return err
	}
}

// MethodN wraps an untyped variadic function. Declared names apply to the
// leading arguments; types are read from the argument values of each call.
func MethodN(i *Interceptor, sig Signature, fn func(context.Context, ...any) (any, error)) func(context.Context, ...any) (any, error) {
	if i == nil {
		return fn
	}
	info := i.describe(sig, make([]reflect.Type, len(sig.Params)), resultTypes[any]())
	return func(ctx context.Context, args ...any) (any, error) {
		return invoke(ctx, i, info, args, func() (any, error) {
			return fn(ctx, args...)
		})
	}
}
