package logreflector

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReturnsCachedDescriptor(t *testing.T) {
	r := NewMethodRegistry()
	sig := Signature{Target: "Calculator", Method: "Add", Params: []string{"a", "b"}}
	ints := []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[int]()}
	results := []reflect.Type{reflect.TypeFor[int](), errorType}

	first, err := r.Register(sig, ints, results)
	require.NoError(t, err)
	second, err := r.Register(Signature{Target: "Calculator", Method: "Add"}, ints, results)
	require.NoError(t, err)

	assert.Same(t, first, second)
	got, ok := r.Lookup("Calculator", "Add")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, "Calculator.Add(a int, b int) (int, error)", first.String())
}

func TestRegistryRejectsConflictingTypes(t *testing.T) {
	r := NewMethodRegistry()
	sig := Signature{Method: "Get"}

	first, err := r.Register(sig, []reflect.Type{reflect.TypeFor[int]()}, []reflect.Type{reflect.TypeFor[int](), errorType})
	require.NoError(t, err)

	_, err = r.Register(sig,
		[]reflect.Type{reflect.TypeFor[string](), reflect.TypeFor[string]()},
		[]reflect.Type{reflect.TypeFor[string](), errorType})
	require.ErrorIs(t, err, ErrSignatureConflict)
	assert.Contains(t, err.Error(), "Get(arg0 int) (int, error)")
	assert.Contains(t, err.Error(), "Get(arg0 string, arg1 string) (string, error)")

	_, err = r.Register(sig, []reflect.Type{reflect.TypeFor[int]()}, []reflect.Type{reflect.TypeFor[string](), errorType})
	require.ErrorIs(t, err, ErrSignatureConflict)

	got, ok := r.Lookup("", "Get")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestWrappingConflictingSignaturePanics(t *testing.T) {
	ic, _ := newTestInterceptor(t, ReinvokeOnException)

	sig := Signature{Method: "Get"}
	Method1(ic, sig, func(_ context.Context, id int) (int, error) { return id, nil })

	assert.PanicsWithError(t,
		"logreflector: conflicting signature: Get already registered as Get(arg0 int) (int, error), got Get(arg0 string, arg1 string) (string, error)",
		func() {
			Method2(ic, sig, func(_ context.Context, a, b string) (string, error) { return a + b, nil })
		})

	// same types under the same key share the descriptor
	assert.NotPanics(t, func() {
		Method1(ic, sig, func(_ context.Context, id int) (int, error) { return id * 2, nil })
	})
}

func TestRegistryMethodsSorted(t *testing.T) {
	r := NewMethodRegistry()
	for _, sig := range []Signature{{Target: "B", Method: "x"}, {Target: "A", Method: "y"}} {
		_, err := r.Register(sig, nil, nil)
		require.NoError(t, err)
	}
	_, err := r.Register(Signature{Method: "free"}, nil, []reflect.Type{errorType})
	require.NoError(t, err)

	var keys []string
	for _, m := range r.Methods() {
		keys = append(keys, m.Key())
	}
	assert.Equal(t, []string{"A.y", "B.x", "free"}, keys)
	assert.Equal(t, "free() error", r.Methods()[2].String())
}
