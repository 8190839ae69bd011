package logreflector

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"
)

// Signature is what the caller declares when wrapping a method. Go keeps no
// parameter names at runtime, so names are listed explicitly; types are taken
// from the wrapper's type arguments.
type Signature struct {
	// Target names the receiver type, e.g. "Calculator".
	Target string
	// Method names the wrapped method, e.g. "Add".
	Method string
	// Params are the declared parameter names in order. Missing names are
	// filled in as arg0, arg1, ...
	Params []string
}

// ParamInfo describes one declared parameter.
type ParamInfo struct {
	Name string
	Type string
}

// MethodInfo is the descriptor built once per wrapped method and shared by
// every call of it.
type MethodInfo struct {
	Target  string
	Method  string
	Params  []ParamInfo
	Results []string
}

// Key identifies the method in a MethodRegistry.
func (m *MethodInfo) Key() string {
	return methodKey(m.Target, m.Method)
}

// String renders the method as Target.Method(a int, b int) (int, error).
func (m *MethodInfo) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Name + " " + p.Type
	}
	s := fmt.Sprintf("%s(%s)", m.Key(), strings.Join(params, ", "))
	switch len(m.Results) {
	case 0:
		return s
	case 1:
		return s + " " + m.Results[0]
	default:
		return s + " (" + strings.Join(m.Results, ", ") + ")"
	}
}

// CallMetadata describes one intercepted call. A new value is built for every
// call and handed to each hook of that call.
type CallMetadata struct {
	Method     *MethodInfo
	TrackingID string
	RequestID  string
	CallID     string
	StartedAt  time.Time
}

// Parameter pairs a call argument with its declared name and type.
type Parameter struct {
	Name  string
	Type  string
	Value any
}

// Result wraps the value returned by a successful call.
type Result struct {
	Method *MethodInfo
	Value  any
}

// MethodRegistry caches MethodInfo by Target.Method so that signature data is
// computed at wrap time rather than per call.
type MethodRegistry struct {
	mu      sync.RWMutex
	methods map[string]*MethodInfo
}

// NewMethodRegistry returns an empty registry.
func NewMethodRegistry() *MethodRegistry {
	return &MethodRegistry{methods: make(map[string]*MethodInfo)}
}

// Register stores the descriptor for sig. If the method is already known with
// the same parameter and result types the cached descriptor is returned; a
// different type list under the same key is an ErrSignatureConflict.
func (r *MethodRegistry) Register(sig Signature, params []reflect.Type, results []reflect.Type) (*MethodInfo, error) {
	key := methodKey(sig.Target, sig.Method)
	info := newMethodInfo(sig, params, results)

	r.mu.RLock()
	cached, ok := r.methods[key]
	r.mu.RUnlock()
	if ok {
		return cached, checkSameTypes(cached, info)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.methods[key]; ok {
		return cached, checkSameTypes(cached, info)
	}
	r.methods[key] = info
	return info, nil
}

func newMethodInfo(sig Signature, params []reflect.Type, results []reflect.Type) *MethodInfo {
	info := &MethodInfo{
		Target:  sig.Target,
		Method:  sig.Method,
		Params:  make([]ParamInfo, len(params)),
		Results: make([]string, len(results)),
	}
	for i, t := range params {
		info.Params[i] = ParamInfo{Name: paramName(sig.Params, i), Type: typeString(t)}
	}
	for i, t := range results {
		info.Results[i] = typeString(t)
	}
	return info
}

func checkSameTypes(cached, info *MethodInfo) error {
	same := len(cached.Params) == len(info.Params) && slices.Equal(cached.Results, info.Results)
	for i := 0; same && i < len(info.Params); i++ {
		same = cached.Params[i].Type == info.Params[i].Type
	}
	if same {
		return nil
	}
	return fmt.Errorf("%w: %s already registered as %s, got %s", ErrSignatureConflict, cached.Key(), cached, info)
}

// Lookup returns the descriptor registered for target.method.
func (r *MethodRegistry) Lookup(target, method string) (*MethodInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.methods[methodKey(target, method)]
	return info, ok
}

// Methods returns all descriptors ordered by key.
func (r *MethodRegistry) Methods() []*MethodInfo {
	r.mu.RLock()
	out := make([]*MethodInfo, 0, len(r.methods))
	for _, info := range r.methods {
		out = append(out, info)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// parameters pairs live arguments with the declared parameters. Arguments
// beyond the declared ones (variadic wrappers) get positional names.
func parameters(info *MethodInfo, args []any) []Parameter {
	out := make([]Parameter, len(args))
	for i, arg := range args {
		p := Parameter{Value: arg}
		if i < len(info.Params) {
			p.Name = info.Params[i].Name
			p.Type = info.Params[i].Type
			if p.Type == "any" {
				p.Type = dynamicType(arg)
			}
		} else {
			p.Name = positionalName(i)
			p.Type = dynamicType(arg)
		}
		out[i] = p
	}
	return out
}

func methodKey(target, method string) string {
	if target == "" {
		return method
	}
	return target + "." + method
}

func paramName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return positionalName(i)
}

func positionalName(i int) string {
	return fmt.Sprintf("arg%d", i)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "any"
	}
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		return "any"
	}
	return t.String()
}

func dynamicType(v any) string {
	if v == nil {
		return "any"
	}
	return reflect.TypeOf(v).String()
}
