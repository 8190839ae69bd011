package logreflector

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

var addSignature = Signature{Target: "Calculator", Method: "Add", Params: []string{"a", "b"}}

func newTestInterceptor(t *testing.T, policy ExceptionPolicy) (*Interceptor, *recordingLogger) {
	t.Helper()
	rec := &recordingLogger{}
	ic, err := NewInterceptor(rec, policy)
	require.NoError(t, err)
	return ic, rec
}

func TestNewInterceptorRequiresLogger(t *testing.T) {
	_, err := NewInterceptor(nil, ReinvokeOnException)
	require.ErrorIs(t, err, ErrNilLogger)
}

func TestNewInterceptorDefaultsPolicy(t *testing.T) {
	ic, err := NewInterceptor(&recordingLogger{}, "")
	require.NoError(t, err)
	assert.Equal(t, ReinvokeOnException, ic.Policy())
}

func TestAddEmitsEntryCallExit(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	add := Method2(ic, addSignature, func(_ context.Context, a, b int) (int, error) {
		return a + b, nil
	})

	got, err := add(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	assert.Equal(t, []string{eventEntry, eventCall, eventExit}, rec.Kinds())

	call, ok := rec.find(eventCall)
	require.True(t, ok)
	assert.Equal(t, 5, call.Result.Value)
	assert.Equal(t, "Calculator.Add", call.Result.Method.Key())

	entry, _ := rec.find(eventEntry)
	assert.Equal(t, []Parameter{
		{Name: "a", Type: "int", Value: 2},
		{Name: "b", Type: "int", Value: 3},
	}, entry.Params)
}

func TestHooksShareOneMetadataPerCall(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)
	add := Method2(ic, addSignature, func(_ context.Context, a, b int) (int, error) { return a + b, nil })

	_, _ = add(context.Background(), 1, 1)
	_, _ = add(context.Background(), 2, 2)

	events := rec.Events()
	require.Len(t, events, 6)
	assert.Same(t, events[0].MD, events[1].MD)
	assert.Same(t, events[0].MD, events[2].MD)
	assert.NotSame(t, events[0].MD, events[3].MD)
	assert.NotEqual(t, events[0].MD.CallID, events[3].MD.CallID)
	assert.Same(t, events[0].MD.Method, events[3].MD.Method)
}

func TestErrorReinvokesOriginalOnce(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	var calls atomic.Int32
	boom := errors.New("boom")
	divide := Method2(ic, Signature{Target: "Calculator", Method: "Divide", Params: []string{"a", "b"}},
		func(_ context.Context, a, b int) (int, error) {
			if calls.Add(1) == 1 {
				return 0, boom
			}
			return 7, nil
		})

	got, err := divide(context.Background(), 14, 2)

	require.NoError(t, err)
	assert.Equal(t, 7, got, "second invocation's result is returned")
	assert.Equal(t, int32(2), calls.Load(), "body runs twice")
	assert.Equal(t, []string{eventEntry, eventException, eventExit}, rec.Kinds())

	exc, _ := rec.find(eventException)
	assert.ErrorIs(t, exc.Err, boom)
}

func TestReinvocationErrorPropagates(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	var calls atomic.Int32
	fail := Method1(ic, Signature{Target: "Store", Method: "Get", Params: []string{"key"}},
		func(_ context.Context, key string) (string, error) {
			n := calls.Add(1)
			return "", fmt.Errorf("attempt %d: %s not found", n, key)
		})

	_, err := fail(context.Background(), "user:1")

	require.EqualError(t, err, "attempt 2: user:1 not found")
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []string{eventEntry, eventException, eventExit}, rec.Kinds())

	exc, _ := rec.find(eventException)
	assert.EqualError(t, exc.Err, "attempt 1: user:1 not found")
}

func TestPropagatePolicyRunsBodyOnce(t *testing.T) {
	ic, rec := newTestInterceptor(t, PropagateOnException)

	var calls atomic.Int32
	boom := errors.New("boom")
	save := Procedure1(ic, Signature{Target: "Store", Method: "Save", Params: []string{"key"}},
		func(_ context.Context, _ string) error {
			calls.Add(1)
			return boom
		})

	err := save(context.Background(), "k")

	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []string{eventEntry, eventException, eventExit}, rec.Kinds())
}

func TestPanicIsReportedAndRaisedAgain(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	var calls atomic.Int32
	explode := Method0(ic, Signature{Target: "Worker", Method: "Run"}, func(context.Context) (int, error) {
		calls.Add(1)
		panic("kaboom")
	})

	require.PanicsWithValue(t, "kaboom", func() {
		_, _ = explode(context.Background())
	})

	assert.Equal(t, int32(1), calls.Load(), "panics are not re-invoked")
	assert.Equal(t, []string{eventEntry, eventException, eventExit}, rec.Kinds())

	exc, _ := rec.find(eventException)
	var pe *PanicError
	require.ErrorAs(t, exc.Err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

func TestPanicInReinvocationStillFiresExit(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	var calls atomic.Int32
	flaky := Method0(ic, Signature{Target: "Worker", Method: "Run"}, func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("first")
		}
		panic("second")
	})

	require.PanicsWithValue(t, "second", func() {
		_, _ = flaky(context.Background())
	})
	assert.Equal(t, []string{eventEntry, eventException, eventExit}, rec.Kinds())
}

func TestIdentifiersAreReadAtCallTime(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)
	rec.setIDs("wrap-time", "wrap-time")

	add := Method2(ic, addSignature, func(_ context.Context, a, b int) (int, error) { return a + b, nil })

	rec.setIDs("track-1", "req-1")
	_, _ = add(context.Background(), 1, 2)
	rec.setIDs("track-2", "req-2")
	_, _ = add(context.Background(), 1, 2)

	events := rec.Events()
	require.Len(t, events, 6)
	assert.Equal(t, "track-1", events[0].MD.TrackingID)
	assert.Equal(t, "req-1", events[0].MD.RequestID)
	assert.Equal(t, "track-2", events[3].MD.TrackingID)
	assert.Equal(t, "req-2", events[3].MD.RequestID)
}

func TestParametersPairedWithDeclaredNames(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	search := Method3(ic, Signature{Target: "Index", Method: "Search", Params: []string{"query", "limit"}},
		func(_ context.Context, query string, limit int, tags []string) ([]string, error) {
			return tags, nil
		})

	_, err := search(context.Background(), "go", 10, []string{"x"})
	require.NoError(t, err)

	entry, ok := rec.find(eventEntry)
	require.True(t, ok)
	assert.Equal(t, []Parameter{
		{Name: "query", Type: "string", Value: "go"},
		{Name: "limit", Type: "int", Value: 10},
		{Name: "arg2", Type: "[]string", Value: []string{"x"}},
	}, entry.Params)

	info, ok := ic.Registry().Lookup("Index", "Search")
	require.True(t, ok)
	assert.Equal(t, "Index.Search(query string, limit int, arg2 []string) ([]string, error)", info.String())
}

func TestMethodNUsesDynamicTypes(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	sum := MethodN(ic, Signature{Target: "Calculator", Method: "Sum", Params: []string{"first"}},
		func(_ context.Context, args ...any) (any, error) {
			total := 0
			for _, a := range args {
				total += a.(int)
			}
			return total, nil
		})

	got, err := sum(context.Background(), 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	entry, _ := rec.find(eventEntry)
	require.Len(t, entry.Params, 3)
	assert.Equal(t, Parameter{Name: "first", Type: "int", Value: 1}, entry.Params[0])
	assert.Equal(t, Parameter{Name: "arg1", Type: "int", Value: 2}, entry.Params[1])
}

func TestProcedureReportsNilResult(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	ping := Procedure0(ic, Signature{Target: "Health", Method: "Ping"}, func(context.Context) error { return nil })
	require.NoError(t, ping(context.Background()))

	call, ok := rec.find(eventCall)
	require.True(t, ok)
	assert.Nil(t, call.Result.Value)
}

func TestAsyncResultIsForwardedBeforeItSettles(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)

	release := make(chan struct{})
	fetch := Method0(ic, Signature{Target: "Fetcher", Method: "Fetch"}, func(context.Context) (<-chan int, error) {
		out := make(chan int, 1)
		go func() {
			<-release
			out <- 42
		}()
		return out, nil
	})

	ch, err := fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{eventEntry, eventCall, eventExit}, rec.Kinds(), "exit fires before the value is ready")

	close(release)
	assert.Equal(t, 42, <-ch)
}

func TestNilInterceptorReturnsFunctionUnchanged(t *testing.T) {
	add := Method2(nil, addSignature, func(_ context.Context, a, b int) (int, error) { return a + b, nil })

	got, err := add(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestConcurrentCallsHaveIndependentMetadata(t *testing.T) {
	ic, rec := newTestInterceptor(t, ReinvokeOnException)
	add := Method2(ic, addSignature, func(_ context.Context, a, b int) (int, error) { return a + b, nil })

	const workers = 32
	var g errgroup.Group
	for n := 0; n < workers; n++ {
		g.Go(func() error {
			ctx := WithTrackingID(context.Background(), fmt.Sprintf("track-%d", n))
			got, err := add(ctx, n, n)
			if err != nil {
				return err
			}
			if got != 2*n {
				return fmt.Errorf("worker %d: got %d", n, got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	callIDs := make(map[string]struct{})
	for _, e := range rec.Events() {
		if e.Kind != eventEntry {
			continue
		}
		callIDs[e.MD.CallID] = struct{}{}
		n := e.Params[0].Value.(int)
		assert.Equal(t, fmt.Sprintf("track-%d", n), e.MD.TrackingID)
	}
	assert.Len(t, callIDs, workers)
}

func TestHookOrderWithMockLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)

	ic, err := NewInterceptor(log, ReinvokeOnException)
	require.NoError(t, err)

	add := Method2(ic, addSignature, func(_ context.Context, a, b int) (int, error) { return a + b, nil })

	gomock.InOrder(
		log.EXPECT().TrackingID(gomock.Any()).Return("t-1"),
		log.EXPECT().RequestID(gomock.Any()).Return("r-1"),
		log.EXPECT().OnEntry(gomock.Any(), gomock.Any(), gomock.Len(2)),
		log.EXPECT().OnCall(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, md *CallMetadata, result Result) {
				assert.Equal(t, "t-1", md.TrackingID)
				assert.Equal(t, "r-1", md.RequestID)
				assert.Equal(t, 5, result.Value)
			}),
		log.EXPECT().OnExit(gomock.Any(), gomock.Any()),
	)
	log.EXPECT().OnException(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := add(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestComposeFansOutToHooks(t *testing.T) {
	primary := &recordingLogger{}
	extra := &recordingLogger{}
	primary.setIDs("primary", "primary")
	extra.setIDs("extra", "extra")

	ic, err := NewInterceptor(primary, ReinvokeOnException, extra, nil)
	require.NoError(t, err)

	add := Method2(ic, addSignature, func(_ context.Context, a, b int) (int, error) { return a + b, nil })
	_, _ = add(context.Background(), 1, 1)

	assert.Equal(t, []string{eventEntry, eventCall, eventExit}, primary.Kinds())
	assert.Equal(t, []string{eventEntry, eventCall, eventExit}, extra.Kinds())
	assert.Equal(t, "primary", extra.Events()[0].MD.TrackingID)
}

func TestComposeWithoutHooksReturnsPrimary(t *testing.T) {
	primary := &recordingLogger{}
	assert.Same(t, primary, Compose(primary).(*recordingLogger))
}
