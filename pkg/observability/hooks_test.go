package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSourceHooks{}
	s.OnAttemptStart(ctx, "csv:watches.csv")
	s.OnAttemptComplete(ctx, "csv:watches.csv", 3, time.Second, nil)
	s.OnFallback(ctx, "all sources failed")

	r := NoopRenderHooks{}
	r.OnLayoutComplete(ctx, "side-by-side", time.Millisecond)
	r.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)
	r.OnAssetLoadFailure(ctx, "bb54", "missing.png", errors.New("gone"))

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "example.com", "/watches.csv")
	h.OnResponse(ctx, "GET", "example.com", "/watches.csv", 200, time.Second)
	h.OnError(ctx, "GET", "example.com", "/watches.csv", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Source().(NoopSourceHooks); !ok {
		t.Error("Source() should return NoopSourceHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customSource := &testSourceHooks{}
	SetSourceHooks(customSource)
	if Source() != customSource {
		t.Error("SetSourceHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	SetSourceHooks(nil)
	if Source() != customSource {
		t.Error("SetSourceHooks(nil) should not replace hooks")
	}

	Reset()
	if _, ok := Source().(NoopSourceHooks); !ok {
		t.Error("Reset() should restore NoopSourceHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

type testSourceHooks struct{ NoopSourceHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
