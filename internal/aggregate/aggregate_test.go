package aggregate

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func skuPlan(fetch func(context.Context, string) (any, error)) Plan {
	return Plan{
		Name:  "sku",
		Key:   "skuDetails",
		Ref:   Field("id"),
		Fetch: fetch,
	}
}

func TestMergeAttachesDetails(t *testing.T) {
	t.Parallel()

	children := []any{
		map[string]any{"id": "1", "quantity": json.Number("2")},
		map[string]any{"id": "2"},
	}
	got := New().Merge(context.Background(), children, skuPlan(func(_ context.Context, ref string) (any, error) {
		return map[string]any{"Id": ref}, nil
	}))

	want := []any{
		map[string]any{"id": "1", "quantity": json.Number("2"), "skuDetails": map[string]any{"Id": "1"}},
		map[string]any{"id": "2", "skuDetails": map[string]any{"Id": "2"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged children mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeToleratesSingleFailure(t *testing.T) {
	t.Parallel()

	children := []any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
		map[string]any{"id": "3"},
	}
	got := New().Merge(context.Background(), children, skuPlan(func(_ context.Context, ref string) (any, error) {
		if ref == "2" {
			return nil, errors.New("upstream 500")
		}
		return ref, nil
	}))

	if len(got) != len(children) {
		t.Fatalf("expected %d entries, got %d", len(children), len(got))
	}
	want := []any{
		map[string]any{"id": "1", "skuDetails": "1"},
		map[string]any{"id": "2", "skuDetails": nil},
		map[string]any{"id": "3", "skuDetails": "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged children mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeUsesFailureHook(t *testing.T) {
	t.Parallel()

	plan := skuPlan(func(context.Context, string) (any, error) {
		return nil, errors.New("boom")
	})
	plan.Key = "skus"
	plan.OnFailure = func(entry map[string]any, err error) {
		entry["skus"] = []any{}
		entry["error"] = err.Error()
	}

	got := New().Merge(context.Background(), []any{map[string]any{"id": "7"}}, plan)
	entry := got[0].(map[string]any)
	if diff := cmp.Diff([]any{}, entry["skus"]); diff != "" {
		t.Fatalf("expected empty skus (-want +got):\n%s", diff)
	}
	if entry["error"] != "fetch sku 7: boom" {
		t.Fatalf("unexpected error annotation: %#v", entry["error"])
	}
}

func TestMergeHandlesMissingReferencesAndNonObjects(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	children := []any{
		map[string]any{"name": "no id"},
		"scalar",
		map[string]any{"id": ""},
		map[string]any{"id": json.Number("42")},
	}
	got := New().Merge(context.Background(), children, skuPlan(func(_ context.Context, ref string) (any, error) {
		calls.Add(1)
		return "detail-" + ref, nil
	}))

	if calls.Load() != 1 {
		t.Fatalf("expected exactly one fetch, got %d", calls.Load())
	}
	want := []any{
		map[string]any{"name": "no id", "skuDetails": nil},
		map[string]any{"skuDetails": nil},
		map[string]any{"id": "", "skuDetails": nil},
		map[string]any{"id": json.Number("42"), "skuDetails": "detail-42"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged children mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEmptyChildren(t *testing.T) {
	t.Parallel()

	got := New().Merge(context.Background(), nil, skuPlan(func(context.Context, string) (any, error) {
		t.Fatal("fetch must not be called")
		return nil, nil
	}))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	child := map[string]any{"id": "1"}
	New().Merge(context.Background(), []any{child}, skuPlan(func(context.Context, string) (any, error) {
		return "x", nil
	}))
	if _, ok := child["skuDetails"]; ok {
		t.Fatalf("input child was mutated: %#v", child)
	}
}

func TestMergeRunsFetchesConcurrently(t *testing.T) {
	t.Parallel()

	const n = 4
	var wg sync.WaitGroup
	wg.Add(n)
	children := make([]any, n)
	for i := range children {
		children[i] = map[string]any{"id": string(rune('a' + i))}
	}

	done := make(chan []any, 1)
	go func() {
		done <- New().Merge(context.Background(), children, skuPlan(func(context.Context, string) (any, error) {
			wg.Done()
			wg.Wait()
			return "ok", nil
		}))
	}()

	select {
	case got := <-done:
		if len(got) != n {
			t.Fatalf("expected %d entries, got %d", n, len(got))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("fetches did not run concurrently")
	}
}

func TestMergeRespectsLimit(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	children := make([]any, 10)
	for i := range children {
		children[i] = map[string]any{"id": "x"}
	}
	New(WithLimit(2)).Merge(context.Background(), children, skuPlan(func(context.Context, string) (any, error) {
		current := inFlight.Add(1)
		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil, nil
	}))
	if peak.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent fetches, saw %d", peak.Load())
	}
}

func TestChildren(t *testing.T) {
	t.Parallel()

	items := []any{map[string]any{"id": "1"}}
	cases := []struct {
		name   string
		parent any
		key    string
		want   int
	}{
		{"object with array", map[string]any{"items": items}, "items", 1},
		{"object missing key", map[string]any{"other": items}, "items", 0},
		{"key holds non array", map[string]any{"items": "nope"}, "items", 0},
		{"top level array", items, "", 1},
		{"nil parent", nil, "items", 0},
		{"array parent with key", items, "items", 0},
	}
	for _, tc := range cases {
		got := Children(tc.parent, tc.key)
		if got == nil {
			t.Errorf("%s: expected non-nil slice", tc.name)
		}
		if len(got) != tc.want {
			t.Errorf("%s: expected %d children, got %d", tc.name, tc.want, len(got))
		}
	}
}

func TestStringField(t *testing.T) {
	t.Parallel()

	obj := map[string]any{
		"str":    " 12 ",
		"num":    json.Number("9007199254740993"),
		"float":  float64(31),
		"empty":  "",
		"nested": map[string]any{},
		"null":   nil,
	}
	cases := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"str", "12", true},
		{"num", "9007199254740993", true},
		{"float", "31", true},
		{"empty", "", false},
		{"nested", "", false},
		{"null", "", false},
		{"missing", "", false},
	}
	for _, tc := range cases {
		got, ok := StringField(obj, tc.key)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("StringField(%q) = %q, %v; want %q, %v", tc.key, got, ok, tc.want, tc.wantOK)
		}
	}
}
