package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	layoutStarts int
	renderStarts int
}

func (r *recordingPipelineHooks) OnLayoutStart(ctx context.Context, n int) { r.layoutStarts++ }
func (r *recordingPipelineHooks) OnLayoutComplete(ctx context.Context, n int, d time.Duration, err error) {
}
func (r *recordingPipelineHooks) OnRenderStart(ctx context.Context, formats []string) {
	r.renderStarts++
}
func (r *recordingPipelineHooks) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
}

func TestSetPipelineHooks(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	defer SetPipelineHooks(nil)

	Pipeline().OnLayoutStart(context.Background(), 3)
	Pipeline().OnRenderStart(context.Background(), []string{"svg"})

	if rec.layoutStarts != 1 || rec.renderStarts != 1 {
		t.Errorf("hooks not invoked: layout=%d render=%d", rec.layoutStarts, rec.renderStarts)
	}
}

func TestNilRestoresNoop(t *testing.T) {
	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	// No-op hooks must be safe to call.
	Pipeline().OnLayoutComplete(context.Background(), 0, 0, nil)
	Cache().OnCacheHit(context.Background(), "layout")
	Cache().OnCacheMiss(context.Background(), "layout")
	Cache().OnCacheSet(context.Background(), "layout", 42)
}
