package xmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nilObserver struct{ NoopObserver }

func (nilObserver) Start(context.Context, SpanOptions) (context.Context, Span) {
	return nil, nil
}

func TestStart_Fallbacks(t *testing.T) {
	//nolint:staticcheck // nil ctx 应安全
	ctx, span := Start(nil, nil, SpanOptions{})
	assert.NotNil(t, ctx)
	assert.IsType(t, NoopSpan{}, span)

	ctx, span = Start(context.Background(), nilObserver{}, SpanOptions{})
	assert.NotNil(t, ctx)
	assert.IsType(t, NoopSpan{}, span)
}

func TestNoopObserver(t *testing.T) {
	var obs Observer = NoopObserver{}
	//nolint:staticcheck // nil ctx 应安全
	ctx, span := obs.Start(nil, SpanOptions{})
	assert.NotNil(t, ctx)
	obs.AddChords(ctx, "radial", 1)
	obs.RecordEstimate(ctx, "radial", 0.5)
	span.End(Result{})
}

func TestResolveStatus(t *testing.T) {
	assert.Equal(t, StatusOK, resolveStatus(Result{}))
	assert.Equal(t, StatusError, resolveStatus(Result{Err: context.Canceled}))
	assert.Equal(t, StatusOK, resolveStatus(Result{Status: StatusOK, Err: context.Canceled}))
}
