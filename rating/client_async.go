package rating

import (
	"context"
)

// AsyncResult carries the outcome of a non-blocking operation call.
type AsyncResult[T any] struct {
	Result T
	Err    error
}

// asyncInvoke runs fn on its own goroutine and delivers the outcome on a
// buffered channel, so the caller's goroutine is free during backoff waits.
// Retry decisions are identical to the blocking call; only the delivery of
// the result differs.
func asyncInvoke[T any](fn func() (T, error)) <-chan AsyncResult[T] {
	ch := make(chan AsyncResult[T], 1)
	go func() {
		result, err := fn()
		ch <- AsyncResult[T]{Result: result, Err: err}
		close(ch)
	}()
	return ch
}

// SubmitMatchResultAsync is the non-blocking form of SubmitMatchResult.
func (c *Client) SubmitMatchResultAsync(ctx context.Context, request *SubmitMatchResultRequest, optFns ...func(*Options)) <-chan AsyncResult[*SubmitMatchResultResult] {
	return asyncInvoke(func() (*SubmitMatchResultResult, error) {
		return c.SubmitMatchResult(ctx, request, optFns...)
	})
}

// SubmitPredictionAsync is the non-blocking form of SubmitPrediction.
func (c *Client) SubmitPredictionAsync(ctx context.Context, request *SubmitPredictionRequest, optFns ...func(*Options)) <-chan AsyncResult[*SubmitPredictionResult] {
	return asyncInvoke(func() (*SubmitPredictionResult, error) {
		return c.SubmitPrediction(ctx, request, optFns...)
	})
}

// GetModelConfigAsync is the non-blocking form of GetModelConfig.
func (c *Client) GetModelConfigAsync(ctx context.Context, request *GetModelConfigRequest, optFns ...func(*Options)) <-chan AsyncResult[*GetModelConfigResult] {
	return asyncInvoke(func() (*GetModelConfigResult, error) {
		return c.GetModelConfig(ctx, request, optFns...)
	})
}
