package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testStatusError struct {
	StatusCode int
}

func (e *testStatusError) Error() string {
	return fmt.Sprintf("http status code %d", e.StatusCode)
}

func (e *testStatusError) HttpStatusCode() int {
	return e.StatusCode
}

func TestStandardDefaults(t *testing.T) {
	s := NewStandard()
	assert.Equal(t, 3, s.MaxAttempts())

	delay, err := s.RetryDelay(1, nil)
	assert.Nil(t, err)
	assert.Equal(t, 500*time.Millisecond, delay)

	delay, err = s.RetryDelay(20, nil)
	assert.Nil(t, err)
	assert.Equal(t, 10*time.Second, delay)
}

func TestStandardOptions(t *testing.T) {
	s := NewStandard(func(o *RetryOptions) {
		o.MaxAttempts = 5
		o.BaseDelay = 1 * time.Second
		o.MaxBackoff = 3 * time.Second
	})
	assert.Equal(t, 5, s.MaxAttempts())

	delay, _ := s.RetryDelay(1, nil)
	assert.Equal(t, 1*time.Second, delay)
	delay, _ = s.RetryDelay(2, nil)
	assert.Equal(t, 2*time.Second, delay)
	delay, _ = s.RetryDelay(3, nil)
	assert.Equal(t, 3*time.Second, delay)

	// invalid values fall back to defaults
	s = NewStandard(func(o *RetryOptions) {
		o.MaxAttempts = -1
		o.BaseDelay = -1
	})
	assert.Equal(t, DefaultMaxAttempts, s.MaxAttempts())
	delay, _ = s.RetryDelay(1, nil)
	assert.Equal(t, DefaultBaseDelay, delay)
}

func TestStandardStatusCodeClassification(t *testing.T) {
	s := NewStandard()

	retryable := []int{429, 500, 502, 503, 504, 599}
	for _, code := range retryable {
		assert.True(t, s.IsErrorRetryable(&testStatusError{StatusCode: code}), "status %d", code)
	}

	terminal := []int{400, 401, 403, 404, 408, 409, 422, 499}
	for _, code := range terminal {
		assert.False(t, s.IsErrorRetryable(&testStatusError{StatusCode: code}), "status %d", code)
	}
}

func TestStandardTransportErrorClassification(t *testing.T) {
	s := NewStandard()

	assert.True(t, s.IsErrorRetryable(&url.Error{
		Op:  "Post",
		URL: "https://api.invokation.gg",
		Err: errors.New("connection refused"),
	}))
	assert.True(t, s.IsErrorRetryable(io.EOF))
	assert.True(t, s.IsErrorRetryable(io.ErrUnexpectedEOF))
	assert.True(t, s.IsErrorRetryable(errors.New("read tcp: connection reset by peer")))

	assert.False(t, s.IsErrorRetryable(nil))
	assert.False(t, s.IsErrorRetryable(errors.New("something else went wrong")))
}

func TestStandardCancellationNotRetryable(t *testing.T) {
	s := NewStandard()

	assert.False(t, s.IsErrorRetryable(context.Canceled))
	assert.False(t, s.IsErrorRetryable(context.DeadlineExceeded))

	// caller cancellation stays terminal even when wrapped by the transport
	assert.False(t, s.IsErrorRetryable(&url.Error{
		Op:  "Post",
		URL: "https://api.invokation.gg",
		Err: context.Canceled,
	}))
	assert.False(t, s.IsErrorRetryable(&url.Error{
		Op:  "Get",
		URL: "https://api.invokation.gg",
		Err: context.DeadlineExceeded,
	}))
}

func TestStandardDecisionIsPure(t *testing.T) {
	s := NewStandard()
	err := &testStatusError{StatusCode: 503}

	for i := 0; i < 5; i++ {
		assert.True(t, s.IsErrorRetryable(err))
		delay, derr := s.RetryDelay(2, err)
		assert.Nil(t, derr)
		assert.Equal(t, 1*time.Second, delay)
	}
}

func TestNopRetryer(t *testing.T) {
	r := NopRetryer{}
	assert.Equal(t, 1, r.MaxAttempts())
	assert.False(t, r.IsErrorRetryable(&testStatusError{StatusCode: 503}))
	_, err := r.RetryDelay(1, nil)
	assert.NotNil(t, err)
}

func TestParseRetryMode(t *testing.T) {
	mode, err := ParseRetryMode("standard")
	assert.Nil(t, err)
	assert.Equal(t, RetryModeStandard, mode)
	assert.Equal(t, "standard", mode.String())

	_, err = ParseRetryMode("adaptive")
	assert.NotNil(t, err)
}
