package retry

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
)

// HttpStatusCoder is implemented by errors carrying the HTTP status code of a
// non-2xx response.
type HttpStatusCoder interface {
	HttpStatusCode() int
}

var retryableStatusCodes = []int{
	429, // Too Many Requests
	502, // Bad Gateway
	503, // Service Unavailable
	504, // Gateway Timeout
}

// HTTPStatusCodeRetryable retries rate-limit and server-side error responses.
// Any other status code is terminal.
type HTTPStatusCodeRetryable struct{}

func (HTTPStatusCodeRetryable) IsErrorRetryable(err error) bool {
	var sc HttpStatusCoder
	if !errors.As(err, &sc) {
		return false
	}
	code := sc.HttpStatusCode()
	for _, e := range retryableStatusCodes {
		if code == e {
			return true
		}
	}
	return code >= 500
}

var retriableErrorStrings = []string{
	"use of closed network connection",
	"unexpected EOF reading trailer",
	"transport connection broken",
	"server closed idle connection",
	"connection reset by peer",
	"tls: use of closed connection",
}

var retriableErrors = []error{
	io.EOF,
	io.ErrUnexpectedEOF,
}

// TransportErrorRetryable retries unsolicited network failures. Failures
// caused by the caller's own cancellation or deadline are terminal.
type TransportErrorRetryable struct{}

func (TransportErrorRetryable) IsErrorRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		return true
	}

	var terr interface{ Timeout() bool }
	if errors.As(err, &terr) && terr.Timeout() {
		return true
	}

	for _, retriableErr := range retriableErrors {
		if errors.Is(err, retriableErr) {
			return true
		}
	}

	errString := err.Error()
	for _, phrase := range retriableErrorStrings {
		if strings.Contains(errString, phrase) {
			return true
		}
	}

	return false
}
