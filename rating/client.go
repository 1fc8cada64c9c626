package rating

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/invokation-games/rating-sdk-go/rating/credentials"
	"github.com/invokation-games/rating-sdk-go/rating/readers"
	"github.com/invokation-games/rating-sdk-go/rating/retry"
	"github.com/invokation-games/rating-sdk-go/rating/transport"
)

type Options struct {
	Environment EnvironmentType

	Endpoint *url.URL

	RetryMaxAttempts int

	Retryer retry.Retryer

	CredentialsProvider credentials.CredentialsProvider

	HttpClient HTTPClient

	UserAgent string

	Logger *slog.Logger

	ResponseHandlers []func(*http.Response) error
}

func (c Options) Copy() Options {
	to := c
	to.ResponseHandlers = make([]func(*http.Response) error, len(c.ResponseHandlers))
	copy(to.ResponseHandlers, c.ResponseHandlers)
	return to
}

type Client struct {
	options Options
}

func NewClient(cfg *Config, optFns ...func(*Options)) *Client {
	options := Options{
		Environment:         cfg.Environment,
		RetryMaxAttempts:    ToInt(cfg.RetryMaxAttempts),
		Retryer:             cfg.Retryer,
		CredentialsProvider: cfg.CredentialsProvider,
		HttpClient:          cfg.HttpClient,
	}
	resolveEnvironment(cfg, &options)
	resolveEndpoint(cfg, &options)
	resolveRetryer(cfg, &options)
	resolveHTTPClient(cfg, &options)
	resolveCredentialsProvider(cfg, &options)
	resolveUserAgent(cfg, &options)
	resolveLogger(cfg, &options)

	for _, fn := range optFns {
		fn(&options)
	}

	client := &Client{
		options: options,
	}

	return client
}

func resolveEnvironment(cfg *Config, o *Options) {
	if len(o.Environment) == 0 {
		o.Environment = EnvironmentProduction
	}
}

func resolveEndpoint(cfg *Config, o *Options) {
	endpoint := ToString(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	o.Endpoint, _ = url.Parse(endpoint)
}

func resolveRetryer(cfg *Config, o *Options) {
	if o.Retryer != nil {
		return
	}
	o.Retryer = retry.NewStandard(func(ro *retry.RetryOptions) {
		if o.RetryMaxAttempts > 0 {
			ro.MaxAttempts = o.RetryMaxAttempts
		}
	})
}

func resolveHTTPClient(cfg *Config, o *Options) {
	if o.HttpClient != nil {
		return
	}

	var fns []func(*transport.Config)
	if cfg.ConnectTimeout != nil {
		fns = append(fns, transport.ConnectTimeout(*cfg.ConnectTimeout))
	}
	if cfg.ReadWriteTimeout != nil {
		fns = append(fns, transport.ReadWriteTimeout(*cfg.ReadWriteTimeout))
	}
	if cfg.InsecureSkipVerify != nil {
		fns = append(fns, transport.InsecureSkipVerify(*cfg.InsecureSkipVerify))
	}
	if cfg.ProxyHost != nil {
		fns = append(fns, transport.ProxyHost(*cfg.ProxyHost))
	}
	if cfg.ProxyFromEnvironment != nil {
		fns = append(fns, transport.ProxyFromEnvironment(*cfg.ProxyFromEnvironment))
	}

	o.HttpClient = transport.NewHttpClient(fns...)
}

func resolveCredentialsProvider(cfg *Config, o *Options) {
	if o.CredentialsProvider == nil {
		o.CredentialsProvider = credentials.NewAnonymousCredentialsProvider()
	}
}

func resolveUserAgent(cfg *Config, o *Options) {
	if o.UserAgent != "" {
		return
	}
	if cfg.UserAgent != nil {
		o.UserAgent = fmt.Sprintf("%s %s", defaultUserAgent(), *cfg.UserAgent)
	} else {
		o.UserAgent = defaultUserAgent()
	}
}

func resolveLogger(cfg *Config, o *Options) {
	if o.Logger != nil {
		return
	}
	if cfg.Logger != nil {
		o.Logger = cfg.Logger
	} else {
		o.Logger = slog.New(discardHandler{})
	}
}

// InvokeOperation sends a raw operation to the service under the configured
// retry policy.
func (c *Client) InvokeOperation(ctx context.Context, input *OperationInput, optFns ...func(*Options)) (output *OperationOutput, err error) {
	return c.invokeOperation(ctx, input, optFns)
}

func (c *Client) invokeOperation(ctx context.Context, input *OperationInput, optFns []func(*Options)) (output *OperationOutput, err error) {
	options := c.options.Copy()

	for _, fn := range optFns {
		fn(&options)
	}

	// finalize retryer when a per-call max attempts override is present
	if options.RetryMaxAttempts > 0 && options.Retryer.MaxAttempts() != options.RetryMaxAttempts {
		options.Retryer = &retryerWithMaxAttempts{
			Retryer:     options.Retryer,
			maxAttempts: options.RetryMaxAttempts,
		}
	}

	if err = validateInput(input, &options); err != nil {
		return nil, err
	}

	output, err = c.sendRequest(ctx, input, &options)

	if err != nil {
		return output, &OperationError{
			OperationName: input.OpName,
			Err:           err}
	}

	return output, nil
}

// retryerWithMaxAttempts overrides the attempt cap of an existing retryer
// without changing its classification or backoff.
type retryerWithMaxAttempts struct {
	retry.Retryer
	maxAttempts int
}

func (r *retryerWithMaxAttempts) MaxAttempts() int {
	return r.maxAttempts
}

func validateInput(input *OperationInput, opts *Options) error {
	if input == nil {
		return NewErrParamRequired("input")
	}
	if input.OpName == "" {
		return NewErrParamRequired("input.OpName")
	}
	if !isValidMethod(input.Method) {
		return NewErrParamInvalid("input.Method")
	}
	if !isValidModelId(input.ModelId) {
		return NewErrParamInvalid("input.ModelId")
	}
	if !isValidEnvironment(opts.Environment) {
		return NewErrParamInvalid("Environment")
	}
	if !isValidEndpoint(opts.Endpoint) {
		return NewErrParamInvalid("Endpoint")
	}
	return nil
}

func (c *Client) sendRequest(ctx context.Context, input *OperationInput, opts *Options) (output *OperationOutput, err error) {
	// host & path
	host, path := buildURL(input, opts)
	strUrl := fmt.Sprintf("%s://%s%s", opts.Endpoint.Scheme, host, path)

	// querys
	if len(input.Parameters) > 0 {
		var buf bytes.Buffer
		for k, v := range input.Parameters {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(url.QueryEscape(k))
			if len(v) > 0 {
				buf.WriteString("=" + strings.Replace(url.QueryEscape(v), "+", "%20", -1))
			}
		}
		strUrl += "?" + buf.String()
	}

	request, err := http.NewRequestWithContext(ctx, input.Method, strUrl, nil)
	if err != nil {
		return output, err
	}

	// headers
	for k, v := range input.Headers {
		if len(k) > 0 && len(v) > 0 {
			request.Header.Add(k, v)
		}
	}
	request.Header.Set(HTTPHeaderUserAgent, opts.UserAgent)

	// one request id per logical operation, shared by all attempts
	requestID := uuid.NewString()
	request.Header.Set(HTTPHeaderRequestID, requestID)

	// body
	var body readers.ReadSeekerNopClose
	if input.Body == nil {
		body = readers.ReadSeekNopCloser(strings.NewReader(""))
	} else {
		body = readers.ReadSeekNopCloser(input.Body)
	}
	length, _ := body.GetLen()
	if length >= 0 && request.Header.Get("Content-Length") == "" {
		request.ContentLength = length
	}
	request.Body = body

	// send request with retries
	response, attempts, err := c.sendHTTPRequest(ctx, request, opts)

	if err != nil {
		return output, err
	}

	// covert http response into output context
	output = &OperationOutput{
		Input:       input,
		Status:      response.Status,
		StatusCode:  response.StatusCode,
		Body:        response.Body,
		Headers:     response.Header,
		httpRequest: request,
	}
	output.OpMetadata.Set(MetadataKeyAttempts, attempts)
	output.OpMetadata.Set(MetadataKeyRequestID, requestID)

	return output, nil
}

func (c *Client) sendHTTPRequest(ctx context.Context, request *http.Request, opts *Options) (response *http.Response, attempts int, err error) {
	retryer := opts.Retryer
	maxAttempts := retryer.MaxAttempts()
	body, _ := request.Body.(readers.ReadSeekerNopClose)
	bodyStart, _ := body.Seek(0, io.SeekCurrent)
	for tries := 1; tries <= maxAttempts; tries++ {
		attempts = tries
		if tries > 1 {
			delay, derr := retryer.RetryDelay(tries-1, err)
			if derr != nil {
				break
			}
			logRetryAttempt(ctx, opts.Logger, tries-1, maxAttempts-1, delay, err)
			if serr := sleepWithContext(ctx, delay); serr != nil {
				err = &CanceledError{Err: serr}
				break
			}
		}

		response, err = c.sendHTTPRequestOnce(ctx, request, opts)

		if err == nil {
			break
		}

		if isContextError(ctx, &err) {
			err = &CanceledError{Err: err}
			break
		}

		if !retryer.IsErrorRetryable(err) {
			break
		}

		if !readers.IsReaderSeekable(request.Body) {
			break
		}

		if _, serr := body.Seek(bodyStart, io.SeekStart); serr != nil {
			break
		}
	}
	return response, attempts, err
}

func (c *Client) sendHTTPRequestOnce(ctx context.Context, request *http.Request, opts *Options) (response *http.Response, err error) {
	cred, err := opts.CredentialsProvider.GetCredentials(ctx)
	if err != nil {
		return response, err
	}
	if cred.HasKey() {
		request.Header.Set(HTTPHeaderAPIKey, cred.APIKey)
	}

	response, err = opts.HttpClient.Do(request)

	if err != nil {
		return response, err
	}

	err = handleResponseServiceError(response)

	if err != nil {
		return response, err
	}

	for _, fn := range opts.ResponseHandlers {
		err = fn(response)
		if err != nil {
			return response, err
		}
	}

	return response, nil
}

// logRetryAttempt emits the per-retry observability event. It runs before the
// backoff wait and never influences the retry decision.
func logRetryAttempt(ctx context.Context, logger *slog.Logger, attempt, maxRetries int, delay time.Duration, cause error) {
	if logger == nil {
		return
	}
	causeDescription := ""
	if cause != nil {
		causeDescription = cause.Error()
	}
	logger.LogAttrs(ctx, slog.LevelWarn, "retrying request",
		slog.Int("attempt", attempt),
		slog.Int("max_retries", maxRetries),
		slog.Int64("delay_ms", delay.Milliseconds()),
		slog.String("cause", causeDescription),
	)
}

func buildURL(input *OperationInput, opts *Options) (string, string) {
	var host = ""
	var path = ""

	if input == nil || opts == nil || opts.Endpoint == nil {
		return host, path
	}

	host = opts.Endpoint.Host
	path = fmt.Sprintf("%s/%s/models/%s", apiVersionPrefix,
		string(opts.Environment), escapePath(ToString(input.ModelId), true))
	if input.Resource != "" {
		path += "/" + input.Resource
	}

	return host, path
}

func handleResponseServiceError(response *http.Response) error {
	if response.StatusCode/100 == 2 {
		return nil
	}

	timestamp, err := time.Parse(http.TimeFormat, response.Header.Get(HTTPHeaderDate))
	if err != nil {
		timestamp = nowTime()
	}

	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)

	se := &ServiceError{
		StatusCode:    response.StatusCode,
		Code:          "BadErrorResponse",
		RequestID:     response.Header.Get(HTTPHeaderRequestID),
		Timestamp:     timestamp,
		RequestTarget: fmt.Sprintf("%s %s", response.Request.Method, response.Request.URL),
		Snapshot:      body,
	}

	if err != nil {
		se.Message = fmt.Sprintf("The body of the response was not readable, due to :%s", err.Error())
		return se
	}

	if code := gjson.GetBytes(body, "error.code"); code.Exists() {
		se.Code = code.String()
	}
	if message := gjson.GetBytes(body, "error.message"); message.Exists() {
		se.Message = message.String()
	}
	if requestID := gjson.GetBytes(body, "error.requestId"); requestID.Exists() {
		se.RequestID = requestID.String()
	}

	return se
}

func (c *Client) marshalInput(request RequestCommonInterface, input *OperationInput, payload any) error {
	headers, parameters := request.GetCommonFields()
	for k, v := range headers {
		if input.Headers == nil {
			input.Headers = map[string]string{}
		}
		input.Headers[k] = v
	}
	for k, v := range parameters {
		if input.Parameters == nil {
			input.Parameters = map[string]string{}
		}
		input.Parameters[k] = v
	}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &ClientError{
				Code:    "SerializationFail",
				Message: "marshal request payload failed",
				Err:     err,
			}
		}
		input.Body = bytes.NewReader(data)
	}

	return nil
}

func (c *Client) unmarshalOutput(result ResultCommonInterface, output *OperationOutput, body any) error {
	result.CopyIn(output.Status, output.StatusCode, output.Headers, output.OpMetadata)

	if body == nil || output.Body == nil {
		return nil
	}

	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, body)
}

func (c *Client) toClientError(err error, code string, output *OperationOutput) error {
	if err == nil {
		return nil
	}

	opName := ""
	if output != nil && output.Input != nil {
		opName = output.Input.OpName
	}

	return &ClientError{
		Code:    code,
		Message: fmt.Sprintf("execute %s fail", opName),
		Err:     err,
	}
}

// discardHandler drops every record. It is the default logger so the SDK is
// silent unless a logger is configured.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
