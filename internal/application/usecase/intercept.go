package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// Default routing values.
const (
	DefaultAPIPrefix = "/base_api/"
)

// DefaultInternalSchemes are the bridge's own URL schemes; calls to them are
// never intercepted.
var DefaultInternalSchemes = []string{"ipc://localhost", "tabshell://"}

// InterceptorConfig holds the routing predicate inputs.
type InterceptorConfig struct {
	APIPrefix       string
	InternalSchemes []string
}

// Interceptor routes matched network calls through the host bridge and
// hands everything else to the original transport untouched.
type Interceptor struct {
	marshaller *RequestMarshaller
	bridge     port.NetworkBridge
	sink       port.DebugSink
	native     http.RoundTripper
	prefix     string
	internal   []string
}

// InterceptorOption configures an Interceptor.
type InterceptorOption func(*Interceptor)

// WithDebugSink surfaces the debug echo of every intercepted call.
func WithDebugSink(sink port.DebugSink) InterceptorOption {
	return func(i *Interceptor) { i.sink = sink }
}

// WithNativeTransport sets the transport used for passthrough calls.
func WithNativeTransport(rt http.RoundTripper) InterceptorOption {
	return func(i *Interceptor) { i.native = rt }
}

// NewInterceptor creates an interceptor.
func NewInterceptor(m *RequestMarshaller, bridge port.NetworkBridge, cfg InterceptorConfig, opts ...InterceptorOption) *Interceptor {
	i := &Interceptor{
		marshaller: m,
		bridge:     bridge,
		native:     http.DefaultTransport,
		prefix:     cfg.APIPrefix,
		internal:   cfg.InternalSchemes,
	}
	if i.prefix == "" {
		i.prefix = DefaultAPIPrefix
	}
	if i.internal == nil {
		i.internal = DefaultInternalSchemes
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Install swaps client's transport for the interceptor, keeping the old one
// for passthrough.
func (i *Interceptor) Install(client *http.Client) {
	if client.Transport != nil {
		i.native = client.Transport
	}
	client.Transport = i
}

// Matches reports whether rawURL is routed through the bridge.
func (i *Interceptor) Matches(rawURL string) bool {
	resolved := i.marshaller.ResolveURL(rawURL)
	for _, scheme := range i.internal {
		if strings.HasPrefix(resolved, scheme) {
			return false
		}
	}
	return strings.Contains(resolved, i.prefix)
}

// Fetch is the promise-style entry point.
func (i *Interceptor) Fetch(ctx context.Context, call Call) (*PageResponse, error) {
	if !i.Matches(call.URL) {
		return i.fetchNative(ctx, call)
	}
	return i.proxy(ctx, call)
}

// RoundTrip implements http.RoundTripper. Unmatched requests go to the
// original transport as-is, so streaming bodies are preserved.
func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	if !i.Matches(req.URL.String()) {
		return i.native.RoundTrip(req)
	}

	ctx := req.Context()
	call := Call{
		Method:  req.Method,
		URL:     req.URL.String(),
		Headers: req.Header,
	}
	if req.Body != nil && req.Body != http.NoBody {
		defer req.Body.Close()
		call.Body = requestBody(req)
	}

	resp, err := i.proxy(ctx, call)
	if err != nil {
		return nil, err
	}
	return toHTTPResponse(req, resp), nil
}

// NewRequest returns a callback-style request bound to this interceptor.
func (i *Interceptor) NewRequest() *CallbackRequest {
	return NewCallbackRequest(i.Fetch)
}

func (i *Interceptor) proxy(ctx context.Context, call Call) (*PageResponse, error) {
	log := logging.FromContext(ctx)

	rec := i.marshaller.ToRequestRecord(ctx, call)
	log.Debug().Str("method", rec.Method).Str("url", rec.URL).Msg("proxying request through bridge")

	result, err := i.bridge.ProxyRequest(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("proxy %s %s: %w", rec.Method, rec.URL, err)
	}
	if result == nil {
		return nil, fmt.Errorf("proxy %s %s: empty response", rec.Method, rec.URL)
	}

	if result.Status == http.StatusForbidden {
		log.Warn().Str("method", rec.Method).Str("url", rec.URL).Msg("bridge returned 403")
	}
	i.echo(ctx, rec, result)

	return i.marshaller.FromResponseRecord(ctx, result), nil
}

func (i *Interceptor) echo(ctx context.Context, rec *entity.RequestRecord, result *entity.ResponseRecord) {
	if i.sink == nil {
		return
	}
	info := result.Debug
	if info == nil {
		info = &entity.DebugInfo{
			RequestMethod:   rec.Method,
			RequestURL:      rec.URL,
			RequestHeaders:  rec.Headers,
			RequestBody:     rec.BodyText(),
			ResponseStatus:  result.Status,
			ResponseHeaders: result.Headers,
		}
	}
	i.sink.Record(ctx, info)
}

// fetchNative performs an unmatched Fetch through the original transport.
func (i *Interceptor) fetchNative(ctx context.Context, call Call) (*PageResponse, error) {
	rec := i.marshaller.ToRequestRecord(ctx, call)
	req, err := newHTTPRequest(ctx, rec)
	if err != nil {
		return nil, err
	}
	resp, err := i.native.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	headers := entity.Headers{}
	for k, values := range resp.Header {
		headers.Set(k, strings.Join(values, ", "))
	}
	return &PageResponse{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Headers:    headers,
		Body:       body,
	}, nil
}

// requestBody picks the Call body for an outgoing Go request.
func requestBody(req *http.Request) any {
	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err == nil && mediaType == "multipart/form-data" && params["boundary"] != "" {
		return MultipartPayload{Reader: multipart.NewReader(req.Body, params["boundary"])}
	}
	return req.Body
}

func newHTTPRequest(ctx context.Context, rec *entity.RequestRecord) (*http.Request, error) {
	var body io.Reader
	contentType := ""

	switch b := rec.Body.(type) {
	case entity.TextBody:
		body = strings.NewReader(b.Text)
	case entity.MultipartBody:
		buf, ct, err := encodeMultipart(b)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case entity.NoBody, nil:
	}

	req, err := http.NewRequestWithContext(ctx, rec.Method, rec.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range rec.Headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func encodeMultipart(b entity.MultipartBody) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range b.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}
	for _, f := range b.Files {
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			return nil, "", fmt.Errorf("decode file %s: %w", f.FileName, err)
		}
		part, err := w.CreateFormFile(f.FieldName, f.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file %s: %w", f.FileName, err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, "", fmt.Errorf("write file %s: %w", f.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func toHTTPResponse(req *http.Request, resp *PageResponse) *http.Response {
	header := http.Header{}
	for k, v := range resp.Headers {
		header.Set(k, v)
	}
	return &http.Response{
		Status:        strconv.Itoa(resp.Status) + " " + resp.StatusText,
		StatusCode:    resp.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}
}
