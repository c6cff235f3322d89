// Package bridge performs bridged network calls over HTTP.
package bridge

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// Config configures an HTTPBridge.
type Config struct {
	// BaseURL replaces the scheme and host of bridged URLs. Empty sends
	// requests to the URL as recorded.
	BaseURL string
	Timeout time.Duration
	// RateLimit is requests per second; 0 disables limiting.
	RateLimit float64
	RateBurst int
	// SkipHeaderPrefix marks page headers that are never forwarded.
	SkipHeaderPrefix string
	// EnvInfoPath is requested by EnvInfo.
	EnvInfoPath string
	// DebugEcho attaches the full request and response to every result.
	DebugEcho bool
}

// Option customizes an HTTPBridge.
type Option func(*HTTPBridge)

// WithSigner signs every bridged request.
func WithSigner(s *Signer) Option {
	return func(b *HTTPBridge) {
		b.signer = s
	}
}

// HTTPBridge implements port.NetworkBridge and port.EnvironmentInfo.
type HTTPBridge struct {
	client  *resty.Client
	limiter *rate.Limiter
	signer  *Signer
	cfg     Config
}

// NewHTTPBridge creates a bridge from cfg.
func NewHTTPBridge(cfg Config, opts ...Option) *HTTPBridge {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "tabshell-bridge/1.0")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	b := &HTTPBridge{
		client:  client,
		limiter: limiter,
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ProxyRequest sends record and returns the backend's response. HTTP error
// statuses are results, not errors.
func (b *HTTPBridge) ProxyRequest(ctx context.Context, record *entity.RequestRecord) (*entity.ResponseRecord, error) {
	log := logging.FromContext(ctx)

	target, err := b.targetURL(record.URL)
	if err != nil {
		return nil, err
	}

	req, err := b.request(ctx)
	if err != nil {
		return nil, err
	}

	sent := b.forwardHeaders(req, record.Headers)
	if b.signer != nil {
		signed, err := b.signer.Sign(target)
		if err != nil {
			return nil, err
		}
		for k, v := range signed {
			req.SetHeader(k, v)
			sent[k] = v
		}
	}

	if err := setBody(req, record.Body); err != nil {
		return nil, err
	}

	log.Debug().Str("method", record.Method).Str("url", target).Msg("bridging request")

	resp, err := req.Execute(record.Method, target)
	if err != nil {
		return nil, fmt.Errorf("bridge %s %s: %w", record.Method, target, err)
	}

	result := &entity.ResponseRecord{
		Status:  resp.StatusCode(),
		Headers: flattenHeaders(resp.Header()),
	}
	body := resp.Body()
	if isTextual(result.Headers.Get("Content-Type"), body) {
		result.Body = string(body)
	} else {
		result.Body = base64.StdEncoding.EncodeToString(body)
		result.IsBinary = true
	}

	if b.cfg.DebugEcho {
		result.Debug = &entity.DebugInfo{
			RequestMethod:   record.Method,
			RequestURL:      target,
			RequestHeaders:  sent,
			RequestBody:     record.BodyText(),
			ResponseStatus:  result.Status,
			ResponseHeaders: result.Headers.Clone(),
		}
	}
	return result, nil
}

// EnvInfo fetches the environment description string from the backend.
func (b *HTTPBridge) EnvInfo(ctx context.Context) (string, error) {
	if b.cfg.BaseURL == "" {
		return "", fmt.Errorf("env info: no bridge base URL configured")
	}

	req, err := b.request(ctx)
	if err != nil {
		return "", err
	}
	resp, err := req.Get(strings.TrimRight(b.cfg.BaseURL, "/") + "/" + strings.TrimLeft(b.cfg.EnvInfoPath, "/"))
	if err != nil {
		return "", fmt.Errorf("env info: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("env info: backend returned %d", resp.StatusCode())
	}
	return strings.TrimSpace(resp.String()), nil
}

func (b *HTTPBridge) request(ctx context.Context) (*resty.Request, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}
	return b.client.R().SetContext(ctx), nil
}

// targetURL rewrites rawURL onto the configured base URL.
func (b *HTTPBridge) targetURL(rawURL string) (string, error) {
	if b.cfg.BaseURL == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("bridge: invalid url %q: %w", rawURL, err)
	}
	base, err := url.Parse(b.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("bridge: invalid base url %q: %w", b.cfg.BaseURL, err)
	}
	u.Scheme = base.Scheme
	u.Host = base.Host
	u.User = base.User
	return u.String(), nil
}

// forwardHeaders copies page headers onto req, dropping the skip prefix.
// It returns what was sent.
func (b *HTTPBridge) forwardHeaders(req *resty.Request, headers entity.Headers) entity.Headers {
	sent := entity.Headers{}
	prefix := strings.ToLower(b.cfg.SkipHeaderPrefix)
	for k, v := range headers {
		if prefix != "" && strings.HasPrefix(strings.ToLower(k), prefix) {
			continue
		}
		req.SetHeader(k, v)
		sent[k] = v
	}
	return sent
}

func setBody(req *resty.Request, body entity.Body) error {
	switch b := body.(type) {
	case entity.TextBody:
		req.SetBody(b.Text)
	case entity.MultipartBody:
		if len(b.Fields) == 0 && len(b.Files) == 0 {
			// Forces multipart encoding with no parts.
			req.SetMultipartFormData(map[string]string{})
		}
		parts := make([]*resty.MultipartField, 0, len(b.Fields)+len(b.Files))
		for _, f := range b.Fields {
			parts = append(parts, &resty.MultipartField{
				Param:  f.Name,
				Reader: strings.NewReader(f.Value),
			})
		}
		for _, f := range b.Files {
			data, err := base64.StdEncoding.DecodeString(f.Data)
			if err != nil {
				return fmt.Errorf("decode file %q: %w", f.FileName, err)
			}
			contentType := f.ContentType
			if contentType == "" {
				contentType = entity.DefaultFileContentType
			}
			parts = append(parts, &resty.MultipartField{
				Param:       f.FieldName,
				FileName:    f.FileName,
				ContentType: contentType,
				Reader:      bytes.NewReader(data),
			})
		}
		req.SetMultipartFields(parts...)
	case entity.NoBody, nil:
	}
	return nil
}

func flattenHeaders(h map[string][]string) entity.Headers {
	out := make(entity.Headers, len(h))
	for k, v := range h {
		out[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return out
}

// isTextual reports whether body can travel as a string. The declared
// content type wins; otherwise the bytes are sniffed.
func isTextual(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "text/"),
		strings.Contains(ct, "json"),
		strings.Contains(ct, "xml"),
		strings.Contains(ct, "javascript"),
		strings.Contains(ct, "x-www-form-urlencoded"):
		return true
	case ct != "" && !strings.HasPrefix(ct, "application/octet-stream"):
		return false
	}

	for m := mimetype.Detect(body); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

var (
	_ port.NetworkBridge   = (*HTTPBridge)(nil)
	_ port.EnvironmentInfo = (*HTTPBridge)(nil)
)
