package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/bnema/tabshell/internal/domain/entity"
	domainurl "github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/logging"
)

// HeaderMap is an explicit header map supplied by a caller.
type HeaderMap map[string]string

// HeaderPairs is an ordered list of header name/value pairs.
type HeaderPairs [][2]string

// Call is a page network call before marshalling.
type Call struct {
	Method string
	URL    string
	// Headers is one of HeaderMap, map[string]string, HeaderPairs,
	// [][2]string, http.Header, entity.Headers or nil.
	Headers any
	// Body is one of string, []byte, json.RawMessage, io.Reader,
	// FormPayload, nil, or any value encodable as JSON.
	Body any
}

// FormEntry is one entry of a form payload: a text value or a file.
type FormEntry struct {
	Name  string
	Value string
	File  *FormFile
}

// FormFile is the file half of a FormEntry. Content is read once.
type FormFile struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// FormPayload is a structured form body enumerated in order.
type FormPayload interface {
	// Entries yields entries in order. A yielded error ends enumeration.
	Entries() iter.Seq2[FormEntry, error]
}

// FormEntries is an in-memory FormPayload.
type FormEntries []FormEntry

// Entries implements FormPayload.
func (f FormEntries) Entries() iter.Seq2[FormEntry, error] {
	return func(yield func(FormEntry, error) bool) {
		for _, e := range f {
			if !yield(e, nil) {
				return
			}
		}
	}
}

// MultipartPayload streams a multipart/form-data body part by part.
// Each file part is readable only until the next entry is requested.
type MultipartPayload struct {
	Reader *multipart.Reader
}

// Entries implements FormPayload.
func (m MultipartPayload) Entries() iter.Seq2[FormEntry, error] {
	return func(yield func(FormEntry, error) bool) {
		for {
			part, err := m.Reader.NextPart()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(FormEntry{}, err)
				return
			}
			entry := FormEntry{Name: part.FormName()}
			if part.FileName() != "" {
				entry.File = &FormFile{
					FileName:    part.FileName(),
					ContentType: part.Header.Get("Content-Type"),
					Content:     part,
				}
			} else {
				value, err := io.ReadAll(part)
				if err != nil {
					yield(FormEntry{}, err)
					return
				}
				entry.Value = string(value)
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// PageResponse is the response handed back to page code.
type PageResponse struct {
	Status     int
	StatusText string
	Headers    entity.Headers
	Body       []byte
	IsBinary   bool
}

// Text returns the body as a string.
func (r *PageResponse) Text() string {
	return string(r.Body)
}

// OK reports a 2xx status.
func (r *PageResponse) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// RequestMarshaller converts page calls to request records and bridge
// responses back to page responses. It never fails: malformed input is
// logged and dropped.
type RequestMarshaller struct {
	origin string
}

// NewRequestMarshaller creates a marshaller resolving relative URLs against origin.
func NewRequestMarshaller(origin string) *RequestMarshaller {
	return &RequestMarshaller{origin: origin}
}

// ResolveURL makes raw absolute against the configured origin.
func (m *RequestMarshaller) ResolveURL(raw string) string {
	return domainurl.Resolve(m.origin, raw)
}

// ToRequestRecord builds the transport-agnostic record for call.
func (m *RequestMarshaller) ToRequestRecord(ctx context.Context, call Call) *entity.RequestRecord {
	rec := &entity.RequestRecord{
		Method:  normalizeMethod(call.Method),
		URL:     m.ResolveURL(call.URL),
		Headers: normalizeHeaders(ctx, call.Headers),
	}
	rec.Body = buildBody(ctx, call.Body)
	if _, ok := rec.Body.(entity.MultipartBody); ok {
		// The transport picks its own boundary.
		rec.Headers.Del("Content-Type")
	}
	return rec
}

// FromResponseRecord converts a bridge response into the page-visible form.
func (*RequestMarshaller) FromResponseRecord(ctx context.Context, rec *entity.ResponseRecord) *PageResponse {
	resp := &PageResponse{
		Status:     rec.Status,
		StatusText: entity.StatusText(rec.Status),
		Headers:    rec.Headers,
		IsBinary:   rec.IsBinary,
	}
	if resp.Headers == nil {
		resp.Headers = entity.Headers{}
	}
	if !rec.IsBinary {
		resp.Body = []byte(rec.Body)
		return resp
	}
	data, err := base64.StdEncoding.DecodeString(rec.Body)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Int("status", rec.Status).Msg("binary response is not valid base64, returning empty body")
		resp.Body = []byte{}
		return resp
	}
	resp.Body = data
	return resp
}

func normalizeMethod(method string) string {
	method = strings.TrimSpace(method)
	if method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(method)
}

func normalizeHeaders(ctx context.Context, src any) entity.Headers {
	out := entity.Headers{}
	switch h := src.(type) {
	case nil:
	case HeaderMap:
		for k, v := range h {
			out.Set(k, v)
		}
	case map[string]string:
		for k, v := range h {
			out.Set(k, v)
		}
	case entity.Headers:
		for k, v := range h {
			out.Set(k, v)
		}
	case HeaderPairs:
		for _, p := range h {
			out.Set(p[0], p[1])
		}
	case [][2]string:
		for _, p := range h {
			out.Set(p[0], p[1])
		}
	case http.Header:
		for k, values := range h {
			if len(values) > 0 {
				out.Set(k, values[len(values)-1])
			}
		}
	default:
		logging.FromContext(ctx).Warn().Type("headers", src).Msg("unsupported header source ignored")
	}
	return out
}

// buildBody classifies the raw body once; everything downstream switches on entity.Body.
func buildBody(ctx context.Context, body any) entity.Body {
	log := logging.FromContext(ctx)

	switch b := body.(type) {
	case nil:
		return entity.NoBody{}
	case FormPayload:
		return buildMultipart(ctx, b)
	case string:
		return entity.TextBody{Text: b}
	case []byte:
		return entity.TextBody{Text: string(b)}
	case json.RawMessage:
		return entity.TextBody{Text: string(b)}
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			log.Warn().Err(err).Msg("failed to read request body, omitting it")
			return entity.NoBody{}
		}
		return entity.TextBody{Text: string(data)}
	default:
		data, err := json.Marshal(b)
		if err != nil {
			log.Warn().Err(err).Type("body", body).Msg("failed to encode request body as JSON, omitting it")
			return entity.NoBody{}
		}
		return entity.TextBody{Text: string(data)}
	}
}

// buildMultipart reads file entries one at a time, in order.
func buildMultipart(ctx context.Context, form FormPayload) entity.MultipartBody {
	log := logging.FromContext(ctx)
	out := entity.MultipartBody{
		Fields: []entity.FormField{},
		Files:  []entity.FileDescriptor{},
	}

	for entry, err := range form.Entries() {
		if err != nil {
			log.Warn().Err(err).Msg("form enumeration failed, keeping entries read so far")
			break
		}
		if entry.File == nil {
			out.Fields = append(out.Fields, entity.FormField{Name: entry.Name, Value: entry.Value})
			continue
		}
		data, err := readFile(entry.File)
		if err != nil {
			log.Warn().Err(err).Str("field", entry.Name).Str("file", entry.File.FileName).Msg("unreadable form file omitted")
			continue
		}
		contentType := entry.File.ContentType
		if contentType == "" {
			contentType = entity.DefaultFileContentType
		}
		out.Files = append(out.Files, entity.FileDescriptor{
			FieldName:   entry.Name,
			FileName:    entry.File.FileName,
			ContentType: contentType,
			Data:        base64.StdEncoding.EncodeToString(data),
		})
	}
	return out
}

func readFile(f *FormFile) ([]byte, error) {
	if f.Content == nil {
		return nil, errors.New("file has no content")
	}
	return io.ReadAll(f.Content)
}
