package entity

// Body is the payload of a RequestRecord: exactly one of TextBody,
// MultipartBody or NoBody.
type Body interface {
	isBody()
}

// TextBody is a body passed to the transport as-is.
type TextBody struct {
	Text string
}

// MultipartBody is a form payload; the transport builds the multipart encoding.
type MultipartBody struct {
	Fields []FormField
	Files  []FileDescriptor
}

// NoBody marks a request without payload.
type NoBody struct{}

func (TextBody) isBody()      {}
func (MultipartBody) isBody() {}
func (NoBody) isBody()        {}

// FormField is a non-file form entry.
type FormField struct {
	Name  string
	Value string
}

// FileDescriptor is a file form entry with base64 content.
type FileDescriptor struct {
	FieldName   string `json:"field_name"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        string `json:"data"`
}

// DefaultFileContentType applies to file entries that carry no type.
const DefaultFileContentType = "application/octet-stream"

// RequestRecord is a transport-agnostic network call.
type RequestRecord struct {
	Method  string
	URL     string
	Headers Headers
	Body    Body
}

// WireRequest is the JSON shape of a RequestRecord.
type WireRequest struct {
	Method   string           `json:"method"`
	URL      string           `json:"url"`
	Headers  Headers          `json:"headers"`
	Body     *string          `json:"body,omitempty"`
	FormData [][2]string      `json:"form_data,omitempty"`
	Files    []FileDescriptor `json:"files,omitempty"`
}

// Wire converts the record into its JSON shape.
func (r *RequestRecord) Wire() WireRequest {
	w := WireRequest{
		Method:  r.Method,
		URL:     r.URL,
		Headers: r.Headers,
	}
	if w.Headers == nil {
		w.Headers = Headers{}
	}
	switch b := r.Body.(type) {
	case TextBody:
		text := b.Text
		w.Body = &text
	case MultipartBody:
		w.FormData = make([][2]string, len(b.Fields))
		for i, f := range b.Fields {
			w.FormData[i] = [2]string{f.Name, f.Value}
		}
		w.Files = b.Files
	case NoBody, nil:
	}
	return w
}

// BodyText returns the text body, or "" for other body kinds.
func (r *RequestRecord) BodyText() string {
	if b, ok := r.Body.(TextBody); ok {
		return b.Text
	}
	return ""
}
