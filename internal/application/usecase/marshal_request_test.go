package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://app.internal"

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestToRequestRecord_MethodAndURL(t *testing.T) {
	m := NewRequestMarshaller(testOrigin)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       Call
		wantMethod string
		wantURL    string
	}{
		{name: "defaults to GET", call: Call{URL: "/base_api/users"}, wantMethod: "GET", wantURL: testOrigin + "/base_api/users"},
		{name: "uppercases", call: Call{Method: "post", URL: "/base_api/users"}, wantMethod: "POST", wantURL: testOrigin + "/base_api/users"},
		{name: "absolute kept", call: Call{Method: "Delete", URL: "https://other.host/base_api/x"}, wantMethod: "DELETE", wantURL: "https://other.host/base_api/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := m.ToRequestRecord(ctx, tt.call)
			assert.Equal(t, tt.wantMethod, rec.Method)
			assert.Equal(t, tt.wantURL, rec.URL)
			assert.IsType(t, entity.NoBody{}, rec.Body)
		})
	}
}

func TestToRequestRecord_HeaderSources(t *testing.T) {
	m := NewRequestMarshaller(testOrigin)
	ctx := context.Background()

	tests := []struct {
		name    string
		headers any
		want    entity.Headers
	}{
		{name: "nil", headers: nil, want: entity.Headers{}},
		{name: "map", headers: HeaderMap{"X-Token": "a"}, want: entity.Headers{"X-Token": "a"}},
		{name: "plain map", headers: map[string]string{"accept": "json"}, want: entity.Headers{"accept": "json"}},
		{
			name:    "pairs last wins across case",
			headers: HeaderPairs{{"x-id", "1"}, {"X-Id", "2"}},
			want:    entity.Headers{"X-Id": "2"},
		},
		{
			name:    "http header collection",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    entity.Headers{"Accept": "application/json"},
		},
		{name: "unsupported ignored", headers: 42, want: entity.Headers{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := m.ToRequestRecord(ctx, Call{URL: "/base_api/x", Headers: tt.headers})
			assert.Equal(t, tt.want, rec.Headers)
		})
	}
}

func TestToRequestRecord_BodyPolicy(t *testing.T) {
	m := NewRequestMarshaller(testOrigin)
	ctx := context.Background()

	t.Run("text passes through", func(t *testing.T) {
		rec := m.ToRequestRecord(ctx, Call{Method: "POST", URL: "/base_api/x", Body: `{"raw":true}`})
		assert.Equal(t, entity.TextBody{Text: `{"raw":true}`}, rec.Body)
	})

	t.Run("bytes pass through", func(t *testing.T) {
		rec := m.ToRequestRecord(ctx, Call{Method: "POST", URL: "/base_api/x", Body: []byte("abc")})
		assert.Equal(t, entity.TextBody{Text: "abc"}, rec.Body)
	})

	t.Run("objects become JSON", func(t *testing.T) {
		rec := m.ToRequestRecord(ctx, Call{Method: "POST", URL: "/base_api/x", Body: map[string]int{"n": 1}})
		assert.Equal(t, entity.TextBody{Text: `{"n":1}`}, rec.Body)
	})

	t.Run("unencodable body omitted", func(t *testing.T) {
		rec := m.ToRequestRecord(ctx, Call{Method: "POST", URL: "/base_api/x", Body: make(chan int)})
		assert.Equal(t, entity.NoBody{}, rec.Body)
	})

	t.Run("unreadable reader omitted", func(t *testing.T) {
		rec := m.ToRequestRecord(ctx, Call{Method: "POST", URL: "/base_api/x", Body: failingReader{}})
		assert.Equal(t, entity.NoBody{}, rec.Body)
	})

	t.Run("text body keeps content type", func(t *testing.T) {
		rec := m.ToRequestRecord(ctx, Call{
			Method: "POST", URL: "/base_api/x", Body: "a=1",
			Headers: HeaderMap{"Content-Type": "application/x-www-form-urlencoded"},
		})
		assert.Equal(t, "application/x-www-form-urlencoded", rec.Headers.Get("content-type"))
	})
}

func TestToRequestRecord_FormPayload(t *testing.T) {
	m := NewRequestMarshaller(testOrigin)
	ctx := context.Background()

	form := FormEntries{
		{Name: "name", Value: "value"},
		{Name: "doc", File: &FormFile{FileName: "a.bin", Content: bytes.NewReader([]byte{0, 1, 2})}},
		{Name: "broken", File: &FormFile{FileName: "b.bin", Content: failingReader{}}},
		{Name: "note", File: &FormFile{FileName: "n.txt", ContentType: "text/plain", Content: strings.NewReader("hi")}},
		{Name: "after", Value: "kept"},
	}

	rec := m.ToRequestRecord(ctx, Call{
		Method:  "POST",
		URL:     "/base_api/upload",
		Headers: HeaderPairs{{"content-type", "multipart/form-data; boundary=x"}, {"X-Keep", "1"}},
		Body:    form,
	})

	body, ok := rec.Body.(entity.MultipartBody)
	require.True(t, ok)
	assert.Equal(t, []entity.FormField{{Name: "name", Value: "value"}, {Name: "after", Value: "kept"}}, body.Fields)
	require.Len(t, body.Files, 2, "unreadable file is omitted")
	assert.Equal(t, entity.FileDescriptor{
		FieldName: "doc", FileName: "a.bin", ContentType: entity.DefaultFileContentType,
		Data: base64.StdEncoding.EncodeToString([]byte{0, 1, 2}),
	}, body.Files[0])
	assert.Equal(t, "text/plain", body.Files[1].ContentType)
	assert.False(t, rec.Headers.Has("Content-Type"))
	assert.Equal(t, "1", rec.Headers.Get("X-Keep"))
}

func TestToRequestRecord_MultipartStream(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "value"))
	fw, err := w.CreateFormFile("file", "report.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("a,b\n1,2\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	m := NewRequestMarshaller(testOrigin)
	rec := m.ToRequestRecord(context.Background(), Call{
		Method:  "POST",
		URL:     "/base_api/upload",
		Headers: http.Header{"Content-Type": {w.FormDataContentType()}},
		Body:    MultipartPayload{Reader: multipart.NewReader(&buf, w.Boundary())},
	})

	wire, err := json.Marshal(rec.Wire())
	require.NoError(t, err)

	var decoded struct {
		Headers  map[string]string   `json:"headers"`
		FormData [][2]string         `json:"form_data"`
		Files    []map[string]string `json:"files"`
	}
	require.NoError(t, json.Unmarshal(wire, &decoded))
	assert.Equal(t, [][2]string{{"name", "value"}}, decoded.FormData)
	require.Len(t, decoded.Files, 1)
	assert.NotEmpty(t, decoded.Files[0]["data"])
	assert.Equal(t, "report.csv", decoded.Files[0]["file_name"])
	assert.NotContains(t, decoded.Headers, "Content-Type")
}

func TestFromResponseRecord(t *testing.T) {
	m := NewRequestMarshaller(testOrigin)
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		resp := m.FromResponseRecord(ctx, &entity.ResponseRecord{Status: 200, Body: "hello"})
		assert.Equal(t, "OK", resp.StatusText)
		assert.Equal(t, "hello", resp.Text())
		assert.NotNil(t, resp.Headers)
	})

	t.Run("binary decoded", func(t *testing.T) {
		resp := m.FromResponseRecord(ctx, &entity.ResponseRecord{
			Status: 201, IsBinary: true, Body: base64.StdEncoding.EncodeToString([]byte{0xff, 0x00}),
		})
		assert.Equal(t, "Error", resp.StatusText, "only 200 reads OK")
		assert.Equal(t, []byte{0xff, 0x00}, resp.Body)
		assert.True(t, resp.OK())
	})

	t.Run("bad base64 yields empty body", func(t *testing.T) {
		resp := m.FromResponseRecord(ctx, &entity.ResponseRecord{Status: 500, IsBinary: true, Body: "***"})
		assert.Empty(t, resp.Body)
		assert.False(t, resp.OK())
	})
}

func TestMultipartPayload_StopsOnBrokenStream(t *testing.T) {
	payload := MultipartPayload{Reader: multipart.NewReader(io.MultiReader(strings.NewReader("--b\r\nbroken")), "b")}
	rec := NewRequestMarshaller(testOrigin).ToRequestRecord(context.Background(), Call{Method: "POST", URL: "/base_api/u", Body: payload})

	body, ok := rec.Body.(entity.MultipartBody)
	require.True(t, ok)
	assert.Empty(t, body.Fields)
	assert.Empty(t, body.Files)
}
