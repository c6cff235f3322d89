package entity

// ResponseRecord is the transport's answer to a RequestRecord.
type ResponseRecord struct {
	Status   int        `json:"status"`
	Headers  Headers    `json:"headers"`
	Body     string     `json:"body"`
	IsBinary bool       `json:"is_binary"` // Body is base64 when set
	Debug    *DebugInfo `json:"debug_info,omitempty"`
}

// DebugInfo echoes one exchange for diagnostics.
type DebugInfo struct {
	RequestMethod   string  `json:"request_method"`
	RequestURL      string  `json:"request_url"`
	RequestHeaders  Headers `json:"request_headers"`
	RequestBody     string  `json:"request_body,omitempty"`
	ResponseStatus  int     `json:"response_status"`
	ResponseHeaders Headers `json:"response_headers"`
}

// StatusText is the page-visible status text for status.
// Only 200 reads as "OK"; reason phrases are not derived.
func StatusText(status int) string {
	if status == 200 {
		return "OK"
	}
	return "Error"
}

// OK reports a 2xx status.
func (r *ResponseRecord) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
