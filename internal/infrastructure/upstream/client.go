// Package upstream implements ports.Gateway against the remote dashboard
// API. One request shape covers every endpoint: JSON by default, multipart
// when a file is attached, binary response mode for downloads. The bearer
// token is attached when present and omitted otherwise; requests without a
// token still go out and the backend decides. No retry, no caching.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dibuiltadi/dashboard-web/internal/api/metrics"
	"github.com/dibuiltadi/dashboard-web/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Client issues authenticated HTTP requests to a fixed backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the given origin. A default timeout is
// applied when none is provided.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// multipartFile is a single file field of a multipart request.
type multipartFile struct {
	field       string
	filename    string
	contentType string
	content     io.Reader
}

// request carries everything one upstream call needs. Exactly one of body
// (JSON) or fields/file (multipart) may be set.
type request struct {
	method   string
	path     string
	endpoint string // metric label
	token    string
	query    url.Values
	body     any
	fields   map[string]string
	file     *multipartFile
	binary   bool
}

// response is the decoded-enough result of an upstream call. For binary
// requests Raw holds the body and Filename any attachment name the server
// suggested; otherwise Raw holds the JSON payload for the caller to decode.
type response struct {
	Raw      []byte
	Filename string
}

// do performs a single request. HTTP 4xx/5xx become *domain.UpstreamError
// carrying the server's message field when the body has one; transport
// failures are returned wrapped and otherwise untouched.
func (c *Client) do(ctx context.Context, req request) (*response, error) {
	start := time.Now()
	resp, err := c.send(ctx, req)
	metrics.UpstreamRequestDuration.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint, "ok").Inc()
	case isRejection(err):
		metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint, "rejected").Inc()
	default:
		metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint, "transport_error").Inc()
	}
	return resp, err
}

func isRejection(err error) bool {
	var ue *domain.UpstreamError
	return errors.As(err, &ue)
}

func (c *Client) send(ctx context.Context, req request) (*response, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.file != nil || req.fields != nil:
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for field, value := range req.fields {
			if err := mw.WriteField(field, value); err != nil {
				return nil, fmt.Errorf("upstream: encode field %s: %w", field, err)
			}
		}
		if f := req.file; f != nil {
			header := textproto.MIMEHeader{}
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
			if f.contentType != "" {
				header.Set("Content-Type", f.contentType)
			}
			part, err := mw.CreatePart(header)
			if err != nil {
				return nil, fmt.Errorf("upstream: create file part: %w", err)
			}
			if _, err := io.Copy(part, f.content); err != nil {
				return nil, fmt.Errorf("upstream: copy file: %w", err)
			}
		}
		if err := mw.Close(); err != nil {
			return nil, fmt.Errorf("upstream: finish multipart: %w", err)
		}
		body = buf
		contentType = mw.FormDataContentType()
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("upstream: encode body: %w", err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("upstream: %s %s: %w", req.method, req.path, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: read body: %w", err)
	}

	if httpResp.StatusCode >= 400 {
		c.log.Warn().
			Str("endpoint", req.endpoint).
			Int("status", httpResp.StatusCode).
			Msg("upstream rejected request")
		return nil, &domain.UpstreamError{
			StatusCode: httpResp.StatusCode,
			Message:    serverMessage(raw),
		}
	}

	res := &response{Raw: raw}
	if req.binary {
		res.Filename = attachmentName(httpResp.Header.Get("Content-Disposition"))
	}
	return res, nil
}

// decode unmarshals a JSON response body into out.
func decode(res *response, out any) error {
	if err := json.Unmarshal(res.Raw, out); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body.
// The backend uses "message"; "error" is accepted as a fallback.
func serverMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}

// attachmentName extracts the filename from a Content-Disposition header,
// empty when absent or malformed.
func attachmentName(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
