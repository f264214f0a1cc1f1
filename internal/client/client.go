// Package client talks to the bill-splitting backend over HTTP.
//
// The backend owns the authoritative computations: receipt parsing and
// both split strategies. Everything computed locally is a preview; the
// result stored for the results screen is always the backend's answer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tabsplit/tabsplit/internal/models"
)

const (
	parseBillPath   = "/parse-bill"
	splitEqualPath  = "/split-equal"
	splitByItemPath = "/split-by-item"
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Code, e.Body)
}

// extraImageTypes covers receipt formats the platform mime tables often
// lack. The backend only accepts image/* parts, so HEIC photos straight
// off a phone must not fall back to application/octet-stream.
var extraImageTypes = map[string]string{
	".heic": "image/heic",
	".heif": "image/heif",
	".webp": "image/webp",
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ctype := mime.TypeByExtension(ext); ctype != "" {
		return ctype
	}
	if ctype, ok := extraImageTypes[ext]; ok {
		return ctype
	}
	return "application/octet-stream"
}

// Client is an HTTP client for the three backend endpoints. Every call
// takes a context and is bounded by the configured timeout, so a hung
// backend cannot leave the wizard loading forever.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
}

// New returns a client for the backend at baseURL. timeout bounds each
// call; zero means no bound beyond the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		timeout: timeout,
	}
}

// ParseBill uploads a receipt image and returns the parsed items and tax.
// filename is used only to derive the part's content type.
func (c *Client) ParseBill(ctx context.Context, filename string, image io.Reader) (models.ParsedBill, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	ctype := contentTypeFor(filename)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(filename)))
	header.Set("Content-Type", ctype)

	part, err := mw.CreatePart(header)
	if err != nil {
		return models.ParsedBill{}, fmt.Errorf("parse-bill: create part: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return models.ParsedBill{}, fmt.Errorf("parse-bill: read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return models.ParsedBill{}, fmt.Errorf("parse-bill: finalize form: %w", err)
	}

	var parsed models.ParsedBill
	if err := c.post(ctx, "parse-bill", parseBillPath, mw.FormDataContentType(), &body, &parsed); err != nil {
		return models.ParsedBill{}, err
	}
	return parsed, nil
}

// SplitEqual submits an equal split and returns the backend's breakdown.
func (c *Client) SplitEqual(ctx context.Context, req models.EqualSplitRequest) (models.SplitResult, error) {
	if req.SplitType == "" {
		req.SplitType = models.SplitTypeEqual
	}
	return c.postSplit(ctx, "split-equal", splitEqualPath, req)
}

// SplitByItem submits a per-item split and returns the backend's breakdown.
func (c *Client) SplitByItem(ctx context.Context, req models.ItemSplitRequest) (models.SplitResult, error) {
	return c.postSplit(ctx, "split-by-item", splitByItemPath, req)
}

func (c *Client) postSplit(ctx context.Context, op, path string, payload any) (models.SplitResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.SplitResult{}, fmt.Errorf("%s: encode request: %w", op, err)
	}
	var result models.SplitResult
	if err := c.post(ctx, op, path, "application/json", bytes.NewReader(body), &result); err != nil {
		return models.SplitResult{}, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, op, path, contentType string, body io.Reader, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		slog.Warn("Backend call failed",
			"op", op,
			"request_id", requestID,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		slog.Warn("Backend call rejected",
			"op", op,
			"request_id", requestID,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return &StatusError{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	slog.Debug("Backend call ok",
		"op", op,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
