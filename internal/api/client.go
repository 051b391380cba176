package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/model"
)

// Endpoint constants
const (
	ConvertPath      = "/api/getColockLanguage"
	VoicePath        = "/api/generateVoice"
	ParamInputString = "input_string"
	ParamLineType    = "line_type"
)

// Operation names used in errors and logs
const (
	OpConvert = "getColockLanguage"
	OpVoice   = "generateVoice"
)

// HTTP constants
const (
	ContentTypeJSON   = "application/json"
	AcceptAudio       = "audio/wav, audio/*;q=0.9"
	MaxErrorBodyBytes = 64 << 10
)

// Client talks to the colock language service
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// NewClient creates a client for the service rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ConvertURL builds the conversion request URL. Both parameters are
// percent-encoded with encodeURIComponent semantics (space becomes %20).
func (c *Client) ConvertURL(req model.ConversionRequest) string {
	return fmt.Sprintf("%s%s?%s=%s&%s=%s",
		c.baseURL, ConvertPath,
		ParamInputString, encodeURIComponent(req.InputText),
		ParamLineType, encodeURIComponent(string(req.LineType)))
}

// GetColockLanguage issues the conversion GET and returns the result field
func (c *Client) GetColockLanguage(ctx context.Context, req model.ConversionRequest) (string, error) {
	endpoint := c.ConvertURL(req)
	c.logger.Debugf("Conversion request: %s", endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", model.NewError(model.KindTransport, OpConvert, "", fmt.Errorf("failed to build request: %w", err))
	}
	httpReq.Header.Set("Accept", ContentTypeJSON)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", model.NewError(model.KindTransport, OpConvert, "", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		body, _ := readLimited(resp.Body)
		return "", model.NewError(model.KindStatus, OpConvert, "",
			fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body)))).WithStatusCode(resp.StatusCode)
	}

	var payload struct {
		Result *string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", model.NewError(model.KindPayload, OpConvert, "", fmt.Errorf("failed to decode response: %w", err))
	}
	if payload.Result == nil {
		return "", model.NewError(model.KindPayload, OpConvert, "", fmt.Errorf("response has no result field"))
	}

	return *payload.Result, nil
}

// GenerateVoice posts the text and returns the audio payload.
// The payload size is not validated here; callers apply their own threshold.
func (c *Client) GenerateVoice(ctx context.Context, req model.VoiceRequest) (*model.AudioAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, model.NewError(model.KindTransport, OpVoice, "", fmt.Errorf("failed to encode request: %w", err))
	}

	endpoint := c.baseURL + VoicePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, model.NewError(model.KindTransport, OpVoice, "", fmt.Errorf("failed to build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", ContentTypeJSON)
	httpReq.Header.Set("Accept", AcceptAudio)

	started := time.Now()
	c.logger.Debugf("Voice request: %s (%d chars)", endpoint, len([]rune(req.Text)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, model.NewError(model.KindTransport, OpVoice, "", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		message := extractErrorMessage(resp)
		return nil, model.NewError(model.KindStatus, OpVoice, message, nil).WithStatusCode(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.NewError(model.KindTransport, OpVoice, "", fmt.Errorf("failed to read audio: %w", err))
	}

	c.logger.Infof("Voice generated: %s in %v", humanize.Bytes(uint64(len(data))), time.Since(started).Round(time.Millisecond))

	return &model.AudioAsset{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// extractErrorMessage reads a human-readable message from a failed response.
// JSON bodies yield their error field; any other content type is read as text.
func extractErrorMessage(resp *http.Response) string {
	body, err := readLimited(resp.Body)
	if err != nil && len(body) == 0 {
		return ""
	}

	if isJSONContentType(resp.Header.Get("Content-Type")) {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		return strings.TrimSpace(payload.Error)
	}

	return strings.TrimSpace(string(body))
}

func isJSONContentType(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == ContentTypeJSON || strings.HasSuffix(mediaType, "+json")
}

func readLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, MaxErrorBodyBytes))
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// encodeURIComponent escapes s for use as a query component, with spaces as %20
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
