// internal/service/client.go

// HTTP client for the document question-answering service.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"compass/internal/config"
	"compass/internal/logger"
	"compass/internal/session"
)

// maxBodySize bounds how much of any response we read
const maxBodySize = 4 << 20

// UploadField is the multipart field name the service reads files from
const UploadField = "files"

// Client talks to the document service. It implements session.Service.
type Client struct {
	baseURL    string
	uploadPath string
	chatPath   string
	healthPath string
	httpClient *http.Client
}

var _ session.Service = (*Client)(nil)

// NewClient creates a client from the service section of the config
func NewClient(cfg config.ServiceConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		uploadPath: cfg.UploadPath,
		chatPath:   cfg.ChatPath,
		healthPath: cfg.HealthPath,
		httpClient: newHTTPClient(time.Duration(cfg.Timeout) * time.Second),
	}
}

// BaseURL returns the service root the client is pointed at
func (c *Client) BaseURL() string {
	return c.baseURL
}

type uploadResponse struct {
	Message string `json:"message"`
	Count   *int   `json:"count"`
}

// UploadDocuments sends all files as a single multipart batch.
func (c *Client) UploadDocuments(ctx context.Context, files []session.File) (int, error) {
	body, contentType, err := encodeBatch(files)
	if err != nil {
		return 0, &Error{Kind: KindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.uploadPath, body)
	if err != nil {
		return 0, &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	data, err := c.do(req, logrus.Fields{"files": len(files)})
	if err != nil {
		return 0, err
	}

	var resp uploadResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, &Error{Kind: KindMalformed, Err: err}
	}
	if resp.Count == nil {
		return 0, &Error{Kind: KindMalformed, Err: errors.New("missing document count")}
	}
	return *resp.Count, nil
}

// encodeBatch builds the multipart body, one part per file, in order.
func encodeBatch(files []session.File) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile(UploadField, f.Name)
		if err != nil {
			return nil, "", err
		}
		if err := copyFile(part, f.Path); err != nil {
			return nil, "", fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func copyFile(dst io.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(dst, src)
	return err
}

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Answer   *string  `json:"answer"`
	Response *string  `json:"response"` // older deployments
	Sources  []string `json:"sources"`
}

// Ask sends one question and returns the service's answer
func (c *Client) Ask(ctx context.Context, question string) (session.Answer, error) {
	payload, err := json.Marshal(askRequest{Query: question})
	if err != nil {
		return session.Answer{}, &Error{Kind: KindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.chatPath, bytes.NewReader(payload))
	if err != nil {
		return session.Answer{}, &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req, logrus.Fields{"question_len": len(question)})
	if err != nil {
		return session.Answer{}, err
	}

	var resp askResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return session.Answer{}, &Error{Kind: KindMalformed, Err: err}
	}

	switch {
	case resp.Answer != nil:
		return session.Answer{Text: *resp.Answer, Sources: resp.Sources}, nil
	case resp.Response != nil:
		return session.Answer{Text: *resp.Response, Sources: resp.Sources}, nil
	default:
		return session.Answer{}, &Error{Kind: KindMalformed, Err: errors.New("missing answer")}
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health checks the service health endpoint and returns its status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return "", &Error{Kind: KindTransport, Err: err}
	}

	data, err := c.do(req, nil)
	if err != nil {
		return "", err
	}

	var resp healthResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", &Error{Kind: KindMalformed, Err: err}
	}
	if resp.Status == "" {
		return "ok", nil
	}
	return resp.Status, nil
}

// do sends req and returns the body of a 2xx response. Every other outcome
// comes back as *Error.
func (c *Client) do(req *http.Request, fields logrus.Fields) ([]byte, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	entry := logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.URL.Path,
	}).WithFields(fields)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Warn("service request failed")
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	entry = entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("reading service response failed")
		return nil, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := parseDetail(data)
		entry.WithField("detail", detail).Warn("service rejected request")
		return nil, &Error{
			Kind:       KindRejection,
			StatusCode: resp.StatusCode,
			Detail:     detail,
			Err:        statusError(resp.StatusCode),
		}
	}

	entry.Info("service request completed")
	return data, nil
}
