// Package submission sends a validated employee record to the intake
// endpoint and reduces the response to a success/failure Outcome.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/employee-intake/intake-service/internal/core/domain"
)

// Messages shown to the user for outcomes the server did not describe.
const (
	MsgSuccess         = "Registration Successful!"
	MsgSubmissionError = "Error in submission."
	MsgTransportError  = "An error occurred. Please try again."
)

const (
	addEmployeePath  = "/addEmployee"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// Outcome is the binary result of one submission attempt.
type Outcome struct {
	Success bool
	Message string
	// StatusCode is zero when no response was received.
	StatusCode int
}

// Client issues exactly one write request per Submit call. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient returns a Client for the intake server at baseURL.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// Submit posts the seven attributes of e as JSON to /addEmployee.
func (c *Client) Submit(ctx context.Context, e domain.Employee) Outcome {
	resp, err := c.post(ctx, e)
	if err != nil {
		c.log.Debug().Err(err).Str("employee_id", e.EmployeeID).Msg("error submitting form")
		return Outcome{Message: MsgTransportError}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return Outcome{Success: true, Message: MsgSuccess, StatusCode: resp.StatusCode}
	}

	msg := MsgSubmissionError
	var body messageBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}
	c.log.Debug().Int("status", resp.StatusCode).Str("employee_id", e.EmployeeID).Msg("submission rejected")

	return Outcome{Message: msg, StatusCode: resp.StatusCode}
}

func (c *Client) post(ctx context.Context, e domain.Employee) (*http.Response, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal employee: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+addEmployeePath, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}
