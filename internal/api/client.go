package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hauskeep/dispatch/internal/logger"
	"github.com/hauskeep/dispatch/internal/models"
)

// Client talks to the hauskeep booking backend. All payloads are JSON over
// HTTP with a bearer token; every request carries a generated X-Request-ID
// so failures can be correlated with backend logs.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for baseURL authenticating with token.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// UnassignedJobs fetches the jobs with no cleaner and no slot.
func (c *Client) UnassignedJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.do(ctx, http.MethodGet, "/unassigned-jobs", nil, &jobs); err != nil {
		return nil, fmt.Errorf("fetching unassigned jobs: %w", err)
	}
	return jobs, nil
}

// AvailabilitySummary fetches the per-cleaner slot availability for date
// (YYYY-MM-DD).
func (c *Client) AvailabilitySummary(ctx context.Context, date string) ([]models.CleanerAvailability, error) {
	var summary []models.CleanerAvailability
	path := "/availability-summary?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, fmt.Errorf("fetching availability for %s: %w", date, err)
	}
	return summary, nil
}

// AssignJob assigns an unassigned job to a cleaner and slot. The result may
// carry a soft warning even on success.
func (c *Client) AssignJob(ctx context.Context, req AssignRequest) (CommandResult, error) {
	var result CommandResult
	if err := c.do(ctx, http.MethodPost, "/assign-job", req, &result); err != nil {
		return CommandResult{}, fmt.Errorf("assigning job %s: %w", req.JobID, err)
	}
	return result, nil
}

// UpdateBooking moves a placed booking to a new cleaner/slot.
func (c *Client) UpdateBooking(ctx context.Context, jobID string, req MoveRequest) (CommandResult, error) {
	var result CommandResult
	path := "/bookings/" + url.PathEscape(jobID)
	if err := c.do(ctx, http.MethodPatch, path, req, &result); err != nil {
		return CommandResult{}, fmt.Errorf("moving booking %s: %w", jobID, err)
	}
	return result, nil
}

// DeleteBooking removes a booking entirely. Irreversible; callers gate this
// behind an explicit operator confirmation.
func (c *Client) DeleteBooking(ctx context.Context, jobID string) error {
	path := "/bookings/" + url.PathEscape(jobID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("deleting booking %s: %w", jobID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil {
			if failure.Message != "" {
				apiErr.Message = failure.Message
			} else {
				apiErr.Message = failure.Error
			}
		}
		logger.Warn("Backend request failed", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
