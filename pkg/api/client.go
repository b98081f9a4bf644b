/*
 * Copyright 2025 Skotrack Devices Pvt. Ltd.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package api is the typed HTTP client for the Vmarg tracking backend. It is
// a thin wrapper: no retries, no backoff, one request per call. Errors are
// classified into the models taxonomy so callers can branch with errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/models"
)

const defaultRequestTimeout = 15 * time.Second

// Config holds backend connection settings.
type Config struct {
	BaseURL        string          `json:"base_url"`
	Token          string          `json:"token,omitempty"`
	RequestTimeout models.Duration `json:"request_timeout,omitempty"`
}

// Client calls the tracking backend REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger
}

// NewClient creates a backend client. The session token may be empty and set
// later via SetToken after a login flow.
func NewClient(cfg *Config, log logger.Logger) *Client {
	timeout := time.Duration(cfg.RequestTimeout)
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken replaces the session token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// deviceListResponse is the directory payload.
type deviceListResponse struct {
	Devices []struct {
		DeviceName string `json:"deviceName"`
		Nickname   string `json:"nickname"`
	} `json:"devices"`
}

// ListDevices fetches the devices registered to the logged-in user, in
// navigation order.
func (c *Client) ListDevices(ctx context.Context) ([]models.DeviceRef, error) {
	var resp deviceListResponse

	if err := c.doJSON(ctx, http.MethodGet, "/api/verify/devices", nil, &resp); err != nil {
		return nil, err
	}

	refs := make([]models.DeviceRef, 0, len(resp.Devices))

	for _, d := range resp.Devices {
		label := d.Nickname
		if label == "" {
			label = d.DeviceName
		}

		refs = append(refs, models.DeviceRef{ID: d.DeviceName, Label: label})
	}

	return refs, nil
}

// GetTelemetry fetches the latest realtime report for a device. A report
// without date/time fields is a valid answer meaning the device has never
// sent a fix.
func (c *Client) GetTelemetry(ctx context.Context, deviceID string) (*models.TelemetryReport, error) {
	var report models.TelemetryReport

	path := "/api/skotrack/realtime/" + url.PathEscape(deviceID)

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// GetGeofence fetches the geofence document for a device. The second return
// is false when no geofence is configured, which is not an error.
func (c *Client) GetGeofence(ctx context.Context, deviceID string) (*models.GeofenceRecord, bool, error) {
	var record models.GeofenceRecord

	path := "/api/geofencing/" + url.PathEscape(deviceID)

	err := c.doJSON(ctx, http.MethodGet, path, nil, &record)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}

		return nil, false, err
	}

	// The backend answers 200 with an empty document when nothing is
	// configured for the device.
	if record.ID == "" {
		return nil, false, nil
	}

	return &record, true, nil
}

// CreateGeofence configures a geofence centered on the given position.
func (c *Client) CreateGeofence(ctx context.Context, deviceID string, center models.Position) error {
	body := map[string]interface{}{
		"deviceName": deviceID,
		"latitude":   center.Lat,
		"longitude":  center.Lng,
	}

	return c.doJSON(ctx, http.MethodPost, "/api/device/geofencing", body, nil)
}

// DeleteGeofence removes the geofence configured for a device.
func (c *Client) DeleteGeofence(ctx context.Context, deviceID string) error {
	path := "/api/geofencing/" + url.PathEscape(deviceID)

	return c.doJSON(ctx, http.MethodDelete, path, map[string]interface{}{"deviceName": deviceID}, nil)
}

// UpdateGeofenceRadius sets the geofence radius in kilometers. Range
// validation is the caller's responsibility; the client only transports.
func (c *Client) UpdateGeofenceRadius(ctx context.Context, deviceID string, radiusKm float64) error {
	path := "/api/geofencing/" + url.PathEscape(deviceID) + "/" +
		strconv.FormatFloat(radiusKm, 'f', -1, 64)

	return c.doJSON(ctx, http.MethodPut, path, map[string]interface{}{"radius": radiusKm}, nil)
}

// DeleteDevice unregisters a device from the user's account.
func (c *Client) DeleteDevice(ctx context.Context, deviceID string) error {
	path := "/api/verify/device/" + url.PathEscape(deviceID)

	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON performs one request with the configured timeout, classifying
// transport and status failures into the models error taxonomy.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", models.ErrNetwork, method, path, err)
	}
	defer c.closeBody(resp)

	if err := classifyStatus(resp.StatusCode, method, path); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %w", models.ErrNetwork, method, path, err)
	}

	return nil
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil && c.log != nil {
		c.log.Warn().Err(err).Msg("Failed to close response body")
	}
}

// statusError distinguishes 404 from other failures so geofence lookups can
// normalize "not configured".
type statusError struct {
	code   int
	method string
	path   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s %s", e.code, e.method, e.path)
}

func classifyStatus(code int, method, path string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d from %s %s", models.ErrAuth, code, method, path)
	default:
		return fmt.Errorf("%w: %w", models.ErrNetwork, &statusError{code: code, method: method, path: path})
	}
}

func isNotFound(err error) bool {
	var se *statusError

	if errors.As(err, &se) {
		return se.code == http.StatusNotFound
	}

	return false
}
