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

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&Config{BaseURL: srv.URL, Token: "test-token"}, logger.NewTestLogger())
}

func TestListDevices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/verify/devices", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"devices": []map[string]string{
				{"deviceName": "tracker-1", "nickname": "Dad's car"},
				{"deviceName": "tracker-2"},
			},
		})
	})

	refs, err := client.ListDevices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.DeviceRef{
		{ID: "tracker-1", Label: "Dad's car"},
		{ID: "tracker-2", Label: "tracker-2"},
	}, refs)
}

func TestGetTelemetry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/skotrack/realtime/tracker-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"deviceName": "tracker-1",
			"latitude":   "12.9",
			"longitude":  "77.6",
			"date":       "2024-01-01",
			"time":       "10:00:00",
			"GPS":        "fixed",
			"battery":    "82",
		})
	})

	report, err := client.GetTelemetry(context.Background(), "tracker-1")
	require.NoError(t, err)

	assert.True(t, report.HasFix())
	assert.Equal(t, "12.9", report.Latitude)
	assert.Equal(t, "77.6", report.Longitude)
	assert.Equal(t, "82", report.Battery)
}

func TestGetTelemetryNoFix(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"deviceName": "tracker-1"})
	})

	report, err := client.GetTelemetry(context.Background(), "tracker-1")
	require.NoError(t, err)
	assert.False(t, report.HasFix())
}

func TestGetGeofence(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        interface{}
		expectFound bool
		expectError bool
	}{
		{
			name:   "configured",
			status: http.StatusOK,
			body: map[string]interface{}{
				"_id": "abc123", "deviceName": "tracker-1",
				"latitude": 12.9, "longitude": 77.6, "radius": 2.5,
			},
			expectFound: true,
		},
		{
			name:        "empty document means none configured",
			status:      http.StatusOK,
			body:        map[string]interface{}{},
			expectFound: false,
		},
		{
			name:        "404 means none configured",
			status:      http.StatusNotFound,
			body:        nil,
			expectFound: false,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)

				if tt.body != nil {
					_ = json.NewEncoder(w).Encode(tt.body)
				}
			})

			record, found, err := client.GetGeofence(context.Background(), "tracker-1")

			if tt.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, models.ErrNetwork)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectFound, found)

			if tt.expectFound {
				require.NotNil(t, record)
				assert.InDelta(t, 2.5, record.RadiusKm, 0.0001)
			}
		})
	}
}

func TestUpdateGeofenceRadiusPath(t *testing.T) {
	var gotPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateGeofenceRadius(context.Background(), "tracker-1", 2.5))
	assert.Equal(t, "/api/geofencing/tracker-1/2.5", gotPath)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, sentinel: models.ErrAuth},
		{name: "forbidden", status: http.StatusForbidden, sentinel: models.ErrAuth},
		{name: "server error", status: http.StatusInternalServerError, sentinel: models.ErrNetwork},
		{name: "bad gateway", status: http.StatusBadGateway, sentinel: models.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.GetTelemetry(context.Background(), "tracker-1")
			require.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(&Config{
		BaseURL:        srv.URL,
		RequestTimeout: models.Duration(20 * time.Millisecond),
	}, logger.NewTestLogger())

	_, err := client.GetTelemetry(context.Background(), "tracker-1")
	require.ErrorIs(t, err, models.ErrNetwork)
}

func TestLoginInstallsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "fresh-token"})
			return
		}

		// Subsequent calls must carry the new token.
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	session, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", session.Token)

	require.NoError(t, client.VerifyUser(context.Background()))
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "We Got your Request"})
	})

	assert.True(t, client.Ping(context.Background()))
}

func TestDeleteDevice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/verify/device/tracker-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.DeleteDevice(context.Background(), "tracker-1"))
}
