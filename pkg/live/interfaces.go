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

//go:generate mockgen -destination=mock_live.go -package=live github.com/skotrack/vmarg/pkg/live DeviceAPI,PushChannel

package live

import (
	"context"

	"github.com/skotrack/vmarg/pkg/models"
)

// DeviceAPI is the backend surface the controller depends on. *api.Client
// implements it.
type DeviceAPI interface {
	ListDevices(ctx context.Context) ([]models.DeviceRef, error)
	GetTelemetry(ctx context.Context, deviceID string) (*models.TelemetryReport, error)
	GetGeofence(ctx context.Context, deviceID string) (*models.GeofenceRecord, bool, error)
	CreateGeofence(ctx context.Context, deviceID string, center models.Position) error
	DeleteGeofence(ctx context.Context, deviceID string) error
	UpdateGeofenceRadius(ctx context.Context, deviceID string, radiusKm float64) error
	DeleteDevice(ctx context.Context, deviceID string) error
}

// PushChannel is the push-notification channel the controller consumes.
// push.MQTTChannel and push.NATSChannel implement it.
type PushChannel interface {
	Subscribe(deviceID string) error
	Unsubscribe()
	Triggers() <-chan string
	Close()
}
