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

package server

//go:generate mockgen -destination=mock_server.go -package=server github.com/skotrack/vmarg/pkg/server LiveService

import (
	"context"

	"github.com/skotrack/vmarg/pkg/models"
)

// LiveService is the subset of the sync controller the HTTP surface exposes.
type LiveService interface {
	Snapshot() models.Snapshot
	SelectDevice(ctx context.Context, index int)
	NextDevice(ctx context.Context)
	PrevDevice(ctx context.Context)
	Refresh(ctx context.Context)
	Load(ctx context.Context) error
	UpdateGeofenceRadius(ctx context.Context, radiusKm float64) error
	AddGeofence(ctx context.Context) error
	RemoveGeofence(ctx context.Context) error
	DeleteDevice(ctx context.Context, deviceID string) error
	DeleteActiveDevice(ctx context.Context) error
	ShareLink() (string, error)
	RecentEvents() []models.Event
	MapCenter() *models.Position
}
