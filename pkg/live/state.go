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

package live

import (
	"strconv"

	"github.com/skotrack/vmarg/pkg/models"
)

// fetchKind separates the two independent fetch pipelines per device.
type fetchKind int

const (
	kindTelemetry fetchKind = iota
	kindGeofence
	kindCount
)

// seqCounter orders fetch results per device per kind. Fetches are tagged at
// initiation; a result is applied only if its tag is not older than the last
// applied one, so a slow stale response cannot clobber a fresher one that
// completed first.
type seqCounter struct {
	next    uint64
	applied uint64
}

// begin tags a new fetch.
func (s *seqCounter) begin() uint64 {
	s.next++
	return s.next
}

// accept reports whether a result tagged seq may be applied, recording it.
func (s *seqCounter) accept(seq uint64) bool {
	if seq < s.applied {
		return false
	}

	s.applied = seq

	return true
}

// deviceState is the per-device synchronized state plus its fetch ordering
// counters. Entries are created on the first fetch initiation and removed
// when the device is deleted.
type deviceState struct {
	telemetry models.Telemetry
	geofence  models.Geofence
	seq       [kindCount]seqCounter
}

// fetched reports whether any fetch has ever completed for the device.
func (s *deviceState) fetched() bool {
	return s.telemetry.State != models.FixUnfetched || s.geofence.State != models.GeofenceUnfetched
}

// vitalOrPlaceholder mirrors the tracker display convention of "--" for
// vitals the firmware did not report.
func vitalOrPlaceholder(v string) string {
	if v == "" {
		return "--"
	}

	return v
}

// applyTelemetry folds a successful realtime fetch into the state. A report
// without a fix timestamp transitions to FixAbsent while preserving the
// previous coordinates, so the map keeps showing the last known position.
func (s *deviceState) applyTelemetry(report *models.TelemetryReport) {
	if !report.HasFix() {
		s.telemetry.State = models.FixAbsent
		return
	}

	lat, errLat := strconv.ParseFloat(report.Latitude, 64)
	lng, errLng := strconv.ParseFloat(report.Longitude, 64)

	if errLat != nil || errLng != nil {
		// A fix timestamp with unparseable coordinates is treated the same
		// as no fix: prior coordinates stay visible.
		s.telemetry.State = models.FixAbsent
		return
	}

	s.telemetry = models.Telemetry{
		State:       models.FixKnown,
		Position:    models.Position{Lat: lat, Lng: lng},
		LastUpdated: report.Date + " " + report.Time,
		Status: models.DeviceStatus{
			GPS:           report.GPS,
			MainPower:     report.MainPower,
			Battery:       report.Battery,
			HeartRate:     vitalOrPlaceholder(report.HeartRate),
			SpO2:          vitalOrPlaceholder(report.SpO2),
			BloodPressure: vitalOrPlaceholder(report.BloodPressure),
			Temperature:   vitalOrPlaceholder(report.Temperature),
			StepCount:     report.StepCount,
			Calories:      report.Calories,
			Distance:      report.Distance,
		},
	}
}

// applyGeofence folds a successful geofence fetch into the state,
// normalizing "nothing configured" to GeofenceNone.
func (s *deviceState) applyGeofence(record *models.GeofenceRecord, found bool) {
	if !found {
		s.geofence = models.Geofence{State: models.GeofenceNone}
		return
	}

	s.geofence = models.Geofence{
		State:    models.GeofencePresent,
		Center:   models.Position{Lat: record.Latitude, Lng: record.Longitude},
		RadiusKm: record.RadiusKm,
	}
}

// snapshot copies the fetched portion of the state for the presentation
// layer.
func (s *deviceState) snapshot() models.DeviceSnapshot {
	return models.DeviceSnapshot{
		Telemetry: s.telemetry,
		Geofence:  s.geofence,
	}
}
