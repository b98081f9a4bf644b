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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skotrack/vmarg/pkg/models"
)

func TestSeqCounterOrdering(t *testing.T) {
	var s seqCounter

	first := s.begin()
	second := s.begin()

	require.Equal(t, uint64(1), first)
	require.Equal(t, uint64(2), second)

	// Later fetch completes first; the earlier one is then stale.
	assert.True(t, s.accept(second))
	assert.False(t, s.accept(first))

	// In-order completions always apply.
	third := s.begin()
	assert.True(t, s.accept(third))
}

func TestSeqCounterEqualSeqReapplies(t *testing.T) {
	var s seqCounter

	seq := s.begin()

	assert.True(t, s.accept(seq))
	assert.True(t, s.accept(seq), "a result is never staler than itself")
}

func TestApplyTelemetry(t *testing.T) {
	tests := []struct {
		name      string
		prior     models.Telemetry
		report    *models.TelemetryReport
		wantState models.FixState
		wantPos   models.Position
	}{
		{
			name: "fix_replaces_state",
			report: &models.TelemetryReport{
				Latitude:  "12.9",
				Longitude: "77.6",
				Date:      "2024-01-01",
				Time:      "10:00:00",
			},
			wantState: models.FixKnown,
			wantPos:   models.Position{Lat: 12.9, Lng: 77.6},
		},
		{
			name: "no_fix_preserves_coordinates",
			prior: models.Telemetry{
				State:    models.FixKnown,
				Position: models.Position{Lat: 1.5, Lng: 2.5},
			},
			report:    &models.TelemetryReport{},
			wantState: models.FixAbsent,
			wantPos:   models.Position{Lat: 1.5, Lng: 2.5},
		},
		{
			name: "unparseable_coordinates_treated_as_no_fix",
			prior: models.Telemetry{
				State:    models.FixKnown,
				Position: models.Position{Lat: 1.5, Lng: 2.5},
			},
			report: &models.TelemetryReport{
				Latitude:  "not-a-number",
				Longitude: "77.6",
				Date:      "2024-01-01",
				Time:      "10:00:00",
			},
			wantState: models.FixAbsent,
			wantPos:   models.Position{Lat: 1.5, Lng: 2.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &deviceState{telemetry: tt.prior}
			st.applyTelemetry(tt.report)

			assert.Equal(t, tt.wantState, st.telemetry.State)
			assert.InDelta(t, tt.wantPos.Lat, st.telemetry.Position.Lat, 0.0001)
			assert.InDelta(t, tt.wantPos.Lng, st.telemetry.Position.Lng, 0.0001)
		})
	}
}

func TestApplyTelemetryLastUpdatedAndVitals(t *testing.T) {
	st := &deviceState{}
	st.applyTelemetry(&models.TelemetryReport{
		Latitude:  "12.9",
		Longitude: "77.6",
		Date:      "2024-01-01",
		Time:      "10:00:00",
		HeartRate: "72",
	})

	assert.Equal(t, "2024-01-01 10:00:00", st.telemetry.LastUpdated)
	assert.Equal(t, "72", st.telemetry.Status.HeartRate)
	assert.Equal(t, "--", st.telemetry.Status.SpO2)
	assert.Equal(t, "--", st.telemetry.Status.BloodPressure)
	assert.Equal(t, "--", st.telemetry.Status.Temperature)
}

func TestApplyGeofence(t *testing.T) {
	st := &deviceState{}

	st.applyGeofence(nil, false)
	assert.Equal(t, models.GeofenceNone, st.geofence.State)

	st.applyGeofence(&models.GeofenceRecord{
		ID: "gf1", Latitude: 12.9, Longitude: 77.6, RadiusKm: 2.5,
	}, true)
	assert.Equal(t, models.GeofencePresent, st.geofence.State)
	assert.InDelta(t, 12.9, st.geofence.Center.Lat, 0.0001)
	assert.InDelta(t, 2.5, st.geofence.RadiusKm, 0.0001)

	// Present reverts to none when the backend no longer has a record.
	st.applyGeofence(nil, false)
	assert.Equal(t, models.GeofenceNone, st.geofence.State)
	assert.Zero(t, st.geofence.RadiusKm)
}

func TestFetched(t *testing.T) {
	st := &deviceState{}
	assert.False(t, st.fetched())

	st.applyGeofence(nil, false)
	assert.True(t, st.fetched())

	st2 := &deviceState{}
	st2.applyTelemetry(&models.TelemetryReport{})
	assert.True(t, st2.fetched())
}
