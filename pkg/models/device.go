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

// Package models defines the shared data model for the Vmarg live sync
// service: device references, telemetry and geofence state, wire-level
// backend records, and the error taxonomy.
package models

import (
	"fmt"
	"time"
)

// DeviceRef identifies a registered tracker. The ordered list returned by the
// device directory defines navigation order; refs are immutable once loaded.
type DeviceRef struct {
	ID    string `json:"device_id"`
	Label string `json:"label"`
}

// Position is a WGS84 coordinate pair.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FixState is the per-device telemetry state. The zero value means the device
// has never been fetched, which is distinct from a device the backend knows
// has never reported a fix (FixAbsent).
type FixState int

const (
	// FixUnfetched means no telemetry fetch has ever completed for the device.
	FixUnfetched FixState = iota
	// FixAbsent means the backend answered but the device has never reported.
	FixAbsent
	// FixKnown means the device has a valid last fix.
	FixKnown
)

func (s FixState) String() string {
	switch s {
	case FixAbsent:
		return "absent"
	case FixKnown:
		return "known"
	default:
		return "unfetched"
	}
}

// DeviceStatus carries the auxiliary status fields reported alongside a fix.
// Vitals are reported as opaque strings by the tracker firmware.
type DeviceStatus struct {
	GPS           string  `json:"gps,omitempty"`
	MainPower     string  `json:"main,omitempty"`
	Battery       string  `json:"battery,omitempty"`
	HeartRate     string  `json:"hr,omitempty"`
	SpO2          string  `json:"spo2,omitempty"`
	BloodPressure string  `json:"bp,omitempty"`
	Temperature   string  `json:"temperature,omitempty"`
	StepCount     int     `json:"step_count"`
	Calories      float64 `json:"calories"`
	Distance      float64 `json:"distance"`
}

// Telemetry is the latest known report for one device. Position holds the
// last known fix and is preserved across FixAbsent transitions so the map can
// keep showing the last place the device was seen.
type Telemetry struct {
	State       FixState     `json:"state"`
	Position    Position     `json:"position"`
	LastUpdated string       `json:"last_updated,omitempty"` // "2006-01-02 15:04:05"
	Status      DeviceStatus `json:"status"`
}

// GeofenceState distinguishes "not yet fetched" from "fetched, none
// configured" from "configured".
type GeofenceState int

const (
	GeofenceUnfetched GeofenceState = iota
	GeofenceNone
	GeofencePresent
)

func (s GeofenceState) String() string {
	switch s {
	case GeofenceNone:
		return "none"
	case GeofencePresent:
		return "present"
	default:
		return "unfetched"
	}
}

// Geofence is the circular alert boundary configured for one device.
type Geofence struct {
	State    GeofenceState `json:"state"`
	Center   Position      `json:"center"`
	RadiusKm float64       `json:"radius_km"`
}

// TelemetryReport is the wire-level realtime record returned by the backend.
// Latitude/longitude arrive as strings; a report without both date and time
// means the device has never sent a fix.
type TelemetryReport struct {
	DeviceName    string  `json:"deviceName"`
	Latitude      string  `json:"latitude"`
	Longitude     string  `json:"longitude"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	GPS           string  `json:"GPS"`
	MainPower     string  `json:"main"`
	Battery       string  `json:"battery"`
	HeartRate     string  `json:"HR"`
	SpO2          string  `json:"SPO2"`
	BloodPressure string  `json:"BP"`
	Temperature   string  `json:"temperature"`
	StepCount     int     `json:"stepcount"`
	Calories      float64 `json:"calories"`
	Distance      float64 `json:"distance"`
}

// HasFix reports whether the record carries a usable fix timestamp.
func (r *TelemetryReport) HasFix() bool {
	return r != nil && r.Date != "" && r.Time != ""
}

// GeofenceRecord is the wire-level geofence document returned by the backend.
// A response without an ID means no geofence is configured.
type GeofenceRecord struct {
	ID         string  `json:"_id"`
	DeviceName string  `json:"deviceName"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RadiusKm   float64 `json:"radius"`
}

// DeviceSnapshot is a read-only copy of one device's synchronized state.
type DeviceSnapshot struct {
	Telemetry Telemetry `json:"telemetry"`
	Geofence  Geofence  `json:"geofence"`
}

// Snapshot is a read-only copy of the controller state handed to the
// presentation layer. Selected is -1 when no device is active.
type Snapshot struct {
	Devices  []DeviceRef               `json:"devices"`
	Selected int                       `json:"selected"`
	States   map[string]DeviceSnapshot `json:"states"`
}

// reportTimeLayout is the timestamp format trackers report in.
const reportTimeLayout = "2006-01-02 15:04:05"

// FormatReportTime renders a "2006-01-02 15:04:05" tracker timestamp as a
// short display string like "Mar 13, 04:46 AM". Unparseable input is returned
// unchanged; empty input renders as "N/A".
func FormatReportTime(s string) string {
	if s == "" {
		return "N/A"
	}

	t, err := time.Parse(reportTimeLayout, s)
	if err != nil {
		return s
	}

	return t.Format("Jan 2, 03:04 PM")
}

// ShareLink builds a Google Maps link for a position.
func ShareLink(p Position) string {
	return fmt.Sprintf("https://www.google.com/maps/place/%v,%v", p.Lat, p.Lng)
}
