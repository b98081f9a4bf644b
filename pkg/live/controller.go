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

// Package live implements the live device data synchronization controller.
//
// The controller keeps exactly one "active" device's telemetry and geofence
// state current against the backend, re-syncing on device switch, push
// notification, or manual refresh. Fetch results are ordered per device and
// per kind by sequence number so overlapping fetches apply last-write-wins
// by initiation order; in-flight requests are never cancelled, stale results
// are simply discarded.
package live

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/models"
)

const (
	// Geofence radius bounds in kilometers, enforced locally before any
	// backend call.
	MinRadiusKm = 0.05
	MaxRadiusKm = 10.0

	// DefaultRadiusKm is applied when a geofence is first created.
	DefaultRadiusKm = 1.0

	eventBufferSize = 16
	recentEventsCap = 32
)

// Controller owns the selection state, the per-device state map, and the
// push subscription. All backend calls run outside the mutex; completions
// re-enter under it and pass the sequence check before applying.
type Controller struct {
	api  DeviceAPI
	push PushChannel
	log  logger.Logger

	mu        sync.Mutex
	devices   []models.DeviceRef
	selected  int
	states    map[string]*deviceState
	mapCenter *models.Position
	recent    []models.Event

	events chan models.Event
	wg     sync.WaitGroup
}

// New creates a controller. Load must be called before the controller has an
// active device.
func New(deviceAPI DeviceAPI, pushChannel PushChannel, log logger.Logger) *Controller {
	return &Controller{
		api:      deviceAPI,
		push:     pushChannel,
		log:      log,
		selected: -1,
		states:   make(map[string]*deviceState),
		events:   make(chan models.Event, eventBufferSize),
	}
}

// Start implements the lifecycle service contract: it loads the directory
// and starts consuming push triggers. A directory failure does not kill the
// daemon; the user retries via Reload.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.Load(ctx); err != nil {
		c.log.Error().Err(err).Msg("Initial device directory load failed")
	}

	go c.Run(ctx)

	return nil
}

// Stop tears down the push subscription and waits for in-flight fetches.
func (c *Controller) Stop(_ context.Context) error {
	c.push.Close()
	c.wg.Wait()

	return nil
}

// Load fetches the device directory and activates the first device. Called
// once at startup and again on user-triggered reload.
func (c *Controller) Load(ctx context.Context) error {
	refs, err := c.api.ListDevices(ctx)
	if err != nil {
		c.emit(models.SeverityError, "", "Failed to fetch registered devices")
		return err
	}

	c.mu.Lock()

	c.devices = refs

	if len(refs) == 0 {
		c.selected = -1
		c.mu.Unlock()

		c.emit(models.SeverityError, "", "You don't have any registered devices. Please register a device.")

		return models.ErrNoDevices
	}

	c.selected = 0
	active := refs[0].ID
	c.mu.Unlock()

	c.resubscribe(active)
	c.syncDevice(ctx, active)

	return nil
}

// Devices returns the navigation-ordered device list.
func (c *Controller) Devices() []models.DeviceRef {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.DeviceRef, len(c.devices))
	copy(out, c.devices)

	return out
}

// SelectedIndex returns the active device index, -1 when none.
func (c *Controller) SelectedIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selected
}

// ActiveDevice returns the active device ref, false when the list is empty.
func (c *Controller) ActiveDevice() (models.DeviceRef, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.activeLocked()
}

func (c *Controller) activeLocked() (models.DeviceRef, bool) {
	if c.selected < 0 || c.selected >= len(c.devices) {
		return models.DeviceRef{}, false
	}

	return c.devices[c.selected], true
}

// SelectDevice activates the device at index and triggers a sync for it.
// Out-of-range indices are a silent no-op.
func (c *Controller) SelectDevice(ctx context.Context, index int) {
	c.mu.Lock()

	if index < 0 || index >= len(c.devices) {
		c.mu.Unlock()
		return
	}

	c.selected = index
	active := c.devices[index].ID
	c.mu.Unlock()

	c.resubscribe(active)
	c.syncDevice(ctx, active)
}

// NextDevice cycles forward, wrapping to the first device after the last.
func (c *Controller) NextDevice(ctx context.Context) {
	c.SelectDevice(ctx, c.wrapIndex(1))
}

// PrevDevice cycles backward, wrapping to the last device before the first.
func (c *Controller) PrevDevice(ctx context.Context) {
	c.SelectDevice(ctx, c.wrapIndex(-1))
}

func (c *Controller) wrapIndex(step int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.devices)
	if n == 0 || c.selected < 0 {
		return -1
	}

	return (c.selected + step + n) % n
}

// Refresh manually re-triggers a sync cycle for the active device. Safe to
// call while a previous cycle is still in flight.
func (c *Controller) Refresh(ctx context.Context) {
	active, ok := c.ActiveDevice()
	if !ok {
		return
	}

	c.emit(models.SeverityInfo, active.ID, "Refreshing device data...")
	c.syncDevice(ctx, active.ID)
}

// Run consumes push triggers until ctx is done. Triggers for devices other
// than the active one are ignored; a missed notification only delays that
// device's refresh until it becomes active again.
func (c *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case deviceID, ok := <-c.push.Triggers():
			if !ok {
				return
			}

			c.handleTrigger(ctx, deviceID)
		}
	}
}

func (c *Controller) handleTrigger(ctx context.Context, deviceID string) {
	active, ok := c.ActiveDevice()
	if !ok || active.ID != deviceID {
		c.log.Debug().Str("device_id", deviceID).Msg("Ignoring push trigger for inactive device")
		return
	}

	c.log.Debug().Str("device_id", deviceID).Msg("Push trigger received")
	c.syncDevice(ctx, deviceID)
}

// syncDevice starts one telemetry and one geofence fetch for the device.
// The two are independent: failure of one never blocks the other.
func (c *Controller) syncDevice(ctx context.Context, deviceID string) {
	c.mu.Lock()

	st := c.stateLocked(deviceID)
	tseq := st.seq[kindTelemetry].begin()
	gseq := st.seq[kindGeofence].begin()

	c.mu.Unlock()

	c.wg.Add(2)

	go c.fetchTelemetry(ctx, deviceID, tseq)
	go c.fetchGeofence(ctx, deviceID, gseq)
}

func (c *Controller) stateLocked(deviceID string) *deviceState {
	st, ok := c.states[deviceID]
	if !ok {
		st = &deviceState{}
		c.states[deviceID] = st
	}

	return st
}

func (c *Controller) fetchTelemetry(ctx context.Context, deviceID string, seq uint64) {
	defer c.wg.Done()

	report, err := c.api.GetTelemetry(ctx, deviceID)

	c.mu.Lock()

	st, ok := c.states[deviceID]
	if !ok {
		// Device deleted while the fetch was in flight.
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.mu.Unlock()

		c.log.Error().Err(err).Str("device_id", deviceID).Msg("Telemetry fetch failed")
		c.emit(models.SeverityError, deviceID, "Failed to fetch device data")

		return
	}

	if !st.seq[kindTelemetry].accept(seq) {
		c.mu.Unlock()

		c.log.Debug().Str("device_id", deviceID).Uint64("seq", seq).Msg("Discarding stale telemetry result")

		return
	}

	st.applyTelemetry(report)

	// The map-center hint follows the active device only; results for a
	// now-inactive device still land in its own map entry above.
	if active, isActive := c.activeLocked(); isActive && active.ID == deviceID &&
		st.telemetry.State == models.FixKnown {
		pos := st.telemetry.Position
		c.mapCenter = &pos
	}

	c.mu.Unlock()
}

func (c *Controller) fetchGeofence(ctx context.Context, deviceID string, seq uint64) {
	defer c.wg.Done()

	record, found, err := c.api.GetGeofence(ctx, deviceID)

	c.mu.Lock()

	st, ok := c.states[deviceID]
	if !ok {
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.mu.Unlock()

		c.log.Error().Err(err).Str("device_id", deviceID).Msg("Geofence fetch failed")
		c.emit(models.SeverityError, deviceID, "Failed to fetch geofencing data")

		return
	}

	if !st.seq[kindGeofence].accept(seq) {
		c.mu.Unlock()

		c.log.Debug().Str("device_id", deviceID).Uint64("seq", seq).Msg("Discarding stale geofence result")

		return
	}

	st.applyGeofence(record, found)
	c.mu.Unlock()
}

// UpdateGeofenceRadius validates the radius locally, writes it to the
// backend, and only updates local state on confirmed success.
func (c *Controller) UpdateGeofenceRadius(ctx context.Context, radiusKm float64) error {
	if radiusKm < MinRadiusKm || radiusKm > MaxRadiusKm {
		c.emit(models.SeverityError, "", fmt.Sprintf("Radius must be between %gkm and %gkm", MinRadiusKm, MaxRadiusKm))
		return fmt.Errorf("%w: radius %g out of range [%g, %g]", models.ErrValidation, radiusKm, MinRadiusKm, MaxRadiusKm)
	}

	active, ok := c.ActiveDevice()
	if !ok {
		return fmt.Errorf("%w: no active device", models.ErrPrecondition)
	}

	if err := c.api.UpdateGeofenceRadius(ctx, active.ID, radiusKm); err != nil {
		c.emit(models.SeverityError, active.ID, "Failed to update radius")
		return err
	}

	c.mu.Lock()

	if st, exists := c.states[active.ID]; exists && st.geofence.State == models.GeofencePresent {
		st.geofence.RadiusKm = radiusKm
	}

	c.mu.Unlock()

	c.emit(models.SeveritySuccess, active.ID, fmt.Sprintf("Radius updated to %gkm successfully", radiusKm))

	return nil
}

// AddGeofence creates a geofence centered on the active device's last known
// fix. It requires known telemetry; no backend call is made otherwise.
func (c *Controller) AddGeofence(ctx context.Context) error {
	c.mu.Lock()

	active, ok := c.activeLocked()
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: no active device", models.ErrPrecondition)
	}

	st, exists := c.states[active.ID]
	if !exists || st.telemetry.State != models.FixKnown {
		c.mu.Unlock()

		c.emit(models.SeverityError, active.ID, "Device location data is required to create a geofence")

		return fmt.Errorf("%w: no known location for device %s", models.ErrPrecondition, active.ID)
	}

	center := st.telemetry.Position
	c.mu.Unlock()

	if err := c.api.CreateGeofence(ctx, active.ID, center); err != nil {
		c.emit(models.SeverityError, active.ID, "Failed to add geofencing coordinates")
		return err
	}

	c.mu.Lock()

	if st, exists := c.states[active.ID]; exists {
		st.geofence = models.Geofence{
			State:    models.GeofencePresent,
			Center:   center,
			RadiusKm: DefaultRadiusKm,
		}
	}

	c.mu.Unlock()

	c.emit(models.SeveritySuccess, active.ID, "Geofencing coordinates added successfully")

	return nil
}

// RemoveGeofence deletes the active device's geofence on the backend and
// normalizes local state to "none configured" on success.
func (c *Controller) RemoveGeofence(ctx context.Context) error {
	active, ok := c.ActiveDevice()
	if !ok {
		return fmt.Errorf("%w: no active device", models.ErrPrecondition)
	}

	if err := c.api.DeleteGeofence(ctx, active.ID); err != nil {
		c.emit(models.SeverityError, active.ID, "Failed to delete geofencing coordinates")
		return err
	}

	c.mu.Lock()

	if st, exists := c.states[active.ID]; exists {
		st.geofence = models.Geofence{State: models.GeofenceNone}
	}

	c.mu.Unlock()

	c.emit(models.SeveritySuccess, active.ID, "Geofencing coordinates deleted successfully")

	return nil
}

// DeleteActiveDevice unregisters the active device.
func (c *Controller) DeleteActiveDevice(ctx context.Context) error {
	active, ok := c.ActiveDevice()
	if !ok {
		return fmt.Errorf("%w: no active device", models.ErrPrecondition)
	}

	return c.DeleteDevice(ctx, active.ID)
}

// DeleteDevice unregisters a device, purges its state, and re-clamps the
// selection. Deleting a non-active device never changes which device is
// active; deleting the last device leaves the controller with none.
func (c *Controller) DeleteDevice(ctx context.Context, deviceID string) error {
	if err := c.api.DeleteDevice(ctx, deviceID); err != nil {
		c.emit(models.SeverityError, deviceID, "Failed to delete device")
		return err
	}

	c.mu.Lock()

	idx := -1

	for i, d := range c.devices {
		if d.ID == deviceID {
			idx = i
			break
		}
	}

	if idx < 0 {
		c.mu.Unlock()
		return nil
	}

	wasActive := idx == c.selected

	c.devices = append(c.devices[:idx], c.devices[idx+1:]...)
	delete(c.states, deviceID)

	switch {
	case len(c.devices) == 0:
		c.selected = -1
	case idx < c.selected:
		c.selected--
	case wasActive && c.selected >= len(c.devices):
		c.selected = len(c.devices) - 1
	}

	var newActive string

	if wasActive {
		if ref, stillActive := c.activeLocked(); stillActive {
			newActive = ref.ID
		}
	}

	c.mu.Unlock()

	if wasActive {
		if newActive != "" {
			c.resubscribe(newActive)
			c.syncDevice(ctx, newActive)
		} else {
			c.push.Unsubscribe()
		}
	}

	c.emit(models.SeveritySuccess, deviceID, "Device deleted successfully")

	return nil
}

// ShareLink returns a Google Maps link for the active device's last known
// fix.
func (c *Controller) ShareLink() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, ok := c.activeLocked()
	if !ok {
		return "", fmt.Errorf("%w: no active device", models.ErrPrecondition)
	}

	st, exists := c.states[active.ID]
	if !exists || st.telemetry.State != models.FixKnown {
		return "", fmt.Errorf("%w: no location data available to share", models.ErrPrecondition)
	}

	return models.ShareLink(st.telemetry.Position), nil
}

// Snapshot copies the controller state for the presentation layer. Only
// devices with at least one completed fetch appear in States.
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := models.Snapshot{
		Devices:  make([]models.DeviceRef, len(c.devices)),
		Selected: c.selected,
		States:   make(map[string]models.DeviceSnapshot, len(c.states)),
	}

	copy(snap.Devices, c.devices)

	for id, st := range c.states {
		if st.fetched() {
			snap.States[id] = st.snapshot()
		}
	}

	return snap
}

// MapCenter returns the last map-center hint, nil before the first fix of an
// active device.
func (c *Controller) MapCenter() *models.Position {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mapCenter == nil {
		return nil
	}

	pos := *c.mapCenter

	return &pos
}

// Events returns the transient notification stream. Slow consumers lose
// events rather than blocking the controller.
func (c *Controller) Events() <-chan models.Event {
	return c.events
}

// RecentEvents returns a copy of the most recent notifications, newest last.
func (c *Controller) RecentEvents() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Event, len(c.recent))
	copy(out, c.recent)

	return out
}

func (c *Controller) resubscribe(deviceID string) {
	if err := c.push.Subscribe(deviceID); err != nil {
		c.log.Warn().Err(err).Str("device_id", deviceID).Msg("Push subscription failed")
	}
}

func (c *Controller) emit(severity models.EventSeverity, deviceID, message string) {
	event := models.Event{
		Severity:  severity,
		DeviceID:  deviceID,
		Message:   message,
		Timestamp: time.Now(),
	}

	c.mu.Lock()

	c.recent = append(c.recent, event)
	if len(c.recent) > recentEventsCap {
		c.recent = c.recent[len(c.recent)-recentEventsCap:]
	}

	c.mu.Unlock()

	select {
	case c.events <- event:
	default:
	}
}
