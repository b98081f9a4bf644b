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

// Package push maintains the push-notification channel that tells the sync
// controller to refetch a device. A channel holds at most one broker
// connection and at most one active device subscription; subscribing to a new
// device replaces interest in the previous one. The recognized payload is a
// pure trigger, not a data envelope. Reconnects are delegated to the
// underlying client library.
package push

// TriggerPayload is the only payload value recognized as a refetch signal.
const TriggerPayload = "call api"

// Channel delivers refetch triggers for the currently subscribed device.
//
// Triggers behaves as a single-slot mailbox: a trigger that arrives while a
// previous one is still pending is coalesced, since one pending trigger
// already forces a full resync. Duplicate or out-of-order broker messages are
// not deduplicated here; the controller's sequence numbering handles stale
// results.
type Channel interface {
	// Subscribe replaces the active subscription with the given device's
	// topic.
	Subscribe(deviceID string) error

	// Unsubscribe drops the active subscription, if any.
	Unsubscribe()

	// Triggers returns the channel on which subscribed device ids are
	// delivered when a refetch signal arrives.
	Triggers() <-chan string

	// Close tears down the subscription and the broker connection.
	Close()
}
