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

package models

import "errors"

// Error taxonomy for sync operations. Callers classify with errors.Is; all
// backend and local failures wrap exactly one of these sentinels.
var (
	// ErrNetwork covers failed or timed-out requests and unexpected
	// backend status codes.
	ErrNetwork = errors.New("network error")

	// ErrAuth means the backend rejected the session token. The surrounding
	// application is expected to re-authenticate.
	ErrAuth = errors.New("authentication rejected")

	// ErrPrecondition means an operation was attempted without the state it
	// requires, e.g. adding a geofence with no known location.
	ErrPrecondition = errors.New("precondition not met")

	// ErrValidation means input was rejected locally before any backend call.
	ErrValidation = errors.New("validation failed")

	// ErrNoDevices means the directory returned no registered devices.
	ErrNoDevices = errors.New("no registered devices")
)
