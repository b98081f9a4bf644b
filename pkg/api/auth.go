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
	"net/http"
)

// Credentials are the password-login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the backend's answer to a successful login.
type Session struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// Login exchanges credentials for a session token and installs it on the
// client for subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	var session Session

	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", creds, &session); err != nil {
		return nil, err
	}

	if session.Token != "" {
		c.SetToken(session.Token)
	}

	return &session, nil
}

// SignupRequest registers a new user account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Signup creates a new user account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req, nil)
}

// VerifyUser checks that the installed session token is still accepted.
func (c *Client) VerifyUser(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/auth/user/verif", nil, nil)
}

// Logout invalidates the current session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/auth/user/logout", nil, nil)
}

type pingResponse struct {
	Message string `json:"message"`
}

// Ping reports whether the backend is reachable and answering.
func (c *Client) Ping(ctx context.Context) bool {
	var resp pingResponse

	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/ping", nil, &resp); err != nil {
		return false
	}

	return resp.Message == "We Got your Request"
}

// AddDeviceRequest registers a tracker against a customer account.
type AddDeviceRequest struct {
	DeviceName string `json:"deviceName"`
	DeviceCode string `json:"deviceCode"`
	CustomerID string `json:"custommerId"`
	Nickname   string `json:"nickname,omitempty"`
}

// AddDevice registers a new tracker. The backend validates the device code.
func (c *Client) AddDevice(ctx context.Context, req AddDeviceRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/verify/adddevice", req, nil)
}
