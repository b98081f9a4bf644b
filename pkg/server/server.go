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

// Package server exposes the live sync controller over a local HTTP API for
// dashboards and tooling.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/models"
)

// Server routes HTTP requests to the live controller.
type Server struct {
	router  *mux.Router
	handler http.Handler
	live    LiveService
	log     logger.Logger
	apiKey  string
}

// NewServer creates a server for the given controller. apiKey may be empty to
// disable key checks for local-only deployments.
func NewServer(live LiveService, apiKey string, log logger.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		live:   live,
		log:    log,
		apiKey: apiKey,
	}

	s.setupRoutes()

	// CORS wraps the router itself so preflight requests are answered even
	// for method/path combinations no route matches.
	s.handler = CommonMiddleware(s.router, s.log)

	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/live").Subrouter()
	if s.apiKey != "" {
		api.Use(APIKeyMiddleware(s.apiKey, s.log))
	}

	api.HandleFunc("/snapshot", s.getSnapshot).Methods("GET")
	api.HandleFunc("/events", s.getEvents).Methods("GET")
	api.HandleFunc("/share", s.getShareLink).Methods("GET")

	api.HandleFunc("/select", s.postSelect).Methods("POST")
	api.HandleFunc("/next", s.postNext).Methods("POST")
	api.HandleFunc("/prev", s.postPrev).Methods("POST")
	api.HandleFunc("/refresh", s.postRefresh).Methods("POST")
	api.HandleFunc("/reload", s.postReload).Methods("POST")

	api.HandleFunc("/geofence", s.postGeofence).Methods("POST")
	api.HandleFunc("/geofence", s.deleteGeofence).Methods("DELETE")
	api.HandleFunc("/geofence/radius", s.putGeofenceRadius).Methods("PUT")

	api.HandleFunc("/devices/{id}", s.deleteDevice).Methods("DELETE")
	api.HandleFunc("/device", s.deleteActiveDevice).Methods("DELETE")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// snapshotResponse bundles the controller snapshot with the map-center hint.
type snapshotResponse struct {
	models.Snapshot
	MapCenter *models.Position `json:"map_center,omitempty"`
}

func (s *Server) getSnapshot(w http.ResponseWriter, _ *http.Request) {
	resp := snapshotResponse{
		Snapshot:  s.live.Snapshot(),
		MapCenter: s.live.MapCenter(),
	}

	s.encodeJSONResponse(w, resp)
}

func (s *Server) getEvents(w http.ResponseWriter, _ *http.Request) {
	s.encodeJSONResponse(w, s.live.RecentEvents())
}

func (s *Server) getShareLink(w http.ResponseWriter, _ *http.Request) {
	link, err := s.live.ShareLink()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.encodeJSONResponse(w, map[string]string{"url": link})
}

type selectRequest struct {
	Index int `json:"index"`
}

func (s *Server) postSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.live.SelectDevice(r.Context(), req.Index)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postNext(w http.ResponseWriter, r *http.Request) {
	s.live.NextDevice(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postPrev(w http.ResponseWriter, r *http.Request) {
	s.live.PrevDevice(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postRefresh(w http.ResponseWriter, r *http.Request) {
	s.live.Refresh(r.Context())
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) postReload(w http.ResponseWriter, r *http.Request) {
	if err := s.live.Load(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type radiusRequest struct {
	RadiusKm float64 `json:"radius_km"`
}

func (s *Server) putGeofenceRadius(w http.ResponseWriter, r *http.Request) {
	var req radiusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.live.UpdateGeofenceRadius(r.Context(), req.RadiusKm); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postGeofence(w http.ResponseWriter, r *http.Request) {
	if err := s.live.AddGeofence(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteGeofence(w http.ResponseWriter, r *http.Request) {
	if err := s.live.RemoveGeofence(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := mux.Vars(r)["id"]

	if err := s.live.DeleteDevice(r.Context(), deviceID); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteActiveDevice(w http.ResponseWriter, r *http.Request) {
	if err := s.live.DeleteActiveDevice(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) encodeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError maps controller errors onto HTTP statuses. Backend failures
// surface as 502 because this server only proxies device-platform state.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrPrecondition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrNoDevices):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrAuth):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}
