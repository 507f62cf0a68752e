package controllers

import "sysmond/internal/services"

// API bundles the boundary handlers around one Monitor instance, so no
// handler reaches for package-level state.
type API struct {
	monitor *services.Monitor
	auth    *services.AuthService
	hub     *services.Hub
}

func NewAPI(monitor *services.Monitor, auth *services.AuthService, hub *services.Hub) *API {
	return &API{
		monitor: monitor,
		auth:    auth,
		hub:     hub,
	}
}
