// Package models contains data types and constants for the agent dashboard API.
package models

// Endpoint paths of the agent server, relative to its base URL
const (
	PathHealth = "/health"
	PathChat   = "/api/chat"
	PathFiles  = "/api/files"
)

// Default timing of the dashboard
const (
	DefaultFilePollSeconds = 10
	DefaultRefreshDelayMs  = 1000
)

// HealthyStatus is the value of the health "status" field for a live server
const HealthyStatus = "healthy"
