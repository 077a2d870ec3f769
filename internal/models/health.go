package models

// HealthReport is the decoded body of GET /health
type HealthReport struct {
	Status             string
	AgentInitialized   bool
	StorageInitialized bool
}

// Healthy reports whether every readiness field is set
func (r *HealthReport) Healthy() bool {
	return r != nil && r.Status == HealthyStatus && r.AgentInitialized && r.StorageInitialized
}

// HealthStatus is the tri-state connection indicator
type HealthStatus int

const (
	HealthDisconnected HealthStatus = iota
	HealthNotReady
	HealthConnected
)

// Label returns the text shown next to the status indicator
func (s HealthStatus) Label() string {
	switch s {
	case HealthConnected:
		return "Connected"
	case HealthNotReady:
		return "Not Ready"
	default:
		return "Disconnected"
	}
}

// String implements fmt.Stringer
func (s HealthStatus) String() string {
	return s.Label()
}
