package dashboard

import "github.com/diogo/agentdash/internal/models"

// ClassifyHealth maps the outcome of one probe to the indicator state.
// Any error, including a body that is not JSON, means Disconnected.
func ClassifyHealth(report *models.HealthReport, err error) models.HealthStatus {
	if err != nil || report == nil {
		return models.HealthDisconnected
	}
	if report.Healthy() {
		return models.HealthConnected
	}
	return models.HealthNotReady
}
