package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/diogo/agentdash/internal/errors"
	"github.com/diogo/agentdash/internal/models"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		report  *models.HealthReport
		err     error
		label   string
		wantErr bool
	}{
		{
			name:   "connected",
			report: &models.HealthReport{Status: "healthy", AgentInitialized: true, StorageInitialized: true},
			label:  "Connected",
		},
		{
			name:    "not ready",
			report:  &models.HealthReport{Status: "healthy", AgentInitialized: true},
			label:   "Not Ready",
			wantErr: true,
		},
		{
			name:    "disconnected",
			err:     apierrors.NewNetworkError("/health", errors.New("connection refused")),
			label:   "Disconnected",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.client.HealthVal = tt.report
			env.client.HealthErr = tt.err

			err := env.run("health")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errUnhealthy) {
				t.Errorf("err = %v, want errUnhealthy", err)
			}
			if !strings.Contains(env.stdout.String(), tt.label) {
				t.Errorf("stdout = %q, want %q", env.stdout.String(), tt.label)
			}
		})
	}
}

func TestHealth_Details(t *testing.T) {
	env := newTestEnv(t)
	env.client.HealthVal = &models.HealthReport{Status: "healthy", AgentInitialized: true}

	_ = env.run("health")
	out := env.stdout.String()
	if !strings.Contains(out, "agent: initialized") || !strings.Contains(out, "storage: not initialized") {
		t.Errorf("stdout = %q", out)
	}
}
