package api

import (
	"context"

	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/diogo/agentdash/internal/models"
)

// Health probes the server's liveness endpoint. Any parsed JSON body is
// returned as a report, whatever its status code; the caller decides whether
// it means ready.
func (c *Client) Health(ctx context.Context) (*models.HealthReport, error) {
	resp, err := c.do(ctx, fhttp.MethodGet, models.PathHealth, nil)
	if err != nil {
		return nil, err
	}

	parsed, err := parseBody(models.PathHealth, resp)
	if err != nil {
		return nil, err
	}

	return &models.HealthReport{
		Status:             parsed.Get(PathStatus).String(),
		AgentInitialized:   parsed.Get(PathAgentInitialized).Bool(),
		StorageInitialized: parsed.Get(PathStorageInitialized).Bool(),
	}, nil
}
