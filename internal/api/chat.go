package api

import (
	"context"

	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/diogo/agentdash/internal/models"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat sends one message to the agent. A reply with success:false is
// returned as a ServerError carrying the server's reason.
func (c *Client) Chat(ctx context.Context, message string) (*models.ChatReply, error) {
	resp, err := c.do(ctx, fhttp.MethodPost, models.PathChat, chatRequest{Message: message})
	if err != nil {
		return nil, err
	}

	parsed, err := parseBody(models.PathChat, resp)
	if err != nil {
		return nil, err
	}

	if err := checkSuccess(models.PathChat, resp, parsed, PathError, PathDetail); err != nil {
		return nil, err
	}

	return &models.ChatReply{
		Success:  true,
		Response: parsed.Get(PathResponse).String(),
	}, nil
}
