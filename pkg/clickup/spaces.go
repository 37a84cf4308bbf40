package clickup

import (
	"context"
	"net/url"
	"strconv"
)

// SpaceRequest is the body of [Client.CreateSpace].
type SpaceRequest struct {
	Name              string        `json:"name" validate:"required"`
	MultipleAssignees bool          `json:"multiple_assignees"`
	Features          SpaceFeatures `json:"features"`
}

// CreateSpace creates a space in a team.
func (c *Client) CreateSpace(ctx context.Context, teamID string, req SpaceRequest) (*Space, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	var space Space
	if err := c.post(ctx, endpoint("team", teamID, "space"), req, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// GetSpace fetches a single space.
func (c *Client) GetSpace(ctx context.Context, spaceID string) (*Space, error) {
	if err := requireID("space", spaceID); err != nil {
		return nil, err
	}

	var space Space
	if err := c.get(ctx, endpoint("space", spaceID), nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// GetSpaces fetches a team's spaces.
func (c *Client) GetSpaces(ctx context.Context, teamID string, archived bool) (*Spaces, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}

	query := url.Values{"archived": {strconv.FormatBool(archived)}}

	var spaces Spaces
	if err := c.get(ctx, endpoint("team", teamID, "space"), query, &spaces); err != nil {
		return nil, err
	}
	return &spaces, nil
}

// DeleteSpace removes a space and everything in it.
func (c *Client) DeleteSpace(ctx context.Context, spaceID string) error {
	if err := requireID("space", spaceID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("space", spaceID))
}
