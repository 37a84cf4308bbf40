package clickup

import "context"

// GetTeams fetches the teams (workspaces) the token can access.
func (c *Client) GetTeams(ctx context.Context) (*Teams, error) {
	var teams Teams
	if err := c.get(ctx, "team", nil, &teams); err != nil {
		return nil, err
	}
	return &teams, nil
}

// GetAuthorizedUser fetches the user the token belongs to.
func (c *Client) GetAuthorizedUser(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.get(ctx, "user", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// GetSharedHierarchy fetches the tasks, lists and folders shared with the authorized user in a team.
func (c *Client) GetSharedHierarchy(ctx context.Context, teamID string) (*SharedHierarchy, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}

	var resp struct {
		Shared SharedHierarchy `json:"shared"`
	}
	if err := c.get(ctx, endpoint("team", teamID, "shared"), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Shared, nil
}

// GetTaskMembers fetches the users with access to a task.
func (c *Client) GetTaskMembers(ctx context.Context, taskID string) (*Members, error) {
	return c.members(ctx, "task", taskID)
}

// GetListMembers fetches the users with access to a list.
func (c *Client) GetListMembers(ctx context.Context, listID string) (*Members, error) {
	return c.members(ctx, "list", listID)
}

func (c *Client) members(ctx context.Context, kind, id string) (*Members, error) {
	if err := requireID(kind, id); err != nil {
		return nil, err
	}

	var members Members
	if err := c.get(ctx, endpoint(kind, id, "member"), nil, &members); err != nil {
		return nil, err
	}
	return &members, nil
}
