package clickup

import (
	"context"
	"encoding/json"
	"net/url"
)

// GoalRequest is the body of [Client.CreateGoal].
//
// Owners are sent only when MultipleOwners is set.
type GoalRequest struct {
	Name           string `json:"name" validate:"required"`
	DueDate        string `json:"-"`
	Description    string `json:"description,omitempty"`
	MultipleOwners bool   `json:"multiple_owners"`
	Owners         []int  `json:"-"`
	Color          string `json:"color,omitempty"`
}

type goalPayload struct {
	GoalRequest
	DueDate json.Number `json:"due_date,omitempty"`
	Owners  []int       `json:"owners,omitempty"`
}

// UpdateGoalRequest is the body of [Client.UpdateGoal]. Zero fields are left unchanged.
type UpdateGoalRequest struct {
	Name         string `json:"name,omitempty"`
	DueDate      string `json:"-"`
	Description  string `json:"description,omitempty"`
	RemoveOwners []int  `json:"rem_owners,omitempty"`
	AddOwners    []int  `json:"add_owners,omitempty"`
	Color        string `json:"color,omitempty"`
}

type updateGoalPayload struct {
	UpdateGoalRequest
	DueDate json.Number `json:"due_date,omitempty"`
}

type goalResponse struct {
	Goal Goal `json:"goal"`
}

// CreateGoal creates a goal in a team.
func (c *Client) CreateGoal(ctx context.Context, teamID string, req GoalRequest) (*Goal, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	due, err := c.timestamp(req.DueDate)
	if err != nil {
		return nil, err
	}
	payload := goalPayload{GoalRequest: req, DueDate: due}
	if req.MultipleOwners {
		payload.Owners = req.Owners
	}

	var resp goalResponse
	if err := c.post(ctx, endpoint("team", teamID, "goal"), payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Goal, nil
}

// UpdateGoal changes a goal's attributes and owners.
func (c *Client) UpdateGoal(ctx context.Context, goalID string, req UpdateGoalRequest) (*Goal, error) {
	if err := requireID("goal", goalID); err != nil {
		return nil, err
	}

	due, err := c.timestamp(req.DueDate)
	if err != nil {
		return nil, err
	}

	var resp goalResponse
	if err := c.put(ctx, endpoint("goal", goalID), updateGoalPayload{UpdateGoalRequest: req, DueDate: due}, &resp); err != nil {
		return nil, err
	}
	return &resp.Goal, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	if err := requireID("goal", goalID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("goal", goalID))
}

// GetGoal fetches a single goal with its key results.
func (c *Client) GetGoal(ctx context.Context, goalID string) (*Goal, error) {
	if err := requireID("goal", goalID); err != nil {
		return nil, err
	}

	var resp goalResponse
	if err := c.get(ctx, endpoint("goal", goalID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Goal, nil
}

// GetGoals fetches a team's goals, optionally including completed ones.
func (c *Client) GetGoals(ctx context.Context, teamID string, includeCompleted bool) (*Goals, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}

	var query url.Values
	if includeCompleted {
		query = url.Values{"include_completed": {"true"}}
	}

	var goals Goals
	if err := c.get(ctx, endpoint("team", teamID, "goal"), query, &goals); err != nil {
		return nil, err
	}
	return &goals, nil
}
