package clickup

import (
	"context"
	"encoding/json"
)

// CreateTaskRequest is the body of [Client.CreateTask].
//
// DueDate and StartDate accept Unix millisecond timestamps or free text.
// TimeEstimate accepts milliseconds or a duration such as "2 hours".
type CreateTaskRequest struct {
	Name                      string   `json:"name" validate:"required"`
	Description               string   `json:"description,omitempty"`
	Assignees                 []int    `json:"assignees,omitempty"`
	Tags                      []string `json:"tags,omitempty"`
	Status                    string   `json:"status,omitempty"`
	Priority                  *int     `json:"priority,omitempty" validate:"omitempty,min=1,max=4"`
	DueDate                   string   `json:"-"`
	DueDateTime               *bool    `json:"due_date_time,omitempty"`
	StartDate                 string   `json:"-"`
	StartDateTime             *bool    `json:"start_date_time,omitempty"`
	TimeEstimate              string   `json:"-"`
	NotifyAll                 *bool    `json:"notify_all,omitempty"`
	Parent                    string   `json:"parent,omitempty"`
	LinksTo                   string   `json:"links_to,omitempty"`
	CheckRequiredCustomFields *bool    `json:"check_required_custom_fields,omitempty"`
}

type createTaskPayload struct {
	CreateTaskRequest
	DueDate      json.Number `json:"due_date,omitempty"`
	StartDate    json.Number `json:"start_date,omitempty"`
	TimeEstimate json.Number `json:"time_estimate,omitempty"`
}

// UpdateTaskRequest is the body of [Client.UpdateTask]. Zero fields are left unchanged.
type UpdateTaskRequest struct {
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status,omitempty"`
	Priority        *int   `json:"priority,omitempty" validate:"omitempty,min=1,max=4"`
	DueDate         string `json:"-"`
	StartDate       string `json:"-"`
	TimeEstimate    string `json:"-"`
	Parent          string `json:"parent,omitempty"`
	Archived        *bool  `json:"archived,omitempty"`
	AddAssignees    []int  `json:"-"`
	RemoveAssignees []int  `json:"-"`
}

type assigneeDelta struct {
	Add []int `json:"add"`
	Rem []int `json:"rem"`
}

type updateTaskPayload struct {
	UpdateTaskRequest
	DueDate      json.Number    `json:"due_date,omitempty"`
	StartDate    json.Number    `json:"start_date,omitempty"`
	TimeEstimate json.Number    `json:"time_estimate,omitempty"`
	Assignees    *assigneeDelta `json:"assignees,omitempty"`
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	if err := requireID("task", taskID); err != nil {
		return nil, err
	}

	var task Task
	if err := c.get(ctx, endpoint("task", taskID), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTasks fetches a page of the tasks in a list.
func (c *Client) GetTasks(ctx context.Context, listID string, q TaskQuery) (*Tasks, error) {
	if err := requireID("list", listID); err != nil {
		return nil, err
	}
	return c.queryTasks(ctx, endpoint("list", listID, "task"), q)
}

// GetTeamTasks fetches a page of tasks across a whole team, filtered by q.
func (c *Client) GetTeamTasks(ctx context.Context, teamID string, q TaskQuery) (*Tasks, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}
	return c.queryTasks(ctx, endpoint("team", teamID, "task"), q)
}

func (c *Client) queryTasks(ctx context.Context, path string, q TaskQuery) (*Tasks, error) {
	values, err := c.taskQueryValues(q)
	if err != nil {
		return nil, err
	}

	var tasks Tasks
	if err := c.get(ctx, path, values, &tasks); err != nil {
		return nil, err
	}
	return &tasks, nil
}

// CreateTask creates a task in a list.
func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (*Task, error) {
	if err := requireID("list", listID); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	payload := createTaskPayload{CreateTaskRequest: req}
	var err error
	if payload.DueDate, err = c.timestamp(req.DueDate); err != nil {
		return nil, err
	}
	if payload.StartDate, err = c.timestamp(req.StartDate); err != nil {
		return nil, err
	}
	if payload.TimeEstimate, err = c.estimate(req.TimeEstimate); err != nil {
		return nil, err
	}

	var task Task
	if err := c.post(ctx, endpoint("list", listID, "task"), payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask changes a task's attributes and assignees.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (*Task, error) {
	if err := requireID("task", taskID); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	payload := updateTaskPayload{UpdateTaskRequest: req}
	var err error
	if payload.DueDate, err = c.timestamp(req.DueDate); err != nil {
		return nil, err
	}
	if payload.StartDate, err = c.timestamp(req.StartDate); err != nil {
		return nil, err
	}
	if payload.TimeEstimate, err = c.estimate(req.TimeEstimate); err != nil {
		return nil, err
	}
	if len(req.AddAssignees) > 0 || len(req.RemoveAssignees) > 0 {
		payload.Assignees = &assigneeDelta{Add: req.AddAssignees, Rem: req.RemoveAssignees}
		if payload.Assignees.Add == nil {
			payload.Assignees.Add = []int{}
		}
		if payload.Assignees.Rem == nil {
			payload.Assignees.Rem = []int{}
		}
	}

	var task Task
	if err := c.put(ctx, endpoint("task", taskID), payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := requireID("task", taskID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("task", taskID))
}
