package clickup

import (
	"context"
	"encoding/json"
)

// ListRequest is the body of [Client.CreateList] and [Client.CreateFolderlessList].
//
// DueDate accepts a Unix millisecond timestamp or free text such as "march 2 2021".
type ListRequest struct {
	Name        string `json:"name" validate:"required"`
	Content     string `json:"content,omitempty"`
	DueDate     string `json:"-"`
	DueDateTime *bool  `json:"due_date_time,omitempty"`
	Priority    *int   `json:"priority,omitempty" validate:"omitempty,min=1,max=4"`
	Assignee    int    `json:"assignee,omitempty"`
	Status      string `json:"status,omitempty"`
}

type listPayload struct {
	ListRequest
	DueDate json.Number `json:"due_date,omitempty"`
}

// UpdateListRequest is the body of [Client.UpdateList]. Zero fields are left unchanged.
type UpdateListRequest struct {
	Name        string `json:"name,omitempty"`
	Content     string `json:"content,omitempty"`
	DueDate     string `json:"-"`
	DueDateTime *bool  `json:"due_date_time,omitempty"`
	Priority    *int   `json:"priority,omitempty" validate:"omitempty,min=1,max=4"`
	Assignee    int    `json:"assignee,omitempty"`
	UnsetStatus *bool  `json:"unset_status,omitempty"`
}

type updateListPayload struct {
	UpdateListRequest
	DueDate json.Number `json:"due_date,omitempty"`
}

// GetList fetches a single list.
func (c *Client) GetList(ctx context.Context, listID string) (*List, error) {
	if err := requireID("list", listID); err != nil {
		return nil, err
	}

	var list List
	if err := c.get(ctx, endpoint("list", listID), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetLists fetches the lists in a folder.
func (c *Client) GetLists(ctx context.Context, folderID string) (*Lists, error) {
	if err := requireID("folder", folderID); err != nil {
		return nil, err
	}

	var lists Lists
	if err := c.get(ctx, endpoint("folder", folderID, "list"), nil, &lists); err != nil {
		return nil, err
	}
	return &lists, nil
}

// GetFolderlessLists fetches the lists that sit directly in a space.
func (c *Client) GetFolderlessLists(ctx context.Context, spaceID string) (*Lists, error) {
	if err := requireID("space", spaceID); err != nil {
		return nil, err
	}

	var lists Lists
	if err := c.get(ctx, endpoint("space", spaceID, "list"), nil, &lists); err != nil {
		return nil, err
	}
	return &lists, nil
}

// CreateList creates a list in a folder.
func (c *Client) CreateList(ctx context.Context, folderID string, req ListRequest) (*List, error) {
	if err := requireID("folder", folderID); err != nil {
		return nil, err
	}
	return c.createList(ctx, endpoint("folder", folderID, "list"), req)
}

// CreateFolderlessList creates a list directly in a space.
func (c *Client) CreateFolderlessList(ctx context.Context, spaceID string, req ListRequest) (*List, error) {
	if err := requireID("space", spaceID); err != nil {
		return nil, err
	}
	return c.createList(ctx, endpoint("space", spaceID, "list"), req)
}

func (c *Client) createList(ctx context.Context, path string, req ListRequest) (*List, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	due, err := c.timestamp(req.DueDate)
	if err != nil {
		return nil, err
	}

	var list List
	if err := c.post(ctx, path, listPayload{ListRequest: req, DueDate: due}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateList changes a list's attributes.
func (c *Client) UpdateList(ctx context.Context, listID string, req UpdateListRequest) (*List, error) {
	if err := requireID("list", listID); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	due, err := c.timestamp(req.DueDate)
	if err != nil {
		return nil, err
	}

	var list List
	if err := c.put(ctx, endpoint("list", listID), updateListPayload{UpdateListRequest: req, DueDate: due}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteList removes a list.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	if err := requireID("list", listID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("list", listID))
}

// AddTaskToList adds an existing task to an additional list.
func (c *Client) AddTaskToList(ctx context.Context, taskID, listID string) error {
	if err := requireID("task", taskID); err != nil {
		return err
	}
	if err := requireID("list", listID); err != nil {
		return err
	}
	return c.post(ctx, endpoint("list", listID, "task", taskID), nil, nil)
}

// RemoveTaskFromList removes a task from a list other than its home list.
func (c *Client) RemoveTaskFromList(ctx context.Context, taskID, listID string) error {
	if err := requireID("task", taskID); err != nil {
		return err
	}
	if err := requireID("list", listID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("list", listID, "task", taskID))
}
