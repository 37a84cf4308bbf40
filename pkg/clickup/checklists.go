package clickup

import "context"

// ChecklistItemRequest is the body of [Client.UpdateChecklistItem]. Nil fields are left unchanged.
type ChecklistItemRequest struct {
	Name     string  `json:"name,omitempty"`
	Assignee *int    `json:"assignee,omitempty"`
	Resolved *bool   `json:"resolved,omitempty"`
	Parent   *string `json:"parent,omitempty"`
}

type checklistPayload struct {
	Name     string `json:"name,omitempty"`
	Position *int   `json:"position,omitempty" validate:"omitempty,min=0"`
}

type checklistItemPayload struct {
	Name     string `json:"name" validate:"required"`
	Assignee *int   `json:"assignee,omitempty"`
}

type checklistResponse struct {
	Checklist Checklist `json:"checklist"`
}

// CreateChecklist adds a checklist to a task.
func (c *Client) CreateChecklist(ctx context.Context, taskID, name string) (*Checklist, error) {
	if err := requireID("task", taskID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, argumentError("checklist name is required")
	}

	var resp checklistResponse
	if err := c.post(ctx, endpoint("task", taskID, "checklist"), checklistPayload{Name: name}, &resp); err != nil {
		return nil, err
	}
	return &resp.Checklist, nil
}

// UpdateChecklist renames a checklist or moves it to position.
func (c *Client) UpdateChecklist(ctx context.Context, checklistID, name string, position *int) error {
	if err := requireID("checklist", checklistID); err != nil {
		return err
	}
	body := checklistPayload{Name: name, Position: position}
	if err := validate(body); err != nil {
		return err
	}
	return c.put(ctx, endpoint("checklist", checklistID), body, nil)
}

// DeleteChecklist removes a checklist and its items.
func (c *Client) DeleteChecklist(ctx context.Context, checklistID string) error {
	if err := requireID("checklist", checklistID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("checklist", checklistID))
}

// CreateChecklistItem adds an item to a checklist and returns the updated checklist.
func (c *Client) CreateChecklistItem(ctx context.Context, checklistID, name string, assignee *int) (*Checklist, error) {
	if err := requireID("checklist", checklistID); err != nil {
		return nil, err
	}
	body := checklistItemPayload{Name: name, Assignee: assignee}
	if err := validate(body); err != nil {
		return nil, err
	}

	var resp checklistResponse
	if err := c.post(ctx, endpoint("checklist", checklistID, "checklist_item"), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Checklist, nil
}

// UpdateChecklistItem edits, resolves or nests a checklist item and returns the updated checklist.
func (c *Client) UpdateChecklistItem(ctx context.Context, checklistID, itemID string, req ChecklistItemRequest) (*Checklist, error) {
	if err := requireID("checklist", checklistID); err != nil {
		return nil, err
	}
	if err := requireID("checklist item", itemID); err != nil {
		return nil, err
	}

	var resp checklistResponse
	if err := c.put(ctx, endpoint("checklist", checklistID, "checklist_item", itemID), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Checklist, nil
}

// DeleteChecklistItem removes an item from a checklist.
func (c *Client) DeleteChecklistItem(ctx context.Context, checklistID, itemID string) error {
	if err := requireID("checklist", checklistID); err != nil {
		return err
	}
	if err := requireID("checklist item", itemID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("checklist", checklistID, "checklist_item", itemID))
}
