package clickup

import "context"

// GetSpaceTags fetches the tags defined in a space.
func (c *Client) GetSpaceTags(ctx context.Context, spaceID string) (*Tags, error) {
	if err := requireID("space", spaceID); err != nil {
		return nil, err
	}

	var tags Tags
	if err := c.get(ctx, endpoint("space", spaceID, "tag"), nil, &tags); err != nil {
		return nil, err
	}
	return &tags, nil
}

// CreateSpaceTag defines a new tag in a space.
func (c *Client) CreateSpaceTag(ctx context.Context, spaceID string, tag Tag) error {
	if err := requireID("space", spaceID); err != nil {
		return err
	}
	if tag.Name == "" {
		return argumentError("tag name is required")
	}

	body := struct {
		Tag Tag `json:"tag"`
	}{Tag: Tag{Name: tag.Name, TagFg: tag.TagFg, TagBg: tag.TagBg}}
	return c.post(ctx, endpoint("space", spaceID, "tag"), body, nil)
}

// TagTask applies an existing space tag to a task.
func (c *Client) TagTask(ctx context.Context, taskID, tagName string) error {
	if err := requireID("task", taskID); err != nil {
		return err
	}
	if tagName == "" {
		return argumentError("tag name is required")
	}
	return c.post(ctx, endpoint("task", taskID, "tag", tagName), nil, nil)
}

// UntagTask removes a tag from a task.
func (c *Client) UntagTask(ctx context.Context, taskID, tagName string) error {
	if err := requireID("task", taskID); err != nil {
		return err
	}
	if tagName == "" {
		return argumentError("tag name is required")
	}
	return c.delete(ctx, endpoint("task", taskID, "tag", tagName))
}
