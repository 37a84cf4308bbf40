package clickup

import "context"

// CommentRequest is the body of [Client.CreateTaskComment] and [Client.CreateChatComment].
type CommentRequest struct {
	CommentText string `json:"comment_text" validate:"required"`
	Assignee    int    `json:"assignee,omitempty"`
	NotifyAll   bool   `json:"notify_all"`
}

// UpdateCommentRequest is the body of [Client.UpdateComment].
type UpdateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required"`
	Assignee    int    `json:"assignee,omitempty"`
	Resolved    *bool  `json:"resolved,omitempty"`
}

// GetTaskComments fetches the comments on a task.
func (c *Client) GetTaskComments(ctx context.Context, taskID string) (*Comments, error) {
	return c.comments(ctx, "task", taskID)
}

// GetListComments fetches the comments on a list.
func (c *Client) GetListComments(ctx context.Context, listID string) (*Comments, error) {
	return c.comments(ctx, "list", listID)
}

// GetChatComments fetches the comments in a chat view.
func (c *Client) GetChatComments(ctx context.Context, viewID string) (*Comments, error) {
	return c.comments(ctx, "view", viewID)
}

func (c *Client) comments(ctx context.Context, kind, id string) (*Comments, error) {
	if err := requireID(kind, id); err != nil {
		return nil, err
	}

	var comments Comments
	if err := c.get(ctx, endpoint(kind, id, "comment"), nil, &comments); err != nil {
		return nil, err
	}
	return &comments, nil
}

// CreateTaskComment posts a comment on a task.
func (c *Client) CreateTaskComment(ctx context.Context, taskID string, req CommentRequest) (*CommentCreated, error) {
	return c.createComment(ctx, "task", taskID, req)
}

// CreateChatComment posts a comment in a chat view.
func (c *Client) CreateChatComment(ctx context.Context, viewID string, req CommentRequest) (*CommentCreated, error) {
	return c.createComment(ctx, "view", viewID, req)
}

func (c *Client) createComment(ctx context.Context, kind, id string, req CommentRequest) (*CommentCreated, error) {
	if err := requireID(kind, id); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	var created CommentCreated
	if err := c.post(ctx, endpoint(kind, id, "comment"), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComment edits, reassigns or resolves a comment.
func (c *Client) UpdateComment(ctx context.Context, commentID string, req UpdateCommentRequest) error {
	if err := requireID("comment", commentID); err != nil {
		return err
	}
	if err := validate(req); err != nil {
		return err
	}
	return c.put(ctx, endpoint("comment", commentID), req, nil)
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	if err := requireID("comment", commentID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("comment", commentID))
}
