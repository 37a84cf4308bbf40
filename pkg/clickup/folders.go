package clickup

import "context"

type folderPayload struct {
	Name string `json:"name" validate:"required"`
}

// GetFolder fetches a single folder with its lists.
func (c *Client) GetFolder(ctx context.Context, folderID string) (*Folder, error) {
	if err := requireID("folder", folderID); err != nil {
		return nil, err
	}

	var folder Folder
	if err := c.get(ctx, endpoint("folder", folderID), nil, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetFolders fetches the folders of a space.
func (c *Client) GetFolders(ctx context.Context, spaceID string) (*Folders, error) {
	if err := requireID("space", spaceID); err != nil {
		return nil, err
	}

	var folders Folders
	if err := c.get(ctx, endpoint("space", spaceID, "folder"), nil, &folders); err != nil {
		return nil, err
	}
	return &folders, nil
}

// CreateFolder creates a folder in a space.
func (c *Client) CreateFolder(ctx context.Context, spaceID, name string) (*Folder, error) {
	if err := requireID("space", spaceID); err != nil {
		return nil, err
	}
	body := folderPayload{Name: name}
	if err := validate(body); err != nil {
		return nil, err
	}

	var folder Folder
	if err := c.post(ctx, endpoint("space", spaceID, "folder"), body, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder renames a folder.
func (c *Client) UpdateFolder(ctx context.Context, folderID, name string) (*Folder, error) {
	if err := requireID("folder", folderID); err != nil {
		return nil, err
	}
	body := folderPayload{Name: name}
	if err := validate(body); err != nil {
		return nil, err
	}

	var folder Folder
	if err := c.put(ctx, endpoint("folder", folderID), body, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder and its lists.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	if err := requireID("folder", folderID); err != nil {
		return err
	}
	return c.delete(ctx, endpoint("folder", folderID))
}
