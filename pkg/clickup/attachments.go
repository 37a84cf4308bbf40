package clickup

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// UploadAttachment attaches the file at path to a task.
func (c *Client) UploadAttachment(ctx context.Context, taskID, path string) (*Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, argumentError("cannot open attachment %s: %v", path, err)
	}
	defer f.Close()

	return c.UploadAttachmentReader(ctx, taskID, filepath.Base(path), f)
}

// UploadAttachmentReader attaches the contents of r to a task under filename.
//
// The body is multipart form data with a "filename" field and an "attachment" file part.
func (c *Client) UploadAttachmentReader(ctx context.Context, taskID, filename string, r io.Reader) (*Attachment, error) {
	if err := requireID("task", taskID); err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, argumentError("attachment filename is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("filename", filename); err != nil {
		return nil, transportError("failed to write multipart field", err)
	}
	part, err := w.CreateFormFile("attachment", filename)
	if err != nil {
		return nil, transportError("failed to create multipart file", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, transportError("failed to copy attachment", err)
	}
	if err := w.Close(); err != nil {
		return nil, transportError("failed to close multipart writer", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(endpoint("task", taskID, "attachment"), nil), &buf)
	if err != nil {
		return nil, transportError("failed to create request", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var att Attachment
	if err := c.send(req, &att); err != nil {
		return nil, err
	}
	return &att, nil
}
