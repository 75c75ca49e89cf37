package asana

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (c *Client) ListAttachments(ctx context.Context, taskID string) ([]Attachment, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	return getList[Attachment](ctx, c, resourcePath(segTasks, taskID, segAttachments))
}

// UploadAttachment sends r as a multipart form with a single part named
// "file" carrying fileName and contentType.
func (c *Client) UploadAttachment(ctx context.Context, taskID string, r io.Reader, fileName, contentType string) (*Attachment, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	if err := notNil("file", r, "File stream cannot be nil"); err != nil {
		return nil, err
	}
	if err := required("fileName", fileName, "File name cannot be empty"); err != nil {
		return nil, err
	}
	if err := required("contentType", contentType, "Content type cannot be empty"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, formFieldFile, quoteEscaper.Replace(fileName)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read attachment %s: %w", fileName, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	path := resourcePath(segTasks, taskID, segAttachments)
	respBody, err := c.send(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(respBody)
	if err != nil {
		return nil, err
	}
	return one[Attachment](env)
}

// AttachURL links an external resource to a task.
func (c *Client) AttachURL(ctx context.Context, taskID, attachmentURL string) (*Attachment, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	if err := required("url", attachmentURL, "Attachment URL cannot be empty"); err != nil {
		return nil, err
	}
	body := struct {
		URL string `json:"url"`
	}{URL: attachmentURL}
	return getOne[Attachment](ctx, c, http.MethodPost, resourcePath(segTasks, taskID, segAttachments), body)
}
