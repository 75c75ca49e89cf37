package asana

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAttachment_SinglePartNamedFile(t *testing.T) {
	type part struct {
		form, file, contentType, body string
	}
	var parts []part

	c := newTestServer(t, func(r chi.Router) {
		r.Post("/tasks/{taskID}/attachments", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "123", chi.URLParam(r, "taskID"))
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

			mr, err := r.MultipartReader()
			require.NoError(t, err)
			for {
				p, err := mr.NextPart()
				if errors.Is(err, io.EOF) {
					break
				}
				require.NoError(t, err)
				b, err := io.ReadAll(p)
				require.NoError(t, err)
				parts = append(parts, part{
					form:        p.FormName(),
					file:        p.FileName(),
					contentType: p.Header.Get("Content-Type"),
					body:        string(b),
				})
			}
			writeData(t, w, http.StatusOK, Attachment{GID: "789", Name: "test.txt"})
		})
	})

	att, err := c.UploadAttachment(context.Background(), "123", strings.NewReader("hello attachment"), "test.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "789", att.GID)
	assert.Equal(t, "test.txt", att.Name)

	require.Len(t, parts, 1)
	assert.Equal(t, part{form: "file", file: "test.txt", contentType: "text/plain", body: "hello attachment"}, parts[0])
}

func TestUploadAttachment_QuotedFileName(t *testing.T) {
	var name string
	c := newTestServer(t, func(r chi.Router) {
		r.Post("/tasks/{taskID}/attachments", func(w http.ResponseWriter, r *http.Request) {
			mr, err := r.MultipartReader()
			require.NoError(t, err)
			p, err := mr.NextPart()
			require.NoError(t, err)
			name = p.FileName()
			writeData(t, w, http.StatusOK, Attachment{GID: "1", Name: name})
		})
	})

	_, err := c.UploadAttachment(context.Background(), "1", strings.NewReader("x"), `say "hi".txt`, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, `say "hi".txt`, name)
}

func TestUploadAttachment_APIError(t *testing.T) {
	c := newTestServer(t, func(r chi.Router) {
		r.Post("/tasks/{taskID}/attachments", func(w http.ResponseWriter, r *http.Request) {
			writeErrors(t, w, http.StatusRequestEntityTooLarge, "File is too large")
		})
	})

	var seen []string
	c.OnError(func(err *APIError) { seen = append(seen, err.Error()) })

	_, err := c.UploadAttachment(context.Background(), "1", strings.NewReader("x"), "a.bin", "application/octet-stream")
	require.EqualError(t, err, "API Error: File is too large")
	assert.Equal(t, []string{"API Error: File is too large"}, seen)
}

func TestListAttachments(t *testing.T) {
	c := newTestServer(t, func(r chi.Router) {
		r.Get("/tasks/{taskID}/attachments", func(w http.ResponseWriter, r *http.Request) {
			writeData(t, w, http.StatusOK, []Attachment{{GID: "1", Name: "a.png"}, {GID: "2", Name: "b.pdf"}})
		})
	})

	got, err := c.ListAttachments(context.Background(), "456")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b.pdf", got[1].Name)
}

func TestAttachURL(t *testing.T) {
	var body struct {
		URL string `json:"url"`
	}
	c := newTestServer(t, func(r chi.Router) {
		r.Post("/tasks/{taskID}/attachments", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			readData(t, r, &body)
			writeData(t, w, http.StatusOK, Attachment{GID: "9", Name: "design doc", ViewURL: body.URL})
		})
	})

	att, err := c.AttachURL(context.Background(), "1", "https://example.com/design")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/design", body.URL)
	assert.Equal(t, "https://example.com/design", att.ViewURL)
}
