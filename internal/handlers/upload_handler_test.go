package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"site-backend/internal/storage"
)

func newUploadApp(t *testing.T) (*fiber.App, *storage.DiskStore) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewDiskStore(root+"/uploads", root+"/videos")
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/upload", NewUploadHandler(store).Upload)
	return app, store
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadVideoFieldGoesToVideoDir(t *testing.T) {
	app, store := newUploadApp(t)

	body, ct := multipartBody(t, "video", "clip.mp4", "fake mp4 bytes")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "File uploaded successfully", got["message"])

	names := dirEntries(t, store.VideoDir)
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], "-clip.mp4"), "got %q", names[0])
	require.Empty(t, dirEntries(t, store.UploadDir))
}

func TestUploadFileFieldGoesToUploadDir(t *testing.T) {
	app, store := newUploadApp(t)

	body, ct := multipartBody(t, "file", "photo.jpg", "fake jpg bytes")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	names := dirEntries(t, store.UploadDir)
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], "-photo.jpg"), "got %q", names[0])
	require.Empty(t, dirEntries(t, store.VideoDir))
}

func TestUploadOtherFieldGoesToUploadDir(t *testing.T) {
	app, store := newUploadApp(t)

	body, ct := multipartBody(t, "attachment", "quote.pdf", "fake pdf bytes")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	names := dirEntries(t, store.UploadDir)
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], "-quote.pdf"), "got %q", names[0])
	require.Empty(t, dirEntries(t, store.VideoDir))
}

func TestUploadWithoutFileStillAcks(t *testing.T) {
	app, store := newUploadApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file attached"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Empty(t, dirEntries(t, store.UploadDir))
	require.Empty(t, dirEntries(t, store.VideoDir))
}
