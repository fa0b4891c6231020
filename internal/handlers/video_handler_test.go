package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"site-backend/internal/storage"
)

func TestVideoListFiltersByExtension(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewDiskStore(filepath.Join(root, "uploads"), filepath.Join(root, "videos"))
	require.NoError(t, err)
	for _, name := range []string{"a.mp4", "b.MOV", "c.txt", "d.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(store.VideoDir, name), []byte("x"), 0o644))
	}

	app := fiber.New()
	app.Get("/api/videos", NewVideoHandler(store).List)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.ElementsMatch(t, []string{"a.mp4", "b.MOV"}, got)
}

func TestVideoListMissingDir(t *testing.T) {
	store := &storage.DiskStore{VideoDir: filepath.Join(t.TempDir(), "does-not-exist")}

	app := fiber.New()
	app.Get("/api/videos", NewVideoHandler(store).List)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Failed to fetch videos", body["error"])
}
