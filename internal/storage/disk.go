package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStore is the local-disk home for uploaded files. The "video" form
// field routes into VideoDir, every other field into UploadDir.
type DiskStore struct {
	UploadDir string
	VideoDir  string
}

func NewDiskStore(uploadDir, videoDir string) (*DiskStore, error) {
	for _, dir := range []string{uploadDir, videoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &DiskStore{UploadDir: uploadDir, VideoDir: videoDir}, nil
}

// DestPath builds the destination for an incoming file: the current time in
// milliseconds joined to the client's original filename. Two uploads landing
// in the same millisecond with the same name overwrite each other; that
// matches the behavior the frontend was built against.
func (s *DiskStore) DestPath(field, originalName string) string {
	dir := s.UploadDir
	if field == "video" {
		dir = s.VideoDir
	}
	return filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName))
}

// ListVideos enumerates VideoDir and keeps .mp4 and .mov entries,
// case-insensitively. Order is whatever the directory read yields.
func (s *DiskStore) ListVideos() ([]string, error) {
	entries, err := os.ReadDir(s.VideoDir)
	if err != nil {
		return nil, err
	}
	videos := []string{}
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".mp4" || ext == ".mov" {
			videos = append(videos, e.Name())
		}
	}
	return videos, nil
}
