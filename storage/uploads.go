package storage

import (
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploads stores article images under a public directory served at /uploads.
type Uploads struct {
	dir string
}

func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// EnsureDirs creates the public directory tree on startup.
func EnsureDirs(publicDir, uploadsDir string) error {
	dirs := []string{
		publicDir,
		uploadsDir,
		filepath.Join(publicDir, "css"),
		filepath.Join(publicDir, "js"),
	}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			log.Printf("Created directory: %s", dir)
		}
	}
	return nil
}

// SaveImage persists an uploaded file under a fresh name and returns the path
// it will be served from. The stored name keeps the original extension only.
func (u *Uploads) SaveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(u.dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
