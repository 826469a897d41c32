package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStorage is the consumed contract of the object store: upload by
// path, resolve a public URL, delete by path.
type ObjectStorage interface {
	Upload(path string, data []byte) error
	PublicURL(path string) string
	Delete(path string) error
}

// DiskStorage keeps objects on local disk under Dir and serves them
// statically under BaseURL/uploads/.
type DiskStorage struct {
	Dir     string
	BaseURL string
}

func NewDiskStorage(dir, baseURL string) *DiskStorage {
	return &DiskStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStorage) Upload(path string, data []byte) error {
	full := filepath.Join(s.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0644)
}

func (s *DiskStorage) PublicURL(path string) string {
	return s.BaseURL + "/uploads/" + path
}

func (s *DiskStorage) Delete(path string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// DishImagePath builds a unique storage path for a dish image.
func DishImagePath() string {
	return fmt.Sprintf("dishes/%d-%s.jpg", time.Now().UnixMilli(), uuid.NewString()[:8])
}
