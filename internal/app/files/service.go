package files

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/mindxandria/library-backend/internal/domain/errors"
)

// Service stores cover images on local disk under unique names.
type Service struct {
	root string
}

func New(uploadDir string) (*Service, error) {
	root, err := filepath.Abs(uploadDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Service{root: root}, nil
}

// Store writes the stream under a uuid-prefixed variant of its original name
// and returns the stored name.
func (s *Service) Store(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(originalName)
	if strings.Contains(name, "..") {
		return "", domainErrors.NewInvalidArgument("file name contains an invalid path sequence: " + name)
	}

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return name, nil
}

// Load opens a stored file. The resolved path must stay inside the upload
// root; anything else is treated as not found.
func (s *Service) Load(name string) (*os.File, string, error) {
	path := filepath.Join(s.root, filepath.Clean("/"+name))
	if !strings.HasPrefix(path, s.root+string(os.PathSeparator)) {
		return nil, "", domainErrors.ErrNotFound
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, "", domainErrors.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}
