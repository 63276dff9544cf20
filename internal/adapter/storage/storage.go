// Package storage keeps uploaded report files on local disk or Cloudinary.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"agency-desk/internal/config/configs"
	"agency-desk/internal/core/port"
)

// New returns the file store selected by cfg.Provider.
func New(cfg configs.Storage) (port.FileStore, error) {
	if cfg.Provider == configs.StorageCloudinary {
		return NewCloudinaryStore(cfg.CloudinaryURL, cfg.Folder)
	}
	return NewLocalStore(cfg.Dir, cfg.PublicBaseURL)
}

// LocalStore writes files below a directory that the HTTP server exposes
// under baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

// CloudinaryStore uploads files to a Cloudinary folder.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(url, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     strings.TrimSuffix(name, filepath.Ext(name)),
		Folder:       s.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
