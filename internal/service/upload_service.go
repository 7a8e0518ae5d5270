package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gcertilab/certilab-api/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UploadKind selects the storage directory and public route of an upload.
type UploadKind string

const (
	UploadKindFile      UploadKind = "files"
	UploadKindSignature UploadKind = "signatures"
	UploadKindLogo      UploadKind = "logos"
)

// UploadService stores multipart uploads on disk under a random name and
// returns the public URL. The original file name only contributes its
// extension.
type UploadService interface {
	Store(kind UploadKind, header *multipart.FileHeader) (string, error)
}

type uploadService struct {
	dirs    map[UploadKind]string
	baseURL string
}

func NewUploadService(cfg *config.Config) UploadService {
	return &uploadService{
		dirs: map[UploadKind]string{
			UploadKindFile:      cfg.Storage.UploadDir,
			UploadKindSignature: cfg.Storage.SignatureDir,
			UploadKindLogo:      cfg.Storage.LogoDir,
		},
		baseURL: cfg.Server.PublicBaseURL,
	}
}

func (s *uploadService) Store(kind UploadKind, header *multipart.FileHeader) (string, error) {
	dir, ok := s.dirs[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind %q", kind)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("preparing upload directory: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload %q: %w", header.Filename, err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing upload file %s: %w", name, err)
	}

	log.Info().Str("kind", string(kind)).Str("file", name).Msg("Upload stored")
	return fmt.Sprintf("%s/%s/%s", s.baseURL, kind, name), nil
}
