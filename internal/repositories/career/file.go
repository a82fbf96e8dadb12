package career

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/sirupsen/logrus"
)

// FileConfig holds configuration for the file career repository
type FileConfig struct {
	// Path is the JSON document the career is stored in
	Path string

	Logger *logrus.Entry
}

// fileRepository stores a single career as one JSON document on disk
type fileRepository struct {
	path string
	log  *logrus.Entry
	mu   sync.Mutex
}

// NewFile creates a file-backed career repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithService("career_repository")
	}

	return &fileRepository{
		path: cfg.Path,
		log:  log,
	}, nil
}

// SaveCareer writes the career, replacing whatever the file held
func (r *fileRepository) SaveCareer(ctx context.Context, input *SaveCareerInput) error {
	if input == nil || input.Career == nil {
		return errors.New("input and career cannot be nil")
	}
	if input.Career.ID == "" {
		return errors.New("career ID cannot be empty")
	}

	data, err := json.MarshalIndent(input.Career, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal career: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	// Write then rename so a crash never leaves a half-written save
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write career: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write career: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to save career: %w", err)
	}

	return nil
}

// GetCareer loads the stored career when its ID matches
func (r *fileRepository) GetCareer(ctx context.Context, input *GetCareerInput) (*models.Career, error) {
	if input == nil || input.CareerID == "" {
		return nil, errors.New("input and career ID cannot be empty")
	}

	c, err := r.load()
	if err != nil {
		return nil, err
	}
	if c.ID != input.CareerID {
		return nil, ErrCareerNotFound
	}
	return c, nil
}

// GetCareerByOwner loads the stored career when its owner matches
func (r *fileRepository) GetCareerByOwner(ctx context.Context, input *GetCareerByOwnerInput) (*models.Career, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	c, err := r.load()
	if err != nil {
		return nil, err
	}
	if c.OwnerID != input.OwnerID {
		return nil, ErrCareerNotFound
	}
	return c, nil
}

// DeleteCareer removes the document when it holds the given career
func (r *fileRepository) DeleteCareer(ctx context.Context, input *DeleteCareerInput) error {
	if input == nil || input.CareerID == "" {
		return errors.New("input and career ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.read()
	if err != nil {
		return err
	}

	var doc struct {
		ID string `json:"id"`
	}
	// A corrupt document is deleted regardless of its contents
	if json.Unmarshal(data, &doc) == nil && doc.ID != input.CareerID {
		return ErrCareerNotFound
	}

	if err := os.Remove(r.path); err != nil {
		return fmt.Errorf("failed to delete career: %w", err)
	}
	return nil
}

// ListCareers returns the ID of the stored career, if any
func (r *fileRepository) ListCareers(ctx context.Context, input *ListCareersInput) (*ListCareersOutput, error) {
	c, err := r.load()
	if errors.Is(err, ErrCareerNotFound) {
		return &ListCareersOutput{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ListCareersOutput{CareerIDs: []string{c.ID}}, nil
}

func (r *fileRepository) load() (*models.Career, error) {
	r.mu.Lock()
	data, err := r.read()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return decodeCareer(data, r.log)
}

// read returns the raw document; callers hold the lock
func (r *fileRepository) read() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("failed to read career: %w", err)
	}
	return data, nil
}
