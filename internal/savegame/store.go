package savegame

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/utils"
	"github.com/osse101/Mansion_Go/internal/validation"
)

// Store persists a single save snapshot
type Store interface {
	// Save replaces the stored snapshot
	Save(ctx context.Context, state *domain.SaveState) error

	// Load returns the stored snapshot. It returns domain.ErrNoSave when
	// nothing has been saved and wraps domain.ErrCorruptSave when the stored
	// data cannot be trusted.
	Load(ctx context.Context) (*domain.SaveState, error)
}

type fileStore struct {
	path            string
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewFileStore creates a store backed by one JSON file
func NewFileStore(path string) Store {
	return &fileStore{
		path:            path,
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(),
	}
}

// Save writes the snapshot, overwriting any previous save
func (s *fileStore) Save(ctx context.Context, state *domain.SaveState) error {
	if err := utils.SaveJSON(s.path, state); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSaved, "path", s.path)
	return nil
}

// Load reads, schema-validates and decodes the snapshot
func (s *fileStore) Load(ctx context.Context) (*domain.SaveState, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoSave
		}
		return nil, fmt.Errorf(ErrFmtReadFailed, s.path, err)
	}

	if err := s.schemaValidator.ValidateBytes(data, validation.SaveSchema); err != nil {
		log.Warn(LogMsgSchemaRejected, "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptSave, err)
	}

	var state domain.SaveState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptSave, err)
	}

	if err := s.validate.Struct(&state); err != nil {
		log.Warn(LogMsgStructRejected, "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptSave, err)
	}

	log.Info(LogMsgLoaded, "path", s.path, "version", state.Version)
	return &state, nil
}
