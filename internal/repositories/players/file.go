package players

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/storage/jsonfile"
)

const (
	fileNameFormat = "player_%04d.json"
	filePrefix     = "player_"
	fileSuffix     = ".json"

	errPlayerNil        = "player cannot be nil"
	errPlayerIDNegative = "player ID cannot be negative"
)

func errInvalid(msg string) error {
	return errors.InvalidArgument(msg)
}

// FileName returns the record file name for playerID.
func FileName(playerID int) string {
	return fmt.Sprintf(fileNameFormat, playerID)
}

// parseFileName is the inverse of FileName.
func parseFileName(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
	if err != nil || id < 0 || FileName(id) != name {
		return 0, false
	}
	return id, true
}

// FileConfig contains configuration for the file-backed player repository
type FileConfig struct {
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	return vb.Build()
}

type fileRepository struct {
	dir string
}

// NewFile creates a repository storing one JSON file per player under cfg.Dir
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{dir: cfg.Dir}, nil
}

func (r *fileRepository) path(playerID int) string {
	return filepath.Join(r.dir, FileName(playerID))
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	var player entities.Player
	if err := jsonfile.Load(r.path(input.PlayerID), &player); err != nil {
		slog.DebugContext(ctx, "player load failed", "player_id", input.PlayerID, "error", err)
		return nil, errors.Wrapf(err, "failed to load player %d", input.PlayerID)
	}
	player.Normalize()
	return &GetOutput{Player: &player}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	if err := jsonfile.Save(r.path(input.Player.PlayerID), input.Player); err != nil {
		slog.WarnContext(ctx, "player save failed", "player_id", input.Player.PlayerID, "error", err)
		return nil, errors.Wrapf(err, "failed to save player %d", input.Player.PlayerID)
	}
	return &SaveOutput{Player: input.Player}, nil
}

func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ListOutput{PlayerIDs: []int{}}, nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to list %s", r.dir)
	}

	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := parseFileName(entry.Name())
		if !ok {
			slog.DebugContext(ctx, "skipping non-player file", "file", entry.Name())
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return &ListOutput{PlayerIDs: ids}, nil
}
