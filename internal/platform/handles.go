package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/model"
)

// Handle file constants
const (
	HandleDirName         = "colock-player"
	HandleFilePrefix      = "voice-"
	DefaultAudioExtension = ".wav"
	HandleFilePermissions = 0600
)

// ErrHandleReleased is returned when a handle is released a second time
var ErrHandleReleased = errors.New("playback handle already released")

// Handle is a short-lived playback handle backed by a temp file.
// It must be released exactly once.
type Handle struct {
	path     string
	mu       sync.Mutex
	released bool
}

// Path returns the file the player reads from
func (h *Handle) Path() string {
	return h.path
}

// Release removes the backing file. A second call returns ErrHandleReleased
// and leaves the filesystem untouched.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return ErrHandleReleased
	}
	h.released = true

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", h.path, err)
	}
	return nil
}

// Released reports whether Release has been called
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// HandleStore derives playback handles from audio assets
type HandleStore struct {
	dir    string
	logger *zap.SugaredLogger
}

// NewHandleStore creates a store writing into dir. An empty dir means a
// subdirectory of the OS temp directory.
func NewHandleStore(dir string, logger *zap.SugaredLogger) *HandleStore {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), HandleDirName)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &HandleStore{dir: dir, logger: logger}
}

// Dir returns the directory handles are created in
func (s *HandleStore) Dir() string {
	return s.dir
}

// Create writes the asset to a new temp file and returns its handle
func (s *HandleStore) Create(asset *model.AudioAsset) (*Handle, error) {
	if asset.Size() == 0 {
		return nil, fmt.Errorf("audio asset is empty")
	}

	if err := CreateDirectoryIfNotExists(s.dir); err != nil {
		return nil, fmt.Errorf("failed to create handle directory: %w", err)
	}

	detected := mimetype.Detect(asset.Data)
	ext := detected.Extension()
	if ext == "" || !isAudioMIME(detected) {
		s.logger.Warnf("Voice payload detected as %s (declared %q), storing as %s", detected.String(), asset.ContentType, DefaultAudioExtension)
		ext = DefaultAudioExtension
	}

	path := filepath.Join(s.dir, HandleFilePrefix+generateHandleID()+ext)
	if err := os.WriteFile(path, asset.Data, HandleFilePermissions); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &Handle{path: path}, nil
}

func isAudioMIME(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "audio/") {
			return true
		}
	}
	return false
}

// generateHandleID generates a unique, time-ordered handle name
func generateHandleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
