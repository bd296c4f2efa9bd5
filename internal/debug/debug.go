package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	logger *zap.SugaredLogger
	inited bool
)

// Init opens debug logging to the given file path. An empty path falls
// back to the FLEXEL_DEBUG environment variable; if that is also unset,
// logging stays a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	inited = true

	if path == "" {
		path = os.Getenv("FLEXEL_DEBUG")
	}
	if path == "" {
		logger = zap.NewNop().Sugar()
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(f),
		zapcore.DebugLevel,
	)
	logger = zap.New(core).Sugar()
	return nil
}

// Close flushes and releases the debug logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		err := logger.Sync()
		logger = nil
		inited = false
		return err
	}
	return nil
}

// Log writes a formatted message to the debug log. Safe to call before
// Init; the first call self-initializes from the environment.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !inited {
		initLocked("")
	}
	if logger != nil {
		logger.Debugf(format, args...)
	}
}
