package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDirName is the directory created under the user config dir.
	AppDirName = "go-notes-keeper"

	// NotesFileName is the name of the notes document inside the data dir.
	NotesFileName = "notes.json"

	// SettingsFileName is the name of the settings database inside the
	// data dir.
	SettingsFileName = "settings.db"

	// DefaultSaveDebounce is the quiet period before a debounced save.
	DefaultSaveDebounce = time.Second

	// DefaultVersion is reported when no version is configured.
	DefaultVersion = "dev"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// defaultConfig returns the fallback values. dataDir, when non-empty,
// overrides the per-user location used for the derived file paths.
func defaultConfig(dataDir string) (*StructuredConfig, error) {
	if dataDir == "" {
		base, err := userConfigDir()
		if err != nil {
			return nil, fmt.Errorf("error resolving user data dir: %w", err)
		}
		dataDir = filepath.Join(base, AppDirName)
	}

	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			DataDir:  dataDir,
			LogLevel: "debug",
		},
		Storage: Storage{
			Files: Files{NotesFile: filepath.Join(dataDir, NotesFileName)},
			DB:    DB{DSN: filepath.Join(dataDir, SettingsFileName)},
		},
		Workers: Workers{SaveDebounce: DefaultSaveDebounce},
	}, nil
}
