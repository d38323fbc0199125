package config

import (
	"fmt"
	"time"
)

// DefaultHostHTTPAddress is used by the host when no listener is configured.
const DefaultHostHTTPAddress = "127.0.0.1:8089"

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used to sign save requests.
	HashKey string
	// DataDir is the per-user data directory (also holds the client log).
	DataDir string
	// LogLevel is the minimum log level.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the host's HTTP bridge address.
	HTTPAddress string
	// GRPCAddress is the host's gRPC bridge address.
	GRPCAddress string
	// RequestTimeout is the timeout for outbound bridge calls; zero disables it.
	RequestTimeout time.Duration
}

// Embedded reports whether no host address is configured, in which case the
// client runs the notes gateway in-process.
func (a ClientAdapter) Embedded() bool {
	return a.HTTPAddress == "" && a.GRPCAddress == ""
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the settings database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local settings database settings.
	DB ClientDB
	// NotesFile is used only in embedded mode.
	NotesFile string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SaveDebounce is the quiet period before a debounced save.
	SaveDebounce time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			DataDir:  cfg.App.DataDir,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:        ClientDB{DSN: cfg.Storage.DB.DSN},
			NotesFile: cfg.Storage.Files.NotesFile,
		},
		Workers: ClientWorkers{SaveDebounce: cfg.Workers.SaveDebounce},
	}

	return clientCfg, clientCfg.validate()
}

// HostApp holds host-side application settings.
type HostApp struct {
	HashKey  string
	Version  string
	LogLevel string
}

// HostStorage holds the host's notes file location.
type HostStorage struct {
	NotesFile string
}

// HostConfig is the configuration view of the privileged host process.
type HostConfig struct {
	App     HostApp
	Storage HostStorage
	Server  Server
}

// GetHostConfig builds and validates the host view. When neither listener
// address is configured the HTTP bridge listens on
// [DefaultHostHTTPAddress].
func GetHostConfig(args []string) (*HostConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	server := cfg.Server
	if server.HTTPAddress == "" && server.GRPCAddress == "" {
		server.HTTPAddress = DefaultHostHTTPAddress
	}

	hostCfg := &HostConfig{
		App: HostApp{
			HashKey:  cfg.App.HashKey,
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Storage: HostStorage{NotesFile: cfg.Storage.Files.NotesFile},
		Server:  server,
	}

	return hostCfg, hostCfg.validate()
}
