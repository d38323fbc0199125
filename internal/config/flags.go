package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a host HTTP bridge address in format [host]:[port]
//	-grpc-address host gRPC bridge address in format [host]:[port]
//	-host-address client: host HTTP bridge address
//	-host-grpc-address client: host gRPC bridge address
//	-data-dir per-user data directory
//	-f notes file path
//	-d settings database DSN
//	-c/-config json file path with configs
//	-hash-key bridge integrity hash key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-save-debounce debounced save delay (e.g., "1s")
//	-rate-limit host requests per second
//	-log-level minimum log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var adapterAddress, adapterGRPCAddress NetAddress
	var dataDir string
	var notesFile string
	var dsn string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var saveDebounce time.Duration
	var rateLimit float64
	var logLevel string

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.Var(&adapterAddress, "host-address", "Host HTTP bridge address host:port")
	fs.Var(&adapterGRPCAddress, "host-grpc-address", "Host gRPC bridge address host:port")
	fs.StringVar(&dataDir, "data-dir", "", "Per-user data directory")
	fs.StringVar(&notesFile, "f", "", "Notes file path")
	fs.StringVar(&dsn, "d", "", "Settings database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Bridge integrity hash key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&saveDebounce, "save-debounce", 0, "Debounced save delay (e.g., 1s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Host bridge requests per second")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			DataDir:  dataDir,
			LogLevel: logLevel,
		},
		Storage: Storage{
			Files: Files{NotesFile: notesFile},
			DB:    DB{DSN: dsn},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			GRPCAddress:    adapterGRPCAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SaveDebounce: saveDebounce},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
