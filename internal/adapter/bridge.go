package adapter

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// NewBridge picks the transport from the client config: gRPC when a gRPC
// address is set, HTTP when an HTTP address is set, otherwise the
// in-process bridge over host. host may be nil only when an address is
// configured.
func NewBridge(adapterCfg config.ClientAdapter, appCfg config.ClientApp, host NotesHost, logger *logger.Logger) (Bridge, error) {
	switch {
	case adapterCfg.GRPCAddress != "":
		logger.Info().Str("address", adapterCfg.GRPCAddress).Msg("using gRPC bridge")
		b, err := NewGRPCBridge(adapterCfg, appCfg, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	case adapterCfg.HTTPAddress != "":
		logger.Info().Str("address", adapterCfg.HTTPAddress).Msg("using HTTP bridge")
		return NewHTTPBridge(adapterCfg, appCfg, logger)
	case host != nil:
		logger.Info().Msg("using embedded bridge")
		return NewLocalBridge(host), nil
	default:
		return nil, ErrNoBridgeConfigured
	}
}
