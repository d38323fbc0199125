// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values no process can
// run with. Process-specific requirements are checked by the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SaveDebounce < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *HostConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.NotesFile) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.NotesFile) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SaveDebounce <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
