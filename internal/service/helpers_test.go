package service

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
)

func configHostApp(version string) config.HostApp {
	return config.HostApp{Version: version}
}

func configClientWorkers() config.ClientWorkers {
	return config.ClientWorkers{SaveDebounce: time.Hour}
}
