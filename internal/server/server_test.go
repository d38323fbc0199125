package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func newTestServer(t *testing.T, cfg config.Server) Server {
	t.Helper()
	log := logger.Nop()

	storages := store.NewStorages(config.HostStorage{NotesFile: t.TempDir() + "/notes.json"}, store.NewLogNotifier(log), log)
	services, err := service.NewServices(storages, config.HostApp{Version: "9.9.9"}, log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, "", log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, log)
	require.NoError(t, err)
	return srv
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_GRPCPortBusy(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := config.Server{GRPCAddress: lis.Addr().String()}
	handlers, err := handler.NewHandlers(nil, cfg, "", logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunServesBothTransportsUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddr(t), GRPCAddress: freeAddr(t)}
	srv := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/version", cfg.HTTPAddress))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "9.9.9"
	}, 2*time.Second, 20*time.Millisecond)

	bridge, err := adapter.NewGRPCBridge(config.ClientAdapter{GRPCAddress: cfg.GRPCAddress, RequestTimeout: time.Second}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	defer bridge.Close()

	notes, err := bridge.GetNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	srv := newTestServer(t, config.Server{HTTPAddress: lis.Addr().String()})

	err = srv.Run(context.Background())
	assert.Error(t, err)
}
