package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/autoshop-backend/internal/app"
	"github.com/unclebandit/autoshop-backend/internal/config"
	"github.com/unclebandit/autoshop-backend/internal/logging"
	"github.com/unclebandit/autoshop-backend/internal/notify"
)

func TestNewWithFileStore(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	cfg := config.Config{
		DataDir:       dataDir,
		StoreDriver:   config.DriverJSON,
		SMSTransport:  config.TransportDirect,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	a, err := app.New(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer a.Close()

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NotNil(t, a.SubmissionController)
	assert.NotNil(t, a.RecordHandler)
	assert.NoError(t, a.RecordHandler.Auth.Login("admin", "admin123"))
}

func TestNewProvider(t *testing.T) {
	p, closer, err := app.NewProvider(config.Config{SMSTransport: config.TransportDirect})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, closer)

	p, closer, err = app.NewProvider(config.Config{
		SMSTransport:     config.TransportDirect,
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "token",
		TwilioFromNumber: "+15005550006",
	})
	require.NoError(t, err)
	assert.IsType(t, &notify.TwilioProvider{}, p)
	assert.Nil(t, closer)
}
