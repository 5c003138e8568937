package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("could not open a new TTY")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "clean exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: context.Canceled},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())

			assert.Equal(t, 1, ui.calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
