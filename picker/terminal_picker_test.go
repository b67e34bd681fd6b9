package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
)

func TestTerminalPicker_PickApplication(t *testing.T) {
	apps := catalog.Default().Summaries()[:3]

	var gotTitle string
	var gotOptions []huh.Option[catalog.AppKey]
	p := NewTerminalPicker(WithTitle("Pick one"))
	p.selectApp = func(_ context.Context, title string, options []huh.Option[catalog.AppKey]) (catalog.AppKey, error) {
		gotTitle, gotOptions = title, options
		return options[2].Value, nil
	}

	key, err := p.PickApplication(context.Background(), apps)
	require.NoError(t, err)
	assert.Equal(t, catalog.Google, key)
	assert.Equal(t, "Pick one", gotTitle)
	require.Len(t, gotOptions, 3)
	assert.Equal(t, "Apple Maps", gotOptions[0].Key)
	assert.Equal(t, catalog.Apple, gotOptions[0].Value)
	assert.Equal(t, "HERE Maps", gotOptions[1].Key)
}

func TestTerminalPicker_PickApplication_WithoutPrompt(t *testing.T) {
	p := NewTerminalPicker()
	p.selectApp = func(context.Context, string, []huh.Option[catalog.AppKey]) (catalog.AppKey, error) {
		t.Fatal("prompt shown")
		return "", nil
	}

	_, err := p.PickApplication(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoApplications)

	key, err := p.PickApplication(context.Background(), []catalog.Summary{{Key: catalog.Waze, DisplayName: "Waze"}})
	require.NoError(t, err)
	assert.Equal(t, catalog.Waze, key)
}

func TestTerminalPicker_Errors(t *testing.T) {
	apps := catalog.Default().Summaries()
	p := NewTerminalPicker()

	p.selectApp = func(context.Context, string, []huh.Option[catalog.AppKey]) (catalog.AppKey, error) {
		return "", huh.ErrUserAborted
	}
	_, err := p.PickApplication(context.Background(), apps)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, huh.ErrUserAborted)

	boom := errors.New("terminal gone")
	p.selectApp = func(context.Context, string, []huh.Option[catalog.AppKey]) (catalog.AppKey, error) {
		return "", boom
	}
	_, err = p.PickApplication(context.Background(), apps)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestTerminalPicker_PickMode(t *testing.T) {
	p := NewTerminalPicker()

	var gotOptions []huh.Option[directions.TransportMode]
	p.selectMode = func(_ context.Context, _ string, options []huh.Option[directions.TransportMode]) (directions.TransportMode, error) {
		gotOptions = options
		return directions.ModeBike, nil
	}

	mode, err := p.PickMode(context.Background(), directions.ModeWalk)
	require.NoError(t, err)
	assert.Equal(t, directions.ModeBike, mode)
	require.Len(t, gotOptions, 4)
	assert.Equal(t, directions.ModeDrive, gotOptions[0].Value)

	p.selectMode = func(context.Context, string, []huh.Option[directions.TransportMode]) (directions.TransportMode, error) {
		return "", context.Canceled
	}
	_, err = p.PickMode(context.Background(), directions.ModeWalk)
	assert.ErrorIs(t, err, ErrCancelled)
}
