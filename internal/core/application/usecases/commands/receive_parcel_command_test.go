package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

func TestNewReceiveParcelCommand(t *testing.T) {
	parcelID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewReceiveParcelCommand(parcelID, actorID, "Reprographie")

		require.NoError(t, err)
		assert.True(t, cmd.ParcelID().IsEqual(parcelID))
		assert.True(t, cmd.ActorID().IsEqual(actorID))
		assert.Equal(t, "Reprographie", cmd.Location())
		require.NoError(t, cmd.Validate())
	})

	t.Run("location is required", func(t *testing.T) {
		_, err := commands.NewReceiveParcelCommand(parcelID, actorID, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("zero parcel id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := commands.NewReceiveParcelCommand(zero, actorID, "Reprographie")

		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.ReceiveParcelCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrReceiveParcelCommandIsNotConstructed)
	})
}
