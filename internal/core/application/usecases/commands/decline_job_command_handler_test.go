package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestDeclineJobCommandHandler_Handle_Success(t *testing.T) {
	actor := driverActorFor(t, kernel.NewUUID())

	cmd, err := commands.NewDeclineJobCommand(kernel.NewUUID(), actor)
	require.NoError(t, err)

	handler := commands.NewDeclineJobCommandHandler()
	require.NoError(t, handler.Handle(t.Context(), cmd))
}

func TestNewDeclineJobCommand_NonDriverActor(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	_, err = commands.NewDeclineJobCommand(kernel.NewUUID(), actor)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestDeclineJobCommandHandler_Handle_NotConstructed(t *testing.T) {
	handler := commands.NewDeclineJobCommandHandler()

	err := handler.Handle(t.Context(), commands.DeclineJobCommand{})
	require.ErrorIs(t, err, commands.ErrDeclineJobCommandIsNotConstructed)
}
