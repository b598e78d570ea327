package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"trading/internal/adapters/out/cache"
	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/domain/model/party"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshCounterpartyNamesCommand(t *testing.T) {
	t.Run("defaults to both directories", func(t *testing.T) {
		cmd, err := commands.NewRefreshCounterpartyNamesCommand()
		require.NoError(t, err)
		assert.Equal(t, []party.Role{party.Supplier, party.Customer}, cmd.Roles())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := commands.NewRefreshCounterpartyNamesCommand(party.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.RefreshCounterpartyNamesCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRefreshCounterpartyNamesCommandIsNotConstructed)
	})
}

func TestRefreshCounterpartyNamesCommandHandler_Handle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("stores both directories", func(t *testing.T) {
		suppliers, customers := new(MockCounterpartyRepository), new(MockCounterpartyRepository)
		suppliers.On("GetAllNames", mock.Anything).Return([]string{"Acme", "Globex"}, nil).Once()
		customers.On("GetAllNames", mock.Anything).Return([]string{"Initech"}, nil).Once()
		nameCache := cache.NewNameCache()
		handler := commands.NewRefreshCounterpartyNamesCommandHandler(nameCache, suppliers, customers, logger)
		cmd, err := commands.NewRefreshCounterpartyNamesCommand()
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		names, ok := nameCache.Names(party.Supplier)
		require.True(t, ok)
		assert.Equal(t, []string{"Acme", "Globex"}, names)
		names, ok = nameCache.Names(party.Customer)
		require.True(t, ok)
		assert.Equal(t, []string{"Initech"}, names)
		suppliers.AssertExpectations(t)
		customers.AssertExpectations(t)
	})

	t.Run("failed directory keeps previous names", func(t *testing.T) {
		suppliers, customers := new(MockCounterpartyRepository), new(MockCounterpartyRepository)
		failure := errs.NewDependencyFailedErrorWithCause("supplier directory", errors.New("timeout"))
		suppliers.On("GetAllNames", mock.Anything).Return(nil, failure).Once()
		customers.On("GetAllNames", mock.Anything).Return([]string{"Initech"}, nil).Once()
		nameCache := cache.NewNameCache()
		nameCache.Store(party.Supplier, []string{"Old"})
		handler := commands.NewRefreshCounterpartyNamesCommandHandler(nameCache, suppliers, customers, logger)
		cmd, err := commands.NewRefreshCounterpartyNamesCommand()
		require.NoError(t, err)

		err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrDependencyFailed)
		names, _ := nameCache.Names(party.Supplier)
		assert.Equal(t, []string{"Old"}, names)
		names, _ = nameCache.Names(party.Customer)
		assert.Equal(t, []string{"Initech"}, names)
	})

	t.Run("single directory", func(t *testing.T) {
		suppliers, customers := new(MockCounterpartyRepository), new(MockCounterpartyRepository)
		customers.On("GetAllNames", mock.Anything).Return([]string{}, nil).Once()
		nameCache := cache.NewNameCache()
		handler := commands.NewRefreshCounterpartyNamesCommandHandler(nameCache, suppliers, customers, logger)
		cmd, err := commands.NewRefreshCounterpartyNamesCommand(party.Customer)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		_, ok := nameCache.Names(party.Supplier)
		assert.False(t, ok)
		suppliers.AssertNotCalled(t, "GetAllNames", mock.Anything)
	})
}
