package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeletePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing, err := partner.NewPartner(id, "Alex Smith", "alex@example.com", "+15550001", []string{"Downtown"})
	require.NoError(t, err)

	cmd, _ := commands.NewDeletePartnerCommand(id)

	repo := new(MockPartnerRepository)
	uow := new(MockPartnerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeletePartnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeletePartnerCommandHandler_Handle_PartnerWithLoad(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing, err := partner.RestorePartner(id, "Alex Smith", "alex@example.com", "+15550001",
		partner.Active, 1, []string{"Downtown"}, "", "")
	require.NoError(t, err)

	cmd, _ := commands.NewDeletePartnerCommand(id)

	repo := new(MockPartnerRepository)
	uow := new(MockPartnerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeletePartnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPartnerHasActiveOrders)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
