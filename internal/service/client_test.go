package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pedidos-service/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_SearchClients(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	repo.EXPECT().SearchClients(mock.Anything, "ana", entities.ClientSearchLimit).
		Return([]entities.Client{{ID: "c-1", Name: "Ana"}}, nil)

	svc := service.NewClientService(discardLogger(), passthroughTx(t), repo)

	clients, err := svc.SearchClients(context.Background(), "ana")
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestClientService_ListClients(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	repo.EXPECT().ListClients(mock.Anything, entities.ClientFilter{Page: 2, PageSize: entities.DefaultPageSize}).
		Return([]entities.Client{{ID: "c-11"}}, 11, nil)

	svc := service.NewClientService(discardLogger(), passthroughTx(t), repo)

	page, err := svc.ListClients(context.Background(), entities.ClientFilter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.LastPage)
	assert.Equal(t, 11, page.Total)
}

func TestClientService_UpdateClient(t *testing.T) {
	name := "Ana María"
	nationalID := "0999999999"

	testCases := []struct {
		name         string
		changes      entities.ClientChanges
		mockBehavior func(repo *mocks.MockClientRepo)
		want         entities.Client
		wantErr      error
	}{
		{
			name:    "OK",
			changes: entities.ClientChanges{Name: &name},
			mockBehavior: func(repo *mocks.MockClientRepo) {
				repo.EXPECT().GetClient(mock.Anything, "c-1").
					Return(entities.Client{ID: "c-1", Name: "Ana", NationalID: "0102030405", Phone: "1"}, nil)
				repo.EXPECT().UpdateClient(mock.Anything, entities.Client{ID: "c-1", Name: name, NationalID: "0102030405", Phone: "1"}).
					Return(nil)
			},
			want: entities.Client{ID: "c-1", Name: name, NationalID: "0102030405", Phone: "1"},
		},
		{
			name:    "national id taken",
			changes: entities.ClientChanges{NationalID: &nationalID},
			mockBehavior: func(repo *mocks.MockClientRepo) {
				repo.EXPECT().GetClient(mock.Anything, "c-1").Return(entities.Client{ID: "c-1"}, nil)
				repo.EXPECT().UpdateClient(mock.Anything, mock.Anything).Return(entities.ErrClientExists)
			},
			wantErr: entities.ErrClientExists,
		},
		{
			name: "not found",
			mockBehavior: func(repo *mocks.MockClientRepo) {
				repo.EXPECT().GetClient(mock.Anything, "c-1").Return(entities.Client{}, entities.ErrClientNotFound)
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockClientRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewClientService(discardLogger(), passthroughTx(t), repo)
			client, err := svc.UpdateClient(context.Background(), "c-1", tc.changes)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, client)
		})
	}
}

func TestClientService_RemoveClient(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	repo.EXPECT().DeleteClient(mock.Anything, "c-1").Return(entities.ErrClientHasOrders)

	svc := service.NewClientService(discardLogger(), passthroughTx(t), repo)
	assert.ErrorIs(t, svc.RemoveClient(context.Background(), "c-1"), entities.ErrConflict)
}
