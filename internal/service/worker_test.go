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

func TestWorkerService_CreateWorker(t *testing.T) {
	repo := mocks.NewMockWorkerRepo(t)
	repo.EXPECT().CreateWorker(mock.Anything, mock.MatchedBy(func(w entities.Worker) bool {
		return w.Name == "Luis" && w.Active && w.ID != ""
	})).Return(nil)

	svc := service.NewWorkerService(discardLogger(), passthroughTx(t), repo)

	worker, err := svc.CreateWorker(context.Background(), "Luis")
	require.NoError(t, err)
	assert.True(t, worker.Active)
	assert.NotEmpty(t, worker.ID)
}

func TestWorkerService_CreateWorker_Duplicate(t *testing.T) {
	repo := mocks.NewMockWorkerRepo(t)
	repo.EXPECT().CreateWorker(mock.Anything, mock.Anything).Return(entities.ErrWorkerExists)

	svc := service.NewWorkerService(discardLogger(), passthroughTx(t), repo)

	_, err := svc.CreateWorker(context.Background(), "luis")
	assert.ErrorIs(t, err, entities.ErrConflict)
}

func TestWorkerService_UpdateWorker(t *testing.T) {
	inactive := false

	repo := mocks.NewMockWorkerRepo(t)
	repo.EXPECT().GetWorker(mock.Anything, "w-1").Return(entities.Worker{ID: "w-1", Name: "Luis", Active: true}, nil)
	repo.EXPECT().UpdateWorker(mock.Anything, entities.Worker{ID: "w-1", Name: "Luis", Active: false}).Return(nil)

	svc := service.NewWorkerService(discardLogger(), passthroughTx(t), repo)

	worker, err := svc.UpdateWorker(context.Background(), "w-1", entities.WorkerChanges{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, worker.Active)
}

func TestWorkerService_ListWorkers(t *testing.T) {
	active := true
	filter := entities.WorkerFilter{Active: &active, Search: "lu"}

	repo := mocks.NewMockWorkerRepo(t)
	repo.EXPECT().ListWorkers(mock.Anything, filter).Return([]entities.Worker{{ID: "w-1", Name: "Luis", Active: true}}, nil)

	svc := service.NewWorkerService(discardLogger(), passthroughTx(t), repo)

	workers, err := svc.ListWorkers(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, workers, 1)
}

func TestWorkerService_RemoveWorker(t *testing.T) {
	repo := mocks.NewMockWorkerRepo(t)
	repo.EXPECT().DeleteWorker(mock.Anything, "w-1").Return(entities.ErrWorkerHasOrders)

	svc := service.NewWorkerService(discardLogger(), passthroughTx(t), repo)
	assert.ErrorIs(t, svc.RemoveWorker(context.Background(), "w-1"), entities.ErrWorkerHasOrders)
}
