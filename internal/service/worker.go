package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/trm"

	"github.com/google/uuid"
)

type WorkerRepo interface {
	CreateWorker(ctx context.Context, w entities.Worker) error
	GetWorker(ctx context.Context, id string) (entities.Worker, error)
	ListWorkers(ctx context.Context, f entities.WorkerFilter) ([]entities.Worker, error)
	UpdateWorker(ctx context.Context, w entities.Worker) error
	DeleteWorker(ctx context.Context, id string) error
}

type workerService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      WorkerRepo
}

func NewWorkerService(logger *slog.Logger, txManager trm.Manager, repo WorkerRepo) *workerService {
	return &workerService{
		logger:    logger.With(slog.String("service", "worker")),
		txManager: txManager,
		repo:      repo,
	}
}

// CreateWorker adds an active worker. Names are unique ignoring case.
func (s *workerService) CreateWorker(ctx context.Context, name string) (entities.Worker, error) {
	worker := entities.Worker{ID: uuid.NewString(), Name: name, Active: true}
	if err := s.repo.CreateWorker(ctx, worker); err != nil {
		return entities.Worker{}, err
	}
	s.logger.InfoContext(ctx, "worker created", slog.String("worker_id", worker.ID))
	return worker, nil
}

func (s *workerService) GetWorker(ctx context.Context, id string) (entities.Worker, error) {
	return s.repo.GetWorker(ctx, id)
}

func (s *workerService) ListWorkers(ctx context.Context, f entities.WorkerFilter) ([]entities.Worker, error) {
	return s.repo.ListWorkers(ctx, f)
}

func (s *workerService) UpdateWorker(ctx context.Context, id string, changes entities.WorkerChanges) (entities.Worker, error) {
	var worker entities.Worker
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		worker, err = s.repo.GetWorker(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get worker: %w", err)
		}
		changes.Apply(&worker)
		return s.repo.UpdateWorker(ctx, worker)
	})
	if err != nil {
		return entities.Worker{}, err
	}
	return worker, nil
}

func (s *workerService) RemoveWorker(ctx context.Context, id string) error {
	if err := s.repo.DeleteWorker(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "worker removed", slog.String("worker_id", id))
	return nil
}
