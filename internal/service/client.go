package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/trm"
)

type ClientRepo interface {
	GetClient(ctx context.Context, id string) (entities.Client, error)
	SearchClients(ctx context.Context, term string, limit int) ([]entities.Client, error)
	ListClients(ctx context.Context, f entities.ClientFilter) ([]entities.Client, int, error)
	UpdateClient(ctx context.Context, c entities.Client) error
	DeleteClient(ctx context.Context, id string) error
}

type clientService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ClientRepo
}

func NewClientService(logger *slog.Logger, txManager trm.Manager, repo ClientRepo) *clientService {
	return &clientService{
		logger:    logger.With(slog.String("service", "client")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *clientService) GetClient(ctx context.Context, id string) (entities.Client, error) {
	return s.repo.GetClient(ctx, id)
}

// SearchClients serves autocomplete and is capped at entities.ClientSearchLimit.
func (s *clientService) SearchClients(ctx context.Context, term string) ([]entities.Client, error) {
	return s.repo.SearchClients(ctx, term, entities.ClientSearchLimit)
}

func (s *clientService) ListClients(ctx context.Context, f entities.ClientFilter) (entities.Page[entities.Client], error) {
	f = f.Normalize()

	clients, total, err := s.repo.ListClients(ctx, f)
	if err != nil {
		return entities.Page[entities.Client]{}, err
	}
	return entities.NewPage(clients, total, f.Page, f.PageSize), nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, changes entities.ClientChanges) (entities.Client, error) {
	var client entities.Client
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.repo.GetClient(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}
		changes.Apply(&client)
		return s.repo.UpdateClient(ctx, client)
	})
	if err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func (s *clientService) RemoveClient(ctx context.Context, id string) error {
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "client removed", slog.String("client_id", id))
	return nil
}
