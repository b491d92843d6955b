package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/trm"
)

type BagRepo interface {
	CreateBag(ctx context.Context, id string) (entities.Bag, error)
	GetBagForUpdate(ctx context.Context, id string) (entities.Bag, error)
	ListBags(ctx context.Context, status *entities.BagStatus) ([]entities.Bag, error)
	DeleteBag(ctx context.Context, id string) error
}

type bagService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      BagRepo
}

func NewBagService(logger *slog.Logger, txManager trm.Manager, repo BagRepo) *bagService {
	return &bagService{
		logger:    logger.With(slog.String("service", "bag")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *bagService) RegisterBag(ctx context.Context, id string) (entities.Bag, error) {
	bag, err := s.repo.CreateBag(ctx, id)
	if err != nil {
		return entities.Bag{}, err
	}
	s.logger.InfoContext(ctx, "bag registered", slog.String("bag_id", id))
	return bag, nil
}

// ListBags returns bags in rack order, optionally only those with status.
func (s *bagService) ListBags(ctx context.Context, status *entities.BagStatus) ([]entities.Bag, error) {
	bags, err := s.repo.ListBags(ctx, status)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(bags, func(a, b entities.Bag) int {
		return entities.CompareBagIDs(a.ID, b.ID)
	})
	return bags, nil
}

func (s *bagService) RemoveBag(ctx context.Context, id string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		bag, err := s.repo.GetBagForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to lock bag: %w", err)
		}
		if bag.Status == entities.BagOcupada {
			return entities.ErrBagOccupied
		}
		return s.repo.DeleteBag(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "bag removed", slog.String("bag_id", id))
	return nil
}
