package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/internal/repository"
)

func validateComponent(req model.CreateComponentRequest) error {
	if req.Name == "" {
		return errors.Wrap(errs.ErrInvalidInput, "name is required")
	}
	if req.TotalQuantity < 0 {
		return errors.Wrap(errs.ErrInvalidInput, "totalQuantity must be >= 0")
	}
	if req.AvailableQuantity < 0 || req.AvailableQuantity > req.TotalQuantity {
		return errors.Wrap(errs.ErrInvalidInput, "availableQuantity must be within [0, totalQuantity]")
	}
	return nil
}

func (s *Service) CreateComponent(ctx context.Context, req model.CreateComponentRequest) (model.Component, error) {
	if err := validateComponent(req); err != nil {
		return model.Component{}, err
	}
	comp, err := s.repo.CreateComponent(ctx, model.Component{
		Name:              req.Name,
		TotalQuantity:     req.TotalQuantity,
		AvailableQuantity: req.AvailableQuantity,
		Description:       req.Description,
		ExpectedRestock:   req.ExpectedRestock,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		return model.Component{}, err
	}
	s.invalidateCache(ctx)
	return comp, nil
}

func (s *Service) UpdateComponent(ctx context.Context, componentUid string, req model.CreateComponentRequest) (model.Component, error) {
	if err := validateComponent(req); err != nil {
		return model.Component{}, err
	}
	comp, err := s.repo.UpdateComponent(ctx, model.Component{
		ComponentUid:      componentUid,
		Name:              req.Name,
		TotalQuantity:     req.TotalQuantity,
		AvailableQuantity: req.AvailableQuantity,
		Description:       req.Description,
		ExpectedRestock:   req.ExpectedRestock,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		return model.Component{}, err
	}
	s.invalidateCache(ctx)
	return comp, nil
}

// DeleteComponent refuses to remove a component while any of its lendings is
// still out, checked inside the same transaction as the delete.
func (s *Service) DeleteComponent(ctx context.Context, componentUid string) error {
	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		outstanding, err := r.HasOutstanding(ctx, componentUid)
		if err != nil {
			return err
		}
		if outstanding {
			return errs.ErrConflict
		}
		return r.DeleteComponent(ctx, componentUid)
	})
	if err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *Service) ListComponents(ctx context.Context) ([]model.Component, error) {
	var items []model.Component
	if s.cache.Get(ctx, cacheKeyComponents, &items) {
		return items, nil
	}
	items, err := s.repo.ListComponents(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyComponents, items)
	return items, nil
}
