package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/internal/repository"
	"github.com/eslib/lending-service/pkg/kafka"
	"github.com/eslib/lending-service/pkg/metrics"
	"github.com/eslib/lending-service/pkg/validate"
)

// validateBorrowRequest is the authoritative check; whatever the transport
// layer already validated is treated as advisory.
func validateBorrowRequest(req model.CreateBorrowRequest) error {
	if !validate.RollNumberRE.MatchString(req.RollNumber) {
		return errors.Wrapf(errs.ErrInvalidInput, "malformed roll number %q", req.RollNumber)
	}
	if req.ComponentID == "" {
		return errors.Wrap(errs.ErrInvalidInput, "componentId is required")
	}
	if req.Quantity < 1 {
		return errors.Wrap(errs.ErrInvalidInput, "quantity must be >= 1")
	}
	if req.Purpose == "" {
		return errors.Wrap(errs.ErrInvalidInput, "purpose is required")
	}
	return nil
}

// CreateBorrowRequest reserves stock up front and opens a pending lending
// record with its borrow-request notification, all in one transaction. A
// failed reservation leaves no trace.
func (s *Service) CreateBorrowRequest(ctx context.Context, req model.CreateBorrowRequest) (model.LendingRecord, error) {
	if err := validateBorrowRequest(req); err != nil {
		metrics.RejectedRequests.WithLabelValues("invalid-input").Inc()
		return model.LendingRecord{}, err
	}

	var lending model.LendingRecord
	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		comp, err := r.GetComponent(ctx, req.ComponentID)
		if err != nil {
			return err
		}
		if err := r.Reserve(ctx, comp.ComponentUid, req.Quantity); err != nil {
			return err
		}
		lending, err = r.CreateLending(ctx, model.LendingRecord{
			RollNumber:    req.RollNumber,
			ComponentUid:  comp.ComponentUid,
			ComponentName: comp.Name,
			Quantity:      req.Quantity,
			BorrowDate:    s.clock.Now().UTC(),
			Purpose:       req.Purpose,
			Status:        model.StatusPending,
		})
		if err != nil {
			return err
		}
		_, err = r.CreateNotification(ctx, model.NewBorrowNotification(lending, s.clock.Now().UTC()))
		return err
	})
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientStock) {
			metrics.RejectedRequests.WithLabelValues("insufficient-stock").Inc()
		}
		return model.LendingRecord{}, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(lending, kafka.EventBorrowRequested)
	return lending, nil
}

func (s *Service) CreateReturnRequest(ctx context.Context, lendingUid string) (model.LendingRecord, error) {
	var lending model.LendingRecord
	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		current, err := r.GetLending(ctx, lendingUid)
		if err != nil {
			return err
		}
		if !current.Status.CanRequestReturn() {
			return errors.Wrapf(errs.ErrInvalidState, "return request from %s", current.Status)
		}
		lending, err = r.SetLendingStatus(ctx, lendingUid, model.StatusReturnPending, nil)
		if err != nil {
			return err
		}
		_, err = r.CreateNotification(ctx, model.NewReturnNotification(lending, s.clock.Now().UTC()))
		return err
	})
	if err != nil {
		return model.LendingRecord{}, err
	}

	s.publishEvent(lending, kafka.EventReturnRequested)
	return lending, nil
}

// Approve resolves a pending borrow request or a pending return. Stock moves
// only on the latter; the reservation already happened at submission time.
func (s *Service) Approve(ctx context.Context, lendingUid string) (model.LendingRecord, error) {
	var (
		lending   model.LendingRecord
		eventType string
	)
	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		current, err := r.GetLending(ctx, lendingUid)
		if err != nil {
			return err
		}
		next, ok := current.Status.OnApprove()
		if !ok {
			return errors.Wrapf(errs.ErrInvalidState, "approve from %s", current.Status)
		}

		var returnDate *time.Time
		eventType = kafka.EventApproved
		if next == model.StatusReturned {
			if err := r.Release(ctx, current.ComponentUid, current.Quantity); err != nil {
				return err
			}
			now := s.clock.Now().UTC()
			returnDate = &now
			eventType = kafka.EventReturned
		}

		lending, err = r.SetLendingStatus(ctx, lendingUid, next, returnDate)
		if err != nil {
			return err
		}
		return r.MarkLendingNotificationsRead(ctx, lendingUid)
	})
	if err != nil {
		return model.LendingRecord{}, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(lending, eventType)
	return lending, nil
}

// Reject denies a pending borrow request (releasing the reservation) or a
// pending return (the record goes back to approved, the loan stays open).
func (s *Service) Reject(ctx context.Context, lendingUid string) (model.LendingRecord, error) {
	var (
		lending   model.LendingRecord
		eventType string
	)
	err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
		current, err := r.GetLending(ctx, lendingUid)
		if err != nil {
			return err
		}
		next, ok := current.Status.OnReject()
		if !ok {
			return errors.Wrapf(errs.ErrInvalidState, "reject from %s", current.Status)
		}

		eventType = kafka.EventReturnRejected
		if next == model.StatusRejected {
			if err := r.Release(ctx, current.ComponentUid, current.Quantity); err != nil {
				return err
			}
			eventType = kafka.EventRejected
		}

		lending, err = r.SetLendingStatus(ctx, lendingUid, next, nil)
		if err != nil {
			return err
		}
		return r.MarkLendingNotificationsRead(ctx, lendingUid)
	})
	if err != nil {
		return model.LendingRecord{}, err
	}

	s.invalidateCache(ctx)
	s.publishEvent(lending, eventType)
	return lending, nil
}

func (s *Service) ListLendings(ctx context.Context, filter model.LendingFilter) ([]model.LendingRecord, error) {
	return s.repo.ListLendings(ctx, filter)
}
