package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/model"
)

var lendingColumns = []string{"id", "lending_uid", "roll_number", "component_uid", "component_name", "quantity", "borrow_date", "return_date", "purpose", "status"}

func (r *repository) CreateLending(ctx context.Context, lending model.LendingRecord) (model.LendingRecord, error) {
	q, args, err := qb.Insert(lendingsTableName).
		Columns("lending_uid", "roll_number", "component_uid", "component_name", "quantity", "borrow_date", "return_date", "purpose", "status").
		Values(uuid.New(), lending.RollNumber, lending.ComponentUid, lending.ComponentName, lending.Quantity, lending.BorrowDate, lending.ReturnDate, lending.Purpose, lending.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.LendingRecord{}, err
	}
	var res model.LendingRecord
	if err := sqlx.GetContext(ctx, r.ext, &res, q, args...); err != nil {
		r.log.Error("CreateLending", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.LendingRecord{}, err
	}
	return res, nil
}

func (r *repository) GetLending(ctx context.Context, lendingUid string) (model.LendingRecord, error) {
	q, args, err := qb.Select(lendingColumns...).
		From(lendingsTableName).
		Where(sq.Eq{"lending_uid": lendingUid}).
		ToSql()
	if err != nil {
		return model.LendingRecord{}, err
	}
	var lending model.LendingRecord
	if err := sqlx.GetContext(ctx, r.ext, &lending, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LendingRecord{}, errs.ErrNotFound
		}
		return model.LendingRecord{}, err
	}
	return lending, nil
}

func (r *repository) SetLendingStatus(ctx context.Context, lendingUid string, status model.Status, returnDate *time.Time) (model.LendingRecord, error) {
	q, args, err := qb.Update(lendingsTableName).
		Set("status", status).
		Set("return_date", returnDate).
		Where(sq.Eq{"lending_uid": lendingUid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.LendingRecord{}, err
	}
	var res model.LendingRecord
	if err := sqlx.GetContext(ctx, r.ext, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LendingRecord{}, errs.ErrNotFound
		}
		return model.LendingRecord{}, err
	}
	return res, nil
}

// ListLendings returns records in insertion order, which is chronological for
// an append-only ledger.
func (r *repository) ListLendings(ctx context.Context, filter model.LendingFilter) ([]model.LendingRecord, error) {
	q := qb.Select(lendingColumns...).
		From(lendingsTableName).
		OrderBy("id asc")

	if filter.RollNumber != "" {
		q = q.Where(sq.Eq{"roll_number": filter.RollNumber})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Unreturned {
		q = q.Where(sq.Eq{"return_date": nil})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.LendingRecord
	if err := sqlx.SelectContext(ctx, r.ext, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
