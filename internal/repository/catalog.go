package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/model"
)

var componentColumns = []string{"id", "component_uid", "name", "total_quantity", "available_quantity", "description", "expected_restock", "image_url"}

func (r *repository) CreateComponent(ctx context.Context, comp model.Component) (model.Component, error) {
	q, args, err := qb.Insert(componentsTableName).
		Columns("component_uid", "name", "total_quantity", "available_quantity", "description", "expected_restock", "image_url").
		Values(uuid.New(), comp.Name, comp.TotalQuantity, comp.AvailableQuantity, comp.Description, comp.ExpectedRestock, comp.ImageURL).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Component{}, err
	}
	var res model.Component
	if err := sqlx.GetContext(ctx, r.ext, &res, q, args...); err != nil {
		r.log.Error("CreateComponent", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Component{}, err
	}
	return res, nil
}

func (r *repository) GetComponent(ctx context.Context, componentUid string) (model.Component, error) {
	q, args, err := qb.Select(componentColumns...).
		From(componentsTableName).
		Where(sq.Eq{"component_uid": componentUid}).
		ToSql()
	if err != nil {
		return model.Component{}, err
	}
	var comp model.Component
	if err := sqlx.GetContext(ctx, r.ext, &comp, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Component{}, errs.ErrNotFound
		}
		return model.Component{}, err
	}
	return comp, nil
}

func (r *repository) ListComponents(ctx context.Context) ([]model.Component, error) {
	q, args, err := qb.Select(componentColumns...).
		From(componentsTableName).
		OrderBy("id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Component
	if err := sqlx.SelectContext(ctx, r.ext, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateComponent(ctx context.Context, comp model.Component) (model.Component, error) {
	q, args, err := qb.Update(componentsTableName).
		Set("name", comp.Name).
		Set("total_quantity", comp.TotalQuantity).
		Set("available_quantity", comp.AvailableQuantity).
		Set("description", comp.Description).
		Set("expected_restock", comp.ExpectedRestock).
		Set("image_url", comp.ImageURL).
		Where(sq.Eq{"component_uid": comp.ComponentUid}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Component{}, err
	}
	var res model.Component
	if err := sqlx.GetContext(ctx, r.ext, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Component{}, errs.ErrNotFound
		}
		return model.Component{}, err
	}
	return res, nil
}

func (r *repository) DeleteComponent(ctx context.Context, componentUid string) error {
	q, args, err := qb.Delete(componentsTableName).
		Where(sq.Eq{"component_uid": componentUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, q, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errs.ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) HasOutstanding(ctx context.Context, componentUid string) (bool, error) {
	const q = `
	select exists(
		select 1 from lendings
		where component_uid = $1 and return_date is null
	)`
	var outstanding bool
	if err := r.ext.QueryRowxContext(ctx, q, componentUid).Scan(&outstanding); err != nil {
		return false, err
	}
	return outstanding, nil
}

// Reserve and Release are the only mutators of available_quantity. The guard
// in the where clause keeps a failed reserve from touching the row at all.
func (r *repository) Reserve(ctx context.Context, componentUid string, qty int) error {
	const q = `
	update components
	set available_quantity = available_quantity - $2
	where component_uid = $1 and available_quantity >= $2`
	res, err := r.ext.ExecContext(ctx, q, componentUid, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetComponent(ctx, componentUid); err != nil {
			return err
		}
		return errs.ErrInsufficientStock
	}
	return nil
}

// Release clamps to total_quantity: the catalog may have shrunk while the
// reservation was out, and returned stock never exceeds what the component
// holds now.
func (r *repository) Release(ctx context.Context, componentUid string, qty int) error {
	const q = `
	update components
	set available_quantity = least(available_quantity + $2, total_quantity)
	where component_uid = $1`
	res, err := r.ext.ExecContext(ctx, q, componentUid, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
