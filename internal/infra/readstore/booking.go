package readstore

import (
	"context"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
	"itemshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
)

const dialectPostgres = "postgres"

var bookingViewColumns = []any{
	goqu.I("b.id"),
	goqu.I("b.start_ts"),
	goqu.I("b.end_ts"),
	goqu.I("b.status"),
	goqu.I("i.id").As("item_id"),
	goqu.I("i.name").As("item_name"),
	goqu.I("i.owner_id"),
	goqu.I("u.id").As("booker_id"),
	goqu.I("u.name").As("booker_name"),
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	sql, args, err := bookingBase().Where(goqu.I("b.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking select", err, infra.KindDBFailure)
	}

	var view queries.BookingView
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&view.ID, &view.Start, &view.End, &view.Status,
		&view.Item.ID, &view.Item.Name, &view.OwnerID,
		&view.Booker.ID, &view.Booker.Name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &view, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	stmt := bookingBase().Where(goqu.I("b.booker_id").Eq(bookerID))
	return r.list(ctx, applyStateFilter(stmt, filter, now))
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	stmt := bookingBase().Where(goqu.I("i.owner_id").Eq(ownerID))
	return r.list(ctx, applyStateFilter(stmt, filter, now))
}

func (r *BookingReadStore) list(ctx context.Context, stmt *goqu.SelectDataset) ([]*queries.BookingView, error) {
	sql, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err, infra.KindDBFailure)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		var view queries.BookingView
		err := rows.Scan(
			&view.ID, &view.Start, &view.End, &view.Status,
			&view.Item.ID, &view.Item.Name, &view.OwnerID,
			&view.Booker.ID, &view.Booker.Name)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err, infra.KindDBFailure)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err, infra.KindDBFailure)
	}
	return views, nil
}

func bookingBase() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("b.item_id").Eq(goqu.I("i.id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("b.booker_id").Eq(goqu.I("u.id")))).
		Select(bookingViewColumns...).
		Order(goqu.I("b.start_ts").Asc())
}

// applyStateFilter keeps the strict inequalities of the time predicates:
// for one now snapshot a booking matches exactly one of CURRENT, PAST
// and FUTURE.
func applyStateFilter(stmt *goqu.SelectDataset, filter booking.StateFilter, now time.Time) *goqu.SelectDataset {
	switch filter {
	case booking.FilterCurrent:
		return stmt.Where(goqu.I("b.start_ts").Lt(now), goqu.I("b.end_ts").Gt(now))
	case booking.FilterPast:
		return stmt.Where(goqu.I("b.end_ts").Lt(now))
	case booking.FilterFuture:
		return stmt.Where(goqu.I("b.start_ts").Gt(now))
	case booking.FilterWaiting:
		return stmt.Where(goqu.I("b.status").Eq(booking.StatusWaiting.String()))
	case booking.FilterRejected:
		return stmt.Where(goqu.I("b.status").Eq(booking.StatusRejected.String()))
	default: // booking.FilterAll
		return stmt
	}
}
