package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/period"
)

type HistoryDAO struct {
	Logger *slog.Logger
	*DB
}

func NewHistoryDAO(logger *slog.Logger, db *DB) *HistoryDAO {
	return &HistoryDAO{
		Logger: logger.With("dao", "history"),
		DB:     db,
	}
}

type FindHistoryFilter struct {
	// From and To are calendar-day bounds, both inclusive: From is floored
	// to 00:00:00.000 and To is ceiled to 23:59:59.999 of its day.
	From time.Time
	To   time.Time
	// Period, when non-empty, is normalized (trimmed, lower-cased) and
	// matched exactly.
	Period string
}

func (dao *HistoryDAO) Find(ctx context.Context, filter FindHistoryFilter) ([]model.AttendanceEntry, error) {
	logger := dao.Logger.With("query", "find")

	from := startOfDay(filter.From)
	to := endOfDay(filter.To)

	builder := dao.Builder.
		Select("*").
		From("history").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date DESC")

	if p := period.Normalize(filter.Period); p != "" {
		builder = builder.Where(squirrel.Eq{"period": p})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return []model.AttendanceEntry{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	entries := make([]model.AttendanceEntry, 0)
	if err := dao.SelectContext(ctx, &entries, query, args...); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "countEntries", 0)
			return []model.AttendanceEntry{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.AttendanceEntry{}, err
	}

	logger.Debug("success query execute", "countEntries", len(entries))

	return entries, nil
}

// ExistsForPeriod reports whether the ledger already holds an entry for the
// name on the given calendar day and period.
func (dao *HistoryDAO) ExistsForPeriod(ctx context.Context, fullName string, day time.Time, p period.Period) (bool, error) {
	logger := dao.Logger.With("query", "existsForPeriod")

	query, args, err := dao.Builder.
		Select("1").
		From("history").
		Where(squirrel.Eq{"full_name": fullName, "period": p.String()}).
		Where(squirrel.GtOrEq{"date": startOfDay(day)}).
		Where(squirrel.LtOrEq{"date": endOfDay(day)}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var one int
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&one); err != nil {
		if IsNoRows(err) {
			return false, nil
		}

		logger.Warn("failed query execute", "error", err)

		return false, err
	}

	return true, nil
}

// Append inserts the entry and returns it with its store-assigned id. A
// unique index on (full_name, day, period) backs the one-sitting-per-day
// rule; violations come back wrapped around model.ErrExists.
func (dao *HistoryDAO) Append(ctx context.Context, entry model.AttendanceEntry) (model.AttendanceEntry, error) {
	logger := dao.Logger.With("query", "append")

	query, args, err := dao.Builder.
		Insert("history").
		Columns("full_name", "level", "date", "period").
		Values(entry.FullName, entry.Level, entry.Date, entry.Period).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return model.AttendanceEntry{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return model.AttendanceEntry{}, model.NewError("history", model.ErrExists)
		}

		return model.AttendanceEntry{}, err
	}

	logger.Debug("success query execute", "insertId", entry.ID)

	return entry, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
}
