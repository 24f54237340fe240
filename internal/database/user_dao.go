package database

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
)

// _maxIDAttempts bounds the collision-retry loop of badge ID generation.
// With a 9*10^11 ID space the loop practically never runs twice; the bound
// exists so a broken table cannot spin it forever.
const _maxIDAttempts = 10

type UserDAO struct {
	Logger *slog.Logger
	*DB
}

func NewUserDAO(logger *slog.Logger, db *DB) *UserDAO {
	return &UserDAO{
		Logger: logger.With("dao", "user"),
		DB:     db,
	}
}

func (dao *UserDAO) FindAll(ctx context.Context) ([]model.User, error) {
	logger := dao.Logger.With("query", "findAll")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return []model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	users := make([]model.User, 0)
	if err := dao.SelectContext(ctx, &users, query, args...); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "countUsers", 0)
			return []model.User{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.User{}, err
	}

	logger.Debug("success query execute", "countUsers", len(users))

	return users, nil
}

func (dao *UserDAO) Get(ctx context.Context, id model.BadgeID) (model.User, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var user model.User
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&user); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsNoRows(err) {
			return model.User{}, model.NewError("user", model.ErrNotFound)
		}

		return model.User{}, err
	}

	logger.Debug("success query execute", "user", user)

	return user, nil
}

// Resolve maps a raw badge payload to its roster member. Payloads that do
// not parse as a badge ID behave like unknown badges.
func (dao *UserDAO) Resolve(ctx context.Context, payload string) (model.User, error) {
	id, err := model.ParseBadgeID(strings.TrimSpace(payload))
	if err != nil {
		return model.User{}, model.NewError("user", model.ErrNotFound)
	}

	return dao.Get(ctx, id)
}

type InsertUserDTO struct {
	FullName   string
	Position   *string
	Department *string
	Level      *model.Level
}

// Insert creates a roster member under a freshly drawn 12-digit badge ID.
// A draw colliding with an existing row is retried with a new draw, at most
// _maxIDAttempts times; exhaustion surfaces as ErrIDSpaceExhausted.
func (dao *UserDAO) Insert(ctx context.Context, dto InsertUserDTO) (model.BadgeID, error) {
	logger := dao.Logger.With("query", "insert")

	for attempt := 1; attempt <= _maxIDAttempts; attempt++ {
		id := drawBadgeID()

		query, args, err := dao.Builder.
			Insert("users").
			Columns("id", "full_name", "position", "department", "level").
			Values(id, dto.FullName, dto.Position, dto.Department, dto.Level).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return 0, err
		}

		logger.Debug("build query", "sql", query, "args", args)

		row := dao.QueryRowxContext(ctx, query, args...)
		if err := row.Scan(&id); err != nil {
			if IsUniqueViolation(err) {
				logger.Debug("badge id collision, redrawing", "id", id, "attempt", attempt)
				continue
			}

			logger.Warn("failed query execute", "error", err)

			return 0, err
		}

		logger.Debug("success query execute", "insertId", id, "attempts", attempt)

		return id, nil
	}

	logger.Warn("failed query execute", "error", ErrIDSpaceExhausted)

	return 0, model.NewError("user", ErrIDSpaceExhausted)
}

func drawBadgeID() model.BadgeID {
	span := int64(model.MaxBadgeID - model.MinBadgeID + 1)
	return model.MinBadgeID + model.BadgeID(rand.Int63n(span))
}

type UpdateUserDTO struct {
	FullName   string
	Position   *string
	Department *string
	Level      *model.Level
}

// Update replaces every mutable field of the user; the badge ID never
// changes once issued.
func (dao *UserDAO) Update(ctx context.Context, id model.BadgeID, dto UpdateUserDTO) error {
	logger := dao.Logger.With("query", "update")

	query, args, err := dao.Builder.
		Update("users").
		SetMap(map[string]any{
			"updated_at": time.Now(),
			"full_name":  dto.FullName,
			"position":   dto.Position,
			"department": dto.Department,
			"level":      dto.Level,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	result, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.NewError("user", model.ErrNotFound)
	}

	logger.Debug("success query execute", "updateId", id)

	return nil
}

func (dao *UserDAO) Delete(ctx context.Context, id model.BadgeID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "deleteId", id)

	return nil
}
