// Package registrar implements the attendance registration decision: resolve
// the scanned badge, classify the meal period, reject duplicates, append the
// ledger entry.
package registrar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/period"
)

// UserDirectory resolves a raw badge payload to a roster member. The payload
// is opaque to the registrar; parsing it into the numeric badge ID is the
// directory's job. Unknown or unparsable payloads resolve to
// model.ErrNotFound.
type UserDirectory interface {
	Resolve(ctx context.Context, payload string) (model.User, error)
}

// AttendanceLedger is the append-only store of recorded sittings.
type AttendanceLedger interface {
	Append(ctx context.Context, entry model.AttendanceEntry) (model.AttendanceEntry, error)
	ExistsForPeriod(ctx context.Context, fullName string, day time.Time, p period.Period) (bool, error)
}

type Status string

const (
	StatusRegistered         Status = "registered"
	StatusUserNotFound       Status = "user_not_found"
	StatusOutsideWindow      Status = "outside_window"
	StatusDuplicateForPeriod Status = "duplicate_for_period"
)

// Outcome is the terminal result of a single registration attempt. Exactly
// one attempt runs per scan; there are no retries inside the registrar.
type Outcome struct {
	Status  Status
	User    model.User            // zero value when StatusUserNotFound
	Period  period.Period         // None when StatusOutsideWindow
	Entry   model.AttendanceEntry // set only when StatusRegistered
	Message string                // operator-facing advisory
}

func (o Outcome) Registered() bool {
	return o.Status == StatusRegistered
}

type Registrar struct {
	logger *slog.Logger
	users  UserDirectory
	ledger AttendanceLedger
}

func New(logger *slog.Logger, users UserDirectory, ledger AttendanceLedger) *Registrar {
	return &Registrar{
		logger: logger.With("module", "registrar"),
		users:  users,
		ledger: ledger,
	}
}

// Register runs one scan attempt at the given instant.
//
// recent is the attendance list the caller currently holds (usually the day
// range on screen); it is the first duplicate check. Because that list can be
// stale, a fresh ledger lookup runs immediately before the append, and the
// ledger's own uniqueness constraint is the final word when two operator
// stations race.
//
// Errors are returned only for storage failures; every policy decision comes
// back as an Outcome.
func (r *Registrar) Register(ctx context.Context, payload string, now time.Time, recent []model.AttendanceEntry) (Outcome, error) {
	user, err := r.users.Resolve(ctx, payload)
	if err != nil {
		if model.IsNotFound(err) {
			r.logger.Info("badge not recognized", "payload", payload)
			return Outcome{
				Status:  StatusUserNotFound,
				Message: "badge not recognized",
			}, nil
		}
		return Outcome{}, err
	}

	p := period.Classify(now)
	if p == period.None {
		r.logger.Info("scan outside serving windows", "user", user.FullName, "at", now)
		return Outcome{
			Status:  StatusOutsideWindow,
			User:    user,
			Message: fmt.Sprintf("it's not time yet, allowed times are %s", period.Windows),
		}, nil
	}

	outcome := Outcome{
		Status:  StatusDuplicateForPeriod,
		User:    user,
		Period:  p,
		Message: fmt.Sprintf("%s has already been registered for %s today", user.FullName, p),
	}

	for _, entry := range recent {
		if entry.SameSitting(user.FullName, now, p.String()) {
			return outcome, nil
		}
	}

	exists, err := r.ledger.ExistsForPeriod(ctx, user.FullName, now, p)
	if err != nil {
		return Outcome{}, err
	}
	if exists {
		return outcome, nil
	}

	entry, err := r.ledger.Append(ctx, model.AttendanceEntry{
		FullName: user.FullName,
		Level:    user.Level,
		Date:     now,
		Period:   p.String(),
	})
	if err != nil {
		// Two stations can pass the freshness check together; the ledger's
		// unique index turns the loser into a duplicate, not a failure.
		if model.IsExists(err) {
			return outcome, nil
		}
		return Outcome{}, err
	}

	r.logger.Info("registered attendance",
		slog.Group("entry", "user", entry.FullName, "period", entry.Period, "date", entry.Date),
	)

	return Outcome{
		Status: StatusRegistered,
		User:   user,
		Period: p,
		Entry:  entry,
	}, nil
}
