package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

type ID = int64

// BadgeID is the 12-digit identifier printed into a user's QR badge.
// It always crosses JSON boundaries as a decimal string, since values of
// this size are not representable in the integer range of every JSON
// consumer.
type BadgeID int64

const (
	MinBadgeID BadgeID = 100_000_000_000
	MaxBadgeID BadgeID = 999_999_999_999
)

func ParseBadgeID(s string) (BadgeID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("invalid badge id")
	}
	return BadgeID(n), nil
}

func (id BadgeID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id BadgeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *BadgeID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	parsed, err := ParseBadgeID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Level is the staff level field. The admin forms submit it sometimes as a
// number and sometimes as a string, so it is stored loosely as text.
type Level string

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*l = Level(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return errors.New("level must be a string or a number")
	}
	*l = Level(asNumber.String())
	return nil
}

type User struct {
	ID        BadgeID   `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	FullName   string  `json:"fullName" db:"full_name"`
	Position   *string `json:"position,omitempty" db:"position"`
	Department *string `json:"department,omitempty" db:"department"`
	Level      *Level  `json:"level,omitempty" db:"level"`
}

// AttendanceEntry is one recorded meal sitting. FullName and Level are
// snapshots of the user at scan time, not references: the historical record
// must survive later edits to the roster.
type AttendanceEntry struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	FullName string    `json:"fullName" db:"full_name"`
	Level    *Level    `json:"level,omitempty" db:"level"`
	Date     time.Time `json:"date" db:"date"`
	Period   string    `json:"period" db:"period"`
}

// SameSitting reports whether the entry records the given name for the same
// calendar day and meal period.
func (e AttendanceEntry) SameSitting(fullName string, day time.Time, period string) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := day.Date()
	return e.FullName == fullName && e.Period == period && y1 == y2 && m1 == m2 && d1 == d2
}
