package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeIDMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(model.BadgeID(100000000001))
	require.NoError(t, err)
	assert.Equal(t, `"100000000001"`, string(data))
}

func TestBadgeIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.BadgeID
		wantErr bool
	}{
		{name: "string", input: `"100000000001"`, want: 100000000001},
		{name: "number", input: `100000000001`, want: 100000000001},
		{name: "garbage", input: `"abc"`, wantErr: true},
		{name: "float", input: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id model.BadgeID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestParseBadgeID(t *testing.T) {
	id, err := model.ParseBadgeID("100000000001")
	require.NoError(t, err)
	assert.Equal(t, model.BadgeID(100000000001), id)

	_, err = model.ParseBadgeID("12x")
	require.Error(t, err)
}

func TestLevelUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var l model.Level

	require.NoError(t, json.Unmarshal([]byte(`"2"`), &l))
	assert.Equal(t, model.Level("2"), l)

	require.NoError(t, json.Unmarshal([]byte(`2`), &l))
	assert.Equal(t, model.Level("2"), l)

	require.Error(t, json.Unmarshal([]byte(`[2]`), &l))
}

func TestUserJSONKeepsIDPrecision(t *testing.T) {
	user := model.User{ID: model.MaxBadgeID, FullName: "Jane Doe"}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"999999999999"`)

	var decoded model.User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, model.MaxBadgeID, decoded.ID)
}

func TestSameSitting(t *testing.T) {
	entry := model.AttendanceEntry{
		FullName: "Jane Doe",
		Date:     time.Date(2025, time.January, 10, 8, 0, 0, 0, time.Local),
		Period:   "lunch",
	}

	noon := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.Local)
	nextDay := noon.AddDate(0, 0, 1)

	assert.True(t, entry.SameSitting("Jane Doe", noon, "lunch"))
	assert.False(t, entry.SameSitting("Jane Doe", noon, "dinner"))
	assert.False(t, entry.SameSitting("Jane Doe", nextDay, "lunch"))
	assert.False(t, entry.SameSitting("John Smith", noon, "lunch"))
}
