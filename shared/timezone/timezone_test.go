package timezone_test

import (
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, timezone.Now().Day(), today.Day())
}

func TestDateOf(t *testing.T) {
	in := time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC)
	got := timezone.DateOf(in)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, 0, got.Hour())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain date",
			value: "2024-06-01",
			want:  "2024-06-01",
		},
		{
			name:  "rfc3339 timestamp",
			value: "2024-06-05T00:00:00Z",
			want:  timezone.Format(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), time.DateOnly),
		},
		{
			name:    "day first is rejected",
			value:   "01/06/2024",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(time.DateOnly))
		})
	}
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))
}
