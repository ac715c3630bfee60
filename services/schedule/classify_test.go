package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wellspring/models"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session models.Session
		want    Classification
	}{
		{
			name: "future with free capacity",
			session: models.Session{
				StartTime:        now.AddDate(0, 0, 1),
				MaxParticipants:  10,
				ParticipantCount: 3,
			},
			want: Available,
		},
		{
			name: "future at exact capacity",
			session: models.Session{
				StartTime:        now.AddDate(0, 0, 1),
				MaxParticipants:  10,
				ParticipantCount: 10,
			},
			want: Full,
		},
		{
			name: "future overbooked still classifies full",
			session: models.Session{
				StartTime:        now.AddDate(0, 0, 1),
				MaxParticipants:  10,
				ParticipantCount: 12,
			},
			want: Full,
		},
		{
			name: "started a second ago",
			session: models.Session{
				StartTime:        now.Add(-time.Second),
				MaxParticipants:  10,
				ParticipantCount: 0,
			},
			want: Past,
		},
		{
			name: "past and over capacity classifies past, not full",
			session: models.Session{
				StartTime:        now.AddDate(0, 0, -1),
				MaxParticipants:  5,
				ParticipantCount: 9,
			},
			want: Past,
		},
		{
			name: "starting exactly now is not past",
			session: models.Session{
				StartTime:        now,
				MaxParticipants:  10,
				ParticipantCount: 1,
			},
			want: Available,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.session, now))
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	// Every (session, now) pair yields exactly one of the three labels.
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	starts := []time.Time{now.AddDate(0, 0, -1), now, now.AddDate(0, 0, 1)}

	for _, start := range starts {
		for count := 0; count <= 12; count += 3 {
			c := Classify(models.Session{
				StartTime:        start,
				MaxParticipants:  10,
				ParticipantCount: count,
			}, now)
			assert.Contains(t, []Classification{Past, Full, Available}, c)
			assert.NotEqual(t, "unknown", c.String())
		}
	}
}
