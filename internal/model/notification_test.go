package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduledNotification_Status(t *testing.T) {
	now := time.Now()
	cancelled := CancelledNote
	sendErr := "green API error: 502 Bad Gateway"

	tests := []struct {
		name string
		n    ScheduledNotification
		want string
	}{
		{
			name: "fresh record",
			n:    ScheduledNotification{},
			want: StatusPending,
		},
		{
			name: "failed attempts remain pending below the cap",
			n:    ScheduledNotification{Attempts: MaxAttempts - 1, LastError: &sendErr},
			want: StatusPending,
		},
		{
			name: "attempt cap reached",
			n:    ScheduledNotification{Attempts: MaxAttempts, LastError: &sendErr},
			want: StatusFailed,
		},
		{
			name: "delivered",
			n:    ScheduledNotification{Sent: true, SentAt: &now, Attempts: 1},
			want: StatusSent,
		},
		{
			name: "cancelled reservation",
			n:    ScheduledNotification{Sent: true, SentAt: &now, LastError: &cancelled},
			want: StatusCancelled,
		},
		{
			name: "sent with an earlier transient error",
			n:    ScheduledNotification{Sent: true, SentAt: &now, Attempts: 2, LastError: &sendErr},
			want: StatusSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.Status())
		})
	}
}

func TestNewVariableSnapshot(t *testing.T) {
	start := time.Date(2026, 9, 4, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC)

	r := Reservation{
		Number:    4711,
		StartDate: start,
		EndDate:   end,
		PetName:   "Rex",
		Customer:  Customer{FirstName: "Dana", LastName: "Levi"},
		Room:      Room{Name: "Garden Suite"},
	}

	v := NewVariableSnapshot(r)

	assert.Equal(t, "Dana", v.FirstName)
	assert.Equal(t, "Dana Levi", v.FullName)
	assert.Equal(t, "Rex", v.PetName)
	assert.Equal(t, "04/09/2026", v.CheckInDate)
	assert.Equal(t, "15:00", v.CheckInTime)
	assert.Equal(t, "07/09/2026", v.CheckOutDate)
	assert.Equal(t, "Garden Suite", v.RoomName)
	assert.Equal(t, "4711", v.ReservationID)

	m := v.Map()
	assert.Equal(t, "Dana", m["first_name"])
	assert.Equal(t, "4711", m["reservation_id"])
}

func TestCustomer_FullName(t *testing.T) {
	assert.Equal(t, "Dana Levi", Customer{FirstName: "Dana", LastName: "Levi"}.FullName())
	assert.Equal(t, "Dana", Customer{FirstName: "Dana"}.FullName())
}
