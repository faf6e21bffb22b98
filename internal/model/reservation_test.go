package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationTransitions(t *testing.T) {
	cases := []struct {
		from, to ReservationStatus
		ok       bool
	}{
		{ReservationPending, ReservationConfirmed, true},
		{ReservationPending, ReservationCancelled, true},
		{ReservationPending, ReservationRefunded, false},
		{ReservationPending, ReservationCompleted, false},
		{ReservationConfirmed, ReservationCancelled, true},
		{ReservationConfirmed, ReservationRefunded, true},
		{ReservationConfirmed, ReservationCompleted, true},
		{ReservationConfirmed, ReservationPending, false},
		{ReservationCancelled, ReservationConfirmed, false},
		{ReservationCancelled, ReservationPending, false},
		{ReservationRefunded, ReservationConfirmed, false},
		{ReservationCompleted, ReservationCancelled, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestReleasesSeats(t *testing.T) {
	assert.True(t, ReservationCancelled.ReleasesSeats())
	assert.True(t, ReservationRefunded.ReleasesSeats())
	assert.False(t, ReservationPending.ReleasesSeats())
	assert.False(t, ReservationConfirmed.ReleasesSeats())
	assert.False(t, ReservationCompleted.ReleasesSeats())
}

func TestComputeAmounts(t *testing.T) {
	total, commission, net := ComputeAmounts(4, 50, 10)
	assert.Equal(t, 200.0, total)
	assert.Equal(t, 20.0, commission)
	assert.Equal(t, 180.0, net)

	// Free events produce an all-zero money snapshot.
	total, commission, net = ComputeAmounts(3, 0, 15)
	assert.Zero(t, total)
	assert.Zero(t, commission)
	assert.Zero(t, net)
}
