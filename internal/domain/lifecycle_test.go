package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		role    Role
		isOwner bool
		wantErr error
	}{
		{name: "admin confirms pending", from: StatusPending, to: StatusConfirmed, role: RoleAdmin},
		{name: "user cannot confirm own pending", from: StatusPending, to: StatusConfirmed, role: RoleUser, isOwner: true, wantErr: ErrTransitionForbidden},
		{name: "admin rejects pending", from: StatusPending, to: StatusRejected, role: RoleAdmin},
		{name: "user cannot reject", from: StatusPending, to: StatusRejected, role: RoleUser, isOwner: true, wantErr: ErrTransitionForbidden},
		{name: "owner cancels pending", from: StatusPending, to: StatusCancelled, role: RoleUser, isOwner: true},
		{name: "admin cancels pending", from: StatusPending, to: StatusCancelled, role: RoleAdmin},
		{name: "stranger cannot cancel pending", from: StatusPending, to: StatusCancelled, role: RoleUser, wantErr: ErrTransitionForbidden},
		{name: "admin rejects confirmed", from: StatusConfirmed, to: StatusRejected, role: RoleAdmin},
		{name: "admin cancels confirmed", from: StatusConfirmed, to: StatusCancelled, role: RoleAdmin},
		{name: "owner cannot cancel confirmed", from: StatusConfirmed, to: StatusCancelled, role: RoleUser, isOwner: true, wantErr: ErrConfirmedNeedsAdmin},
		{name: "no confirmed to pending reversal", from: StatusConfirmed, to: StatusPending, role: RoleAdmin, wantErr: ErrTransitionNotAllowed},
		{name: "no self transition", from: StatusPending, to: StatusPending, role: RoleAdmin, wantErr: ErrTransitionNotAllowed},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, role: RoleAdmin, wantErr: ErrTransitionNotAllowed},
		{name: "rejected is terminal", from: StatusRejected, to: StatusCancelled, role: RoleAdmin, wantErr: ErrTransitionNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.role, tt.isOwner)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanRemove(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		role    Role
		isOwner bool
		wantErr error
	}{
		{name: "owner removes pending", status: StatusPending, role: RoleUser, isOwner: true},
		{name: "admin removes pending", status: StatusPending, role: RoleAdmin},
		{name: "stranger cannot remove", status: StatusPending, role: RoleUser, wantErr: ErrTransitionForbidden},
		{name: "owner cannot remove confirmed", status: StatusConfirmed, role: RoleUser, isOwner: true, wantErr: ErrConfirmedNeedsAdmin},
		{name: "admin removes confirmed", status: StatusConfirmed, role: RoleAdmin},
		{name: "owner removes cancelled", status: StatusCancelled, role: RoleUser, isOwner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanRemove(tt.status, tt.role, tt.isOwner)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "rejected", "cancelled"} {
		status, err := ParseBookingStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, BookingStatus(s), status)
	}

	_, err := ParseBookingStatus("in_progress")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
