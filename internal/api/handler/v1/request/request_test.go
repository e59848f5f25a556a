package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr error
		invalid bool
	}{
		{
			name: "valid",
			req:  SignupRequest{Email: "ann@example.com", Password: "secret123", ConfirmPassword: "secret123", Name: "Ann"},
		},
		{
			name:    "bad email",
			req:     SignupRequest{Email: "ann", Password: "secret123", ConfirmPassword: "secret123", Name: "Ann"},
			invalid: true,
		},
		{
			name:    "password without digit",
			req:     SignupRequest{Email: "ann@example.com", Password: "secretpass", ConfirmPassword: "secretpass", Name: "Ann"},
			wantErr: errInvalidPassword,
		},
		{
			name:    "password too short",
			req:     SignupRequest{Email: "ann@example.com", Password: "abc12", ConfirmPassword: "abc12", Name: "Ann"},
			wantErr: errInvalidPassword,
		},
		{
			name:    "confirmation mismatch",
			req:     SignupRequest{Email: "ann@example.com", Password: "secret123", ConfirmPassword: "secret124", Name: "Ann"},
			wantErr: errConfirmPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.invalid:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestTicketIDsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&TicketIDsRequest{TicketIDs: []uint{1, 2}}).Validate())
	assert.Error(t, (&TicketIDsRequest{}).Validate())
	assert.Error(t, (&TicketIDsRequest{TicketIDs: []uint{1, 0}}).Validate())
	assert.Error(t, (&TicketIDsRequest{TicketIDs: make([]uint, maxTicketsPerRequest+1)}).Validate())
}

func TestOrderEventRequest_Validate(t *testing.T) {
	assert.NoError(t, (&OrderEventRequest{Type: "CREATED"}).Validate())
	assert.NoError(t, (&OrderEventRequest{Type: "REFUNDED", TicketIDs: []uint{4}}).Validate())
	assert.Error(t, (&OrderEventRequest{Type: "UNPAID"}).Validate())
	assert.Error(t, (&OrderEventRequest{Type: "LOST", TicketIDs: []uint{4}}).Validate())
	assert.Error(t, (&OrderEventRequest{}).Validate())
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateStatusRequest{Status: "PAUSED"}).Validate())
	assert.Error(t, (&UpdateStatusRequest{Status: "paused"}).Validate())
}
