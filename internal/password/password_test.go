package password

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "Str0ng&Secure!Pass", wantErr: nil},
		{name: "too short", password: "Ab1!x", wantErr: ErrTooShort},
		{name: "no uppercase", password: "weakpass1!x", wantErr: ErrNoUppercase},
		{name: "no lowercase", password: "WEAKPASS1!X", wantErr: ErrNoLowercase},
		{name: "no digit", password: "WeakPassword!", wantErr: ErrNoDigit},
		{name: "no special", password: "WeakPassword1", wantErr: ErrNoSpecial},
		{name: "low entropy", password: "Aaaaaaaaa1!", wantErr: ErrTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePassword(%q) error = %v, want nil", tt.password, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) error = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
