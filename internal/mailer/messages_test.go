package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationBuilders(t *testing.T) {
	tests := []struct {
		name         string
		notification Notification
		wantTo       string
		wantInBody   []string
	}{
		{
			name:         "welcome",
			notification: Welcome("new@example.com"),
			wantTo:       "new@example.com",
			wantInBody:   []string{"회원가입을 환영합니다"},
		},
		{
			name:         "goodbye",
			notification: Goodbye("gone@example.com"),
			wantTo:       "gone@example.com",
			wantInBody:   []string{"탈퇴가 완료되었습니다"},
		},
		{
			name:         "username reminder",
			notification: UsernameReminder("user@example.com", "haeun01"),
			wantTo:       "user@example.com",
			wantInBody:   []string{"haeun01", "아이디"},
		},
		{
			name:         "temp password",
			notification: TempPassword("user@example.com", "haeun01", "Tmp@123456"),
			wantTo:       "user@example.com",
			wantInBody:   []string{"haeun01", "Tmp@123456", "임시"},
		},
		{
			name:         "password changed",
			notification: PasswordChanged("user@example.com", "haeun01"),
			wantTo:       "user@example.com",
			wantInBody:   []string{"haeun01", "변경"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTo, tt.notification.To)
			assert.NotEmpty(t, tt.notification.Subject)
			for _, fragment := range tt.wantInBody {
				assert.Contains(t, tt.notification.HTML, fragment)
			}
		})
	}
}
