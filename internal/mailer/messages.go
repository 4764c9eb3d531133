package mailer

import "fmt"

// Welcome is sent right after a successful signup.
func Welcome(to string) Notification {
	return Notification{
		To:      to,
		Subject: "회원 가입을 환영합니다.",
		HTML: `<html>
	<body>
		<p><strong>메모 앱</strong> 회원가입을 환영합니다!</p>
		<p>앞으로 많은 이용 부탁 드리며, 사용에 불편함이 있거나, 제안사항이 있으시면</p>
		<p>언제든 피드백 부탁 드립니다! 👍🏻</p>
	</body>
</html>`,
	}
}

// Goodbye is sent after account withdrawal completes.
func Goodbye(to string) Notification {
	return Notification{
		To:      to,
		Subject: "탈퇴 완료 이메일.",
		HTML: `<html>
	<body>
		<p><strong>메모 앱</strong> 회원 탈퇴가 완료되었습니다.</p>
		<p>그동안 고객님의 이용에 감사 드리며, 더 나은 서비스가 되도록 노력하겠습니다.🙇🏻‍♀️</p>
		<p>곧 고객님을 다시 만날 날을 기다리겠습니다. 🙋🏻‍♂️</p>
	</body>
</html>`,
	}
}

// UsernameReminder carries the account's username to its registered email.
func UsernameReminder(to, username string) Notification {
	return Notification{
		To:      to,
		Subject: "아이디 찾기 이메일.",
		HTML: fmt.Sprintf(`<html>
	<body>
		<p>사용자님의 아이디는 <strong>%s</strong> 입니다.</p>
	</body>
</html>`, username),
	}
}

// TempPassword carries a freshly generated temporary password.
func TempPassword(to, username, tempPassword string) Notification {
	return Notification{
		To:      to,
		Subject: "임시 비밀번호 이메일",
		HTML: fmt.Sprintf(`<html>
	<body>
		<p><strong>%s</strong>님의 임시비밀번호는 %s 입니다.</p>
		<p>해당 비밀번호는 임시 비밀번호이므로, 비밀번호를 변경하는 것을 권장 드립니다.</p>
	</body>
</html>`, username, tempPassword),
	}
}

// PasswordChanged notifies the account owner that the password was changed.
func PasswordChanged(to, username string) Notification {
	return Notification{
		To:      to,
		Subject: "비밀번호 변경 안내 이메일",
		HTML: fmt.Sprintf(`<html>
	<body>
		<p><strong>%s</strong> 사용자님의 비밀번호가 변경되었습니다.</p>
		<p>만약 본인이 변경한 것이 아니라면 즉시 비밀번호를 변경해 주세요.</p>
	</body>
</html>`, username),
	}
}
