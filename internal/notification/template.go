package notification

import "fmt"

const passwordResetHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>OTP for Password Reset</title>
</head>
<body style="font-family: Arial, sans-serif; font-size: 16px; color: #333;">
  <h2>Your OTP for Password Reset</h2>
  <p>Hello,</p>
  <p>We received a request to reset your password. Please use the OTP below to reset your password:</p>
  <div style="font-size: 20px; font-weight: bold; color: white; background-color: #808080; text-align: center; padding: 10px 20px; border-radius: 8px; display: inline-block; margin: 20px 0;">%s</div>
  <p>This OTP is valid for 10 minutes. If you did not request a password reset, please ignore this email.</p>
  <p>Thank you,<br>DuMovie Support</p>
</body>
</html>`

// PasswordResetMessage renders the OTP email sent during the forgot-password flow.
func PasswordResetMessage(to, code string) Message {
	return Message{
		To:      to,
		Subject: "Password Reset OTP",
		Body:    fmt.Sprintf(passwordResetHTML, code),
		HTML:    true,
	}
}
