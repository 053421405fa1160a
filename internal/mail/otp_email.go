package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// OTPEmailSubject is the subject line of every OTP delivery.
const OTPEmailSubject = "Your Login OTP Code"

const otpEmailTemplate = `
<h2>Welcome {{.Username}}!</h2>
<p>Your OTP code is: <strong style="font-size: 24px; color: #667eea;">{{.Code}}</strong></p>
<p>This code will expire in {{.Minutes}} minutes.</p>
<p>If you did not request this code, please ignore this email.</p>
`

var otpEmail = template.Must(template.New("otp-email").Parse(otpEmailTemplate))

// RenderOTPEmail produces the HTML body for an OTP delivery. The username
// and code are HTML-escaped by the template engine.
func RenderOTPEmail(username, code string, ttl time.Duration) (string, error) {
	var body bytes.Buffer
	err := otpEmail.Execute(&body, struct {
		Username string
		Code     string
		Minutes  int
	}{
		Username: username,
		Code:     code,
		Minutes:  int(ttl.Minutes()),
	})
	if err != nil {
		return "", fmt.Errorf("error rendering otp email: %w", err)
	}

	return body.String(), nil
}
