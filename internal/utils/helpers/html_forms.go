package helpers

import (
	"fmt"
	"html"
)

// BuildPasswordResetOTPHTML - письмо с кодом сброса пароля.
func BuildPasswordResetOTPHTML(code string, minutes int) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif; background:#f9f9f9;">
    <table width="100%%" cellpadding="0" cellspacing="0" bgcolor="#f9f9f9">
      <tr>
        <td align="center" style="padding:32px 0;">
          <table width="500" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:8px; box-shadow:0 1px 6px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da; margin-top:0;">Password reset</h2>
                <div style="font-size:16px; color:#222;">Your password reset code is:</div>
                <p style="font-size:32px; letter-spacing:6px; font-weight:bold; color:#222; margin:24px 0;">%s</p>
                <div style="font-size:14px; color:#555;">The code expires in %d minutes.</div>
                <hr style="margin:32px 0 16px 0; border:0; border-top:1px solid #eee;">
                <div style="font-size:12px; color:#999;">If you did not request a password reset, ignore this email.</div>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, html.EscapeString(code), minutes)
}
