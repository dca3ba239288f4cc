// internal/services/email_templates.go
package services

// Shared HTML shell for transactional mail. Placeholders: heading, body
// text, highlighted value, copyright year.
const transactionalEmailHTML = `
<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
      <tr>
        <td align="center" style="padding:32px 16px;">
          <table role="presentation" width="480" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
            <tr>
              <td align="center" style="padding-bottom:16px;">
                <h2 style="margin:0;color:#1a1a2e;">%s</h2>
              </td>
            </tr>
            <tr>
              <td align="center" style="color:#555;font-size:14px;line-height:20px;padding-bottom:24px;">%s</td>
            </tr>
            <tr>
              <td align="center" style="padding-bottom:24px;">
                <span style="display:inline-block;background:#eef1ff;border-radius:6px;padding:12px 28px;font-size:28px;letter-spacing:8px;font-weight:bold;color:#2b2d63;">%s</span>
              </td>
            </tr>
            <tr>
              <td align="center" style="color:#999;font-size:12px;">&copy; %d. All rights reserved.</td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`
