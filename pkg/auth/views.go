package auth

import (
	"fmt"
	"html"
)

func loginContent(clientID, callback string) string {
	if clientID == "" {
		return `<div class="empty"><h1>Sign in</h1><p>Sign-in is not configured.</p></div>`
	}
	return fmt.Sprintf(`<div class="empty">
  <h1>Sign in</h1>
  <p>Sign in to keep your place across visits.</p>
  <script src="https://accounts.google.com/gsi/client" async></script>
  <div id="g_id_onload" data-client_id="%s" data-ux_mode="popup" data-login_uri="%s" data-auto_prompt="false"></div>
  <div class="g_id_signin" data-type="standard" data-shape="pill" data-theme="filled_black"></div>
</div>`, html.EscapeString(clientID), html.EscapeString(callback))
}
