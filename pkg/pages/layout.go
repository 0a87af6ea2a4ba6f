// Package pages renders the HTML shared by every view: the layout, header and
// the tile, grid, slider and filter building blocks.
package pages

import (
	"fmt"
	"html"
	"strings"

	"github.com/marqueehq/marquee/pkg/userstore"
)

const baseTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #0b0b0f; color: #eee; }
    a { color: inherit; }
    main { max-width: 1280px; margin: 0 auto; padding: 80px 16px 32px; }
    header { position: fixed; top: 0; left: 0; right: 0; z-index: 10; background: rgba(0,0,0,.85); border-bottom: 1px solid #222; }
    header nav { max-width: 1280px; margin: 0 auto; padding: 12px 16px; display: flex; gap: 16px; align-items: center; }
    header .brand { font-weight: bold; color: #ed1045; text-decoration: none; margin-right: 16px; }
    header .nav-link { text-decoration: none; color: #aaa; }
    header .nav-link.active { color: #fff; }
    header .account { margin-left: auto; display: flex; gap: 8px; align-items: center; }
    header .avatar { width: 28px; height: 28px; border-radius: 50%%; }
    .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(160px, 1fr)); gap: 16px; }
    .slider { display: flex; gap: 12px; overflow-x: auto; padding-bottom: 8px; }
    .slider .tile { flex: 0 0 160px; }
    .tile { display: block; text-decoration: none; }
    .tile img, .tile .no-image { width: 100%%; aspect-ratio: 2 / 3; border-radius: 8px; object-fit: cover; background: #222; }
    .tile-title { font-weight: 600; margin-top: 6px; }
    .tile-meta { font-size: .85em; color: #999; }
    .rating { color: #ed1045; }
    .filters { display: flex; gap: 12px; flex-wrap: wrap; margin-bottom: 16px; }
    .filters select, .filters button, .pagination button { background: #1a1a22; color: #eee; border: 1px solid #333; padding: 8px 12px; border-radius: 6px; }
    .pagination { display: flex; gap: 12px; align-items: center; justify-content: center; margin: 24px 0; }
    .pagination button[disabled] { color: #555; }
    .hero { position: relative; min-height: 60vh; background-size: cover; background-position: center; border-radius: 12px; display: flex; align-items: flex-end; }
    .hero-body { padding: 32px; background: linear-gradient(transparent, rgba(0,0,0,.85)); width: 100%%; border-radius: 0 0 12px 12px; }
    .button { display: inline-block; padding: 10px 20px; border-radius: 8px; background: #ed1045; color: #fff; text-decoration: none; }
    .empty { color: #888; padding: 32px 0; text-align: center; }
    .tabs .tab, .season-list .season, .episode-list .episode { text-decoration: none; color: #aaa; padding: 6px 12px; border-radius: 6px; }
    .tab.selected, .season.selected, .episode.selected { background: #ed1045; color: #fff; }
    .details { display: flex; gap: 24px; flex-wrap: wrap; margin: 24px 0; }
    .details .poster { width: 300px; max-width: 100%%; aspect-ratio: 2 / 3; border-radius: 8px; object-fit: cover; background: #222; }
    .details-body { flex: 1; min-width: 280px; }
    .tagline { font-style: italic; color: #aaa; }
    .genres { list-style: none; padding: 0; display: flex; gap: 8px; flex-wrap: wrap; }
    .genres li, .badge { background: #1a1a22; border-radius: 999px; padding: 4px 12px; font-size: .85em; margin-right: 8px; }
    .player { position: relative; width: 100%%; aspect-ratio: 16 / 9; }
    .player iframe { width: 100%%; height: 100%%; border: 0; }
    .episodes { display: flex; gap: 24px; flex-wrap: wrap; }
    .season-list { display: flex; flex-direction: column; gap: 4px; min-width: 180px; }
    .episode-list { flex: 1; display: flex; flex-wrap: wrap; gap: 8px; align-content: flex-start; }
    .episode-list h2 { width: 100%%; }
  </style>
</head>
<body>
%s
<main>
%s
</main>
<script>
  (function () {
    if (!window.EventSource) return;
    var seen = null;
    new EventSource("/auth/events").addEventListener("user", function (e) {
      if (seen === null) { seen = e.data; return; }
      if (e.data !== seen) location.reload();
    });
  })();
</script>
</body>
</html>`

const appName = "Marquee"

// Header describes the navigation bar of a page.
type Header struct {
	// Active is the path of the current section, e.g. "/movies".
	Active string
	User   *userstore.User
}

var sections = []struct {
	path  string
	label string
}{
	{"/", "Home"},
	{"/movies", "Movies"},
	{"/tvshows", "TV Shows"},
	{"/trending", "Trending"},
	{"/search", "Search"},
}

func header(h Header) string {
	var b strings.Builder
	b.WriteString(`<header><nav>`)
	fmt.Fprintf(&b, `<a href="/" class="brand">%s</a>`, appName)
	for _, s := range sections {
		class := "nav-link"
		if s.path == h.Active {
			class += " active"
		}
		fmt.Fprintf(&b, `<a href="%s" class="%s">%s</a>`, s.path, class, s.label)
	}

	b.WriteString(`<div class="account">`)
	if h.User == nil {
		b.WriteString(`<a href="/login" class="button">Sign in</a>`)
	} else {
		if h.User.PhotoURL != nil {
			fmt.Fprintf(&b, `<img src="%s" alt="" class="avatar">`, html.EscapeString(*h.User.PhotoURL))
		}
		name := h.User.UID
		if h.User.DisplayName != nil {
			name = *h.User.DisplayName
		}
		fmt.Fprintf(&b, `<span class="user-name">%s</span>`, html.EscapeString(name))
		b.WriteString(`<form method="post" action="/auth/logout"><button type="submit">Sign out</button></form>`)
	}
	b.WriteString(`</div></nav></header>`)
	return b.String()
}

// Render wraps content in the layout. title is escaped; content is trusted.
func Render(title string, h Header, content string) string {
	full := appName
	if title != "" {
		full = title + " | " + appName
	}
	return fmt.Sprintf(baseTemplate, html.EscapeString(full), header(h), content)
}

// Section renders a titled block.
func Section(title, content string) string {
	return fmt.Sprintf(`<section><h2>%s</h2>%s</section>`, html.EscapeString(title), content)
}

// Empty renders a placeholder message.
func Empty(message string) string {
	return fmt.Sprintf(`<p class="empty">%s</p>`, html.EscapeString(message))
}

// ErrorPage renders the terminal page for a failed request.
func ErrorPage(h Header, code int, message string) string {
	title := "Something went wrong"
	if code == 404 {
		title = "Not found"
	}
	content := fmt.Sprintf(`<div class="empty"><h1>%s</h1><p>%s</p><p><a href="/" class="button">Back to home</a></p></div>`,
		title, html.EscapeString(message))
	return Render(title, h, content)
}
