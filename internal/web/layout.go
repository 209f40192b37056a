package web

import (
	"time"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "Users", Href: "/users", Key: "users"},
	{Label: "Audit Logs", Href: "/auditlogs", Key: "auditlogs"},
}

const appName = "User Management"

func appPage(title, active string, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "nav-link"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, Li(Class("nav-item"), A(Href(item.Href), Class(className), Text(item.Label))))
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(Text(title+" | "+appName)),
				Link(Rel("icon"), Href("data:,")),
				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css")),
			),
			Body(
				Header(
					Nav(Class("navbar navbar-expand navbar-light bg-white border-bottom mb-3"),
						Div(Class("container"),
							A(Class("navbar-brand"), Href("/"), Text(appName)),
							Ul(Class("navbar-nav"), Group(nav)),
						),
					),
				),
				Main(Class("container pb-3"),
					H2(Text(title)),
					Group(body),
				),
			),
		),
	)
}

func errorPage(title, message string) Node {
	return appPage(title, "",
		Div(Class("alert alert-danger"), Attr("role", "alert"), Text(message)),
		A(Href("/users"), Class("btn btn-default"), Text("Back to users")),
	)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
