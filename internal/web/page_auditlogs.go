package web

import (
	"fmt"
	"net/url"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/somshrestha/inflo-tech-test/internal/data"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

var actionTypes = []string{data.ActionCreate, data.ActionUpdate, data.ActionDelete}

func auditLogsPage(model viewmodels.AuditLogListViewModel) Node {
	actionOptions := []Node{optionSelected("", "All actions", model.ActionTypeFilter)}
	for _, action := range actionTypes {
		actionOptions = append(actionOptions, optionSelected(action, action, model.ActionTypeFilter))
	}

	sortValue := strconv.FormatBool(model.SortDescending)
	filters := Form(Method("get"), Action("/auditlogs"), Class("row g-2 mb-3"),
		Input(Type("hidden"), Name("pageSize"), Value(strconv.Itoa(model.PageSize))),
		Div(Class("col-md-5"),
			Input(Type("search"), Class("form-control"), Name("search"), Value(model.SearchQuery), Placeholder("Search details")),
		),
		Div(Class("col-md-3"),
			Select(Class("form-select"), Name("actionType"), Group(actionOptions)),
		),
		Div(Class("col-md-2"),
			Select(Class("form-select"), Name("sortDescending"),
				optionSelected("true", "Newest first", sortValue),
				optionSelected("false", "Oldest first", sortValue),
			),
		),
		Div(Class("col-md-2"),
			Button(Type("submit"), Class("btn btn-primary w-100"), Text("Filter")),
		),
	)

	var table Node
	if len(model.Items) == 0 {
		table = P(Class("text-muted"), Text("No audit logs found."))
	} else {
		table = Table(Class("table table-striped"),
			THead(Tr(
				Th(Text("Timestamp")),
				Th(Text("User")),
				Th(Text("Action")),
				Th(Text("Details")),
				Th(),
			)),
			TBody(Map(model.Items, auditLogRow)),
		)
	}

	return appPage("Audit Logs", "auditlogs",
		filters,
		table,
		pager(model),
	)
}

func auditLogRow(l viewmodels.AuditLogViewModel) Node {
	return Tr(
		Td(Text(formatTimestamp(l.Timestamp))),
		Td(A(Href(fmt.Sprintf("/users/%d", l.UserID)), Text(strconv.FormatInt(l.UserID, 10)))),
		Td(Text(l.ActionType)),
		Td(Text(l.Details)),
		Td(A(Href(fmt.Sprintf("/auditlogs/%d", l.ID)), Class("btn btn-sm btn-link"), Text("Details"))),
	)
}

func pager(model viewmodels.AuditLogListViewModel) Node {
	totalPages := max(model.TotalPages(), 1)

	prev := Li(Class("page-item disabled"), Span(Class("page-link"), Text("Previous")))
	if model.HasPrevious() {
		prev = Li(Class("page-item"), A(Class("page-link"), Href(auditLogsURL(model, model.CurrentPage-1)), Text("Previous")))
	}
	next := Li(Class("page-item disabled"), Span(Class("page-link"), Text("Next")))
	if model.HasNext() {
		next = Li(Class("page-item"), A(Class("page-link"), Href(auditLogsURL(model, model.CurrentPage+1)), Text("Next")))
	}

	return Nav(Attr("aria-label", "Audit log pages"),
		Ul(Class("pagination"),
			prev,
			Li(Class("page-item disabled"), Span(Class("page-link"),
				Text(fmt.Sprintf("Page %d of %d (%d entries)", model.CurrentPage, totalPages, model.TotalItems)))),
			next,
		),
	)
}

// auditLogsURL keeps the current filters while moving to page
func auditLogsURL(model viewmodels.AuditLogListViewModel, page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(model.PageSize))
	if model.SearchQuery != "" {
		q.Set("search", model.SearchQuery)
	}
	if model.ActionTypeFilter != "" {
		q.Set("actionType", model.ActionTypeFilter)
	}
	q.Set("sortDescending", strconv.FormatBool(model.SortDescending))
	return "/auditlogs?" + q.Encode()
}

func auditLogDetailsPage(l viewmodels.AuditLogViewModel) Node {
	return appPage("Audit Log Details", "auditlogs",
		Dl(Class("row"),
			Dt(Class("col-sm-3"), Text("Id")), Dd(Class("col-sm-9"), Text(strconv.FormatInt(l.ID, 10))),
			Dt(Class("col-sm-3"), Text("User")),
			Dd(Class("col-sm-9"), A(Href(fmt.Sprintf("/users/%d", l.UserID)), Text(strconv.FormatInt(l.UserID, 10)))),
			Dt(Class("col-sm-3"), Text("Action")), Dd(Class("col-sm-9"), Text(l.ActionType)),
			Dt(Class("col-sm-3"), Text("Timestamp")), Dd(Class("col-sm-9"), Text(formatTimestamp(l.Timestamp))),
			Dt(Class("col-sm-3"), Text("Details")), Dd(Class("col-sm-9"), Text(l.Details)),
		),
		A(Href("/auditlogs"), Class("btn btn-link"), Text("Back to audit logs")),
	)
}

func optionSelected(value, label, selected string) Node {
	if value == selected {
		return Option(Value(value), Selected(), Text(label))
	}
	return Option(Value(value), Text(label))
}
