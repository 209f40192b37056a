package web

import (
	"fmt"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

type filterLink struct {
	Label string
	Href  string
	Value *bool
}

func usersListPage(model viewmodels.UserListViewModel) Node {
	active, inactive := true, false
	filters := []filterLink{
		{Label: "Show All", Href: "/users"},
		{Label: "Active Only", Href: "/users?isActive=true", Value: &active},
		{Label: "Non Active", Href: "/users?isActive=false", Value: &inactive},
	}

	buttons := make([]Node, 0, len(filters))
	for _, f := range filters {
		className := "btn btn-outline-secondary"
		if sameFilter(f.Value, model.IsActiveFilter) {
			className += " active"
		}
		buttons = append(buttons, A(Href(f.Href), Class(className), Text(f.Label)))
	}

	var table Node
	if len(model.Items) == 0 {
		table = P(Class("text-muted"), Text("No users found."))
	} else {
		table = Table(Class("table table-striped"),
			THead(Tr(
				Th(Text("Id")),
				Th(Text("Forename")),
				Th(Text("Surname")),
				Th(Text("Email")),
				Th(Text("Account Active")),
				Th(Text("Date of Birth")),
				Th(),
			)),
			TBody(Map(model.Items, userRow)),
		)
	}

	return appPage("User List", "users",
		Div(Class("d-flex justify-content-between mb-3"),
			Div(Class("btn-group"), Group(buttons)),
			A(Href("/users/add"), Class("btn btn-primary"), Text("Add User")),
		),
		table,
	)
}

func userRow(u viewmodels.UserListItemViewModel) Node {
	id := strconv.FormatInt(u.ID, 10)
	return Tr(
		Td(Text(id)),
		Td(Text(u.Forename)),
		Td(Text(u.Surname)),
		Td(Text(u.Email)),
		Td(Text(yesNo(u.IsActive))),
		Td(Text(formatDate(u.DateOfBirth))),
		Td(Class("text-end"),
			A(Href("/users/"+id), Class("btn btn-sm btn-link"), Text("View")),
			A(Href("/users/edit/"+id), Class("btn btn-sm btn-link"), Text("Edit")),
			A(Href("/users/delete/"+id), Class("btn btn-sm btn-link text-danger"), Text("Delete")),
		),
	)
}

func sameFilter(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// userForm is the add and edit page
type userForm struct {
	Title   string
	Action  string
	User    viewmodels.UserViewModel
	Errors  map[string]string
	Summary string
}

func userFormPage(csrf Node, form userForm) Node {
	var summary Node
	if form.Summary != "" {
		summary = Div(Class("alert alert-danger"), Attr("role", "alert"), Text(form.Summary))
	}

	checkbox := []Node{Type("checkbox"), Class("form-check-input"), ID("isActive"), Name("isActive"), Value("true")}
	if form.User.IsActive {
		checkbox = append(checkbox, Checked())
	}

	return appPage(form.Title, "users",
		summary,
		Form(Method("post"), Action(form.Action),
			csrf,
			Input(Type("hidden"), Name("id"), Value(strconv.FormatInt(form.User.ID, 10))),
			textField("forename", "Forename", "text", form.User.Forename, form.Errors["Forename"]),
			textField("surname", "Surname", "text", form.User.Surname, form.Errors["Surname"]),
			textField("email", "Email", "email", form.User.Email, form.Errors["Email"]),
			Div(Class("form-check mb-3"),
				Input(checkbox...),
				Label(For("isActive"), Class("form-check-label"), Text("Account Active")),
			),
			textField("dateOfBirth", "Date of Birth", "date", formatDate(form.User.DateOfBirth), form.Errors["DateOfBirth"]),
			Div(Class("mt-3"),
				Button(Type("submit"), Class("btn btn-primary"), Text("Save")),
				A(Href("/users"), Class("btn btn-link"), Text("Back to list")),
			),
		),
	)
}

func textField(name, label, inputType, value, fieldErr string) Node {
	inputClass := "form-control"
	if fieldErr != "" {
		inputClass += " is-invalid"
	}
	return Div(Class("mb-3"),
		Label(For(name), Class("form-label"), Text(label)),
		Input(Type(inputType), Class(inputClass), ID(name), Name(name), Value(value)),
		If(fieldErr != "", Div(Class("invalid-feedback"), Text(fieldErr))),
	)
}

func userDetails(u viewmodels.UserViewModel) Node {
	return Dl(Class("row"),
		Dt(Class("col-sm-3"), Text("Forename")), Dd(Class("col-sm-9"), Text(u.Forename)),
		Dt(Class("col-sm-3"), Text("Surname")), Dd(Class("col-sm-9"), Text(u.Surname)),
		Dt(Class("col-sm-3"), Text("Email")), Dd(Class("col-sm-9"), Text(u.Email)),
		Dt(Class("col-sm-3"), Text("Account Active")), Dd(Class("col-sm-9"), Text(yesNo(u.IsActive))),
		Dt(Class("col-sm-3"), Text("Date of Birth")), Dd(Class("col-sm-9"), Text(formatDate(u.DateOfBirth))),
	)
}

func userViewPage(model viewmodels.UserWithAuditViewModel) Node {
	id := strconv.FormatInt(model.User.ID, 10)

	var history Node
	if len(model.AuditLogs) == 0 {
		history = P(Class("text-muted"), Text("No audit history for this user."))
	} else {
		history = Table(Class("table table-sm"),
			THead(Tr(Th(Text("Timestamp")), Th(Text("Action")), Th(Text("Details")))),
			TBody(Map(model.AuditLogs, func(l viewmodels.AuditLogViewModel) Node {
				return Tr(
					Td(A(Href(fmt.Sprintf("/auditlogs/%d", l.ID)), Text(formatTimestamp(l.Timestamp)))),
					Td(Text(l.ActionType)),
					Td(Text(l.Details)),
				)
			})),
		)
	}

	return appPage("User Details", "users",
		userDetails(model.User),
		Div(Class("mb-4"),
			A(Href("/users/edit/"+id), Class("btn btn-primary"), Text("Edit")),
			A(Href("/users"), Class("btn btn-link"), Text("Back to list")),
		),
		H4(Text("Audit History")),
		history,
	)
}

func userDeletePage(csrf Node, u viewmodels.UserViewModel) Node {
	return appPage("Delete User", "users",
		P(Class("lead"), Text(fmt.Sprintf("Are you sure you want to delete %s %s?", u.Forename, u.Surname))),
		userDetails(u),
		Form(Method("post"), Action(fmt.Sprintf("/users/delete/%d", u.ID)),
			csrf,
			Button(Type("submit"), Class("btn btn-danger"), Text("Delete")),
			A(Href("/users"), Class("btn btn-link"), Text("Cancel")),
		),
	)
}
