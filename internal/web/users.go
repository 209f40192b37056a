package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

// ListUsers renders GET /users?isActive=
func (h *Handler) ListUsers(c *gin.Context) {
	var filter *bool
	if raw := c.Query("isActive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			renderHTML(c, http.StatusBadRequest, errorPage("Bad Request", "The isActive filter must be true or false."))
			return
		}
		filter = &v
	}

	list, err := h.users.FilterByActive(c.Request.Context(), filter)
	if err != nil {
		h.renderServerError(c, err, msgListUsersFailed)
		return
	}

	model := viewmodels.UserListViewModel{
		Items:          make([]viewmodels.UserListItemViewModel, 0, len(list)),
		IsActiveFilter: filter,
	}
	for _, u := range list {
		model.Items = append(model.Items, h.mapper.ToUserListItem(u))
	}

	renderHTML(c, http.StatusOK, usersListPage(model))
}

// AddUserForm renders GET /users/add
func (h *Handler) AddUserForm(c *gin.Context) {
	renderHTML(c, http.StatusOK, userFormPage(csrfField(c), userForm{
		Title:  "Add User",
		Action: "/users/add",
		User:   viewmodels.UserViewModel{IsActive: true},
	}))
}

// AddUser handles POST /users/add
func (h *Handler) AddUser(c *gin.Context) {
	vm, fieldErrs := h.userFromForm(c)
	if fieldErrs != nil {
		renderHTML(c, http.StatusOK, userFormPage(csrfField(c), userForm{
			Title:   "Add User",
			Action:  "/users/add",
			User:    vm,
			Errors:  fieldErrs,
			Summary: fieldErrs[""],
		}))
		return
	}

	if err := h.users.Create(c.Request.Context(), h.mapper.ToUser(vm)); err != nil {
		h.renderServerError(c, err, msgCreateUserFailed)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

// ViewUser renders GET /users/:id with the user's audit history
func (h *Handler) ViewUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, msgGetUserFailed)
		return
	}

	logs, err := h.users.GetUserAuditLogs(c.Request.Context(), id)
	if err != nil {
		h.renderServerError(c, err, msgGetUserFailed)
		return
	}

	renderHTML(c, http.StatusOK, userViewPage(viewmodels.UserWithAuditViewModel{
		User:      h.mapper.ToUserViewModel(user),
		AuditLogs: h.mapper.ToAuditLogViewModels(logs),
	}))
}

// EditUserForm renders GET /users/edit/:id
func (h *Handler) EditUserForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, msgGetUserFailed)
		return
	}

	renderHTML(c, http.StatusOK, userFormPage(csrfField(c), userForm{
		Title:  "Edit User",
		Action: fmt.Sprintf("/users/edit/%d", id),
		User:   h.mapper.ToUserViewModel(user),
	}))
}

// EditUser handles POST /users/edit/:id
func (h *Handler) EditUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	vm, fieldErrs := h.userFromForm(c)
	if vm.ID != id {
		renderHTML(c, http.StatusBadRequest, errorPage("Bad Request", "User ID in the form does not match the route."))
		return
	}

	form := userForm{
		Title:  "Edit User",
		Action: fmt.Sprintf("/users/edit/%d", id),
		User:   vm,
		Errors: fieldErrs,
	}
	if fieldErrs != nil {
		form.Summary = fieldErrs[""]
		renderHTML(c, http.StatusOK, userFormPage(csrfField(c), form))
		return
	}

	if err := h.users.Update(c.Request.Context(), h.mapper.ToUser(vm)); err != nil {
		if apperrors.IsNotFound(err) {
			renderHTML(c, http.StatusNotFound, errorPage("Not Found", notFoundMessage(err)))
			return
		}
		h.logger.Error("Failed to update user", zap.Int64("user_id", id), zap.Error(err))
		form.Summary = msgUpdateUserFailed
		renderHTML(c, http.StatusOK, userFormPage(csrfField(c), form))
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

// DeleteUserConfirm renders GET /users/delete/:id
func (h *Handler) DeleteUserConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, msgDeleteUserFailed)
		return
	}

	renderHTML(c, http.StatusOK, userDeletePage(csrfField(c), h.mapper.ToUserViewModel(user)))
}

// DeleteUser handles POST /users/delete/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, msgDeleteUserFailed)
		return
	}

	if err := h.users.Delete(c.Request.Context(), user); err != nil {
		h.renderLookupError(c, err, msgDeleteUserFailed)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}
