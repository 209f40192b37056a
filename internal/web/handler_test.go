package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/data"
	"github.com/somshrestha/inflo-tech-test/internal/users"
	"github.com/somshrestha/inflo-tech-test/internal/users/mocks"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

const testToken = "test-csrf-token"

var today = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(userService users.UserService, auditService auditlogs.AuditLogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	validator := validation.New(validation.WithClock(func() time.Time { return today }))
	h := NewHandler(userService, auditService, validator, viewmodels.NewMapper(), zap.NewNop(), false)
	h.RegisterRoutes(engine.Group(""))
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func post(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	form.Set(csrfFormField, testToken)
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: testToken})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, r)
	return w
}

func userValues(id, forename, surname, email, dob string) url.Values {
	form := url.Values{}
	form.Set("id", id)
	form.Set("forename", forename)
	form.Set("surname", surname)
	form.Set("email", email)
	form.Set("isActive", "true")
	form.Set("dateOfBirth", dob)
	return form
}

type WebSuite struct {
	suite.Suite
	engine *gin.Engine
	dc     *data.DataContextImpl
}

func TestWebSuite(t *testing.T) {
	suite.Run(t, new(WebSuite))
}

func (s *WebSuite) SetupTest() {
	logger := zap.NewNop()
	s.dc = data.NewDataContext(data.NewSeededMemoryStore(), logger, data.NewAuditInterceptor())
	s.engine = newTestEngine(
		users.NewUserService(s.dc, logger, nil),
		auditlogs.NewService(s.dc, auditlogs.PageOptions{}, logger, nil),
	)
}

func (s *WebSuite) TestRootRedirectsToUsers() {
	w := get(s.engine, "/")

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/users", w.Header().Get("Location"))
}

func (s *WebSuite) TestListUsers() {
	w := get(s.engine, "/users")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/html")
	s.Contains(w.Body.String(), "ploew@example.com")
	s.Contains(w.Body.String(), "ctroy@example.com")
}

func (s *WebSuite) TestListUsersFilter() {
	active := get(s.engine, "/users?isActive=true").Body.String()
	s.Contains(active, "ploew@example.com")
	s.NotContains(active, "ctroy@example.com")

	inactive := get(s.engine, "/users?isActive=false").Body.String()
	s.Contains(inactive, "ctroy@example.com")
	s.NotContains(inactive, "ploew@example.com")

	s.Equal(http.StatusBadRequest, get(s.engine, "/users?isActive=sometimes").Code)
}

func (s *WebSuite) TestAddUserFormIssuesToken() {
	w := get(s.engine, "/users/add")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Set-Cookie"), csrfCookieName+"=")
	s.Contains(w.Body.String(), `name="csrf_token"`)
}

func (s *WebSuite) TestAddUser() {
	w := post(s.engine, "/users/add", userValues("", "Jane", "Doe", "jane@example.com", "1990-04-01"))

	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/users", w.Header().Get("Location"))

	user, err := s.dc.GetUserByID(context.Background(), 12)
	s.Require().NoError(err)
	s.Equal("Jane", user.Forename)
	s.True(user.IsActive)
	s.Require().NotNil(user.DateOfBirth)
	s.Equal("1990-04-01", user.DateOfBirth.Format(time.DateOnly))
}

func (s *WebSuite) TestAddUserFutureDateOfBirth() {
	w := post(s.engine, "/users/add", userValues("", "Jane", "Doe", "jane@example.com", "2030-01-01"))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), validation.MsgDateOfBirthInFuture)

	all, err := s.dc.GetAllUsers(context.Background())
	s.Require().NoError(err)
	s.Len(all, 11)
}

func (s *WebSuite) TestAddUserMissingFields() {
	w := post(s.engine, "/users/add", userValues("", "", "Doe", "jane@example.com", ""))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Forename is required.")
}

func (s *WebSuite) TestAddUserWithoutCSRFToken() {
	form := userValues("", "Jane", "Doe", "jane@example.com", "")
	r := httptest.NewRequest(http.MethodPost, "/users/add", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	s.engine.ServeHTTP(w, r)

	s.Equal(http.StatusForbidden, w.Code)
	all, err := s.dc.GetAllUsers(context.Background())
	s.Require().NoError(err)
	s.Len(all, 11)
}

func (s *WebSuite) TestViewUser() {
	w := get(s.engine, "/users/1")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "ploew@example.com")
	s.Contains(w.Body.String(), "No audit history for this user.")
}

func (s *WebSuite) TestViewUserNotFound() {
	w := get(s.engine, "/users/999")

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "User with ID 999 not found.")
}

func (s *WebSuite) TestEditUser() {
	w := post(s.engine, "/users/edit/1", userValues("1", "Pete", "Loew", "ploew@example.com", "1988-02-11"))

	s.Require().Equal(http.StatusSeeOther, w.Code)

	page := get(s.engine, "/users/1").Body.String()
	s.Contains(page, "Forename changed from")
	s.NotContains(page, "No audit history for this user.")
}

func (s *WebSuite) TestEditUserIDMismatch() {
	w := post(s.engine, "/users/edit/1", userValues("2", "Pete", "Loew", "ploew@example.com", ""))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WebSuite) TestEditUserNotFound() {
	w := post(s.engine, "/users/edit/999", userValues("999", "Ghost", "User", "ghost@example.com", ""))

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *WebSuite) TestEditUserFormNotFound() {
	s.Equal(http.StatusNotFound, get(s.engine, "/users/edit/999").Code)
}

func (s *WebSuite) TestDeleteUser() {
	confirm := get(s.engine, "/users/delete/1")
	s.Equal(http.StatusOK, confirm.Code)
	s.Contains(confirm.Body.String(), "Are you sure you want to delete Peter Loew?")

	w := post(s.engine, "/users/delete/1", url.Values{})
	s.Require().Equal(http.StatusSeeOther, w.Code)

	s.Equal(http.StatusNotFound, get(s.engine, "/users/1").Code)
	s.Contains(get(s.engine, "/auditlogs").Body.String(), "Page 1 of 1 (1 entries)")
}

func (s *WebSuite) TestDeleteUserNotFound() {
	s.Equal(http.StatusNotFound, post(s.engine, "/users/delete/999", url.Values{}).Code)
}

func (s *WebSuite) TestAuditLogsEmpty() {
	w := get(s.engine, "/auditlogs")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "No audit logs found.")
}

func (s *WebSuite) TestAuditLogsFilter() {
	s.Require().Equal(http.StatusSeeOther, post(s.engine, "/users/delete/2", url.Values{}).Code)
	s.Require().Equal(http.StatusSeeOther, post(s.engine, "/users/add", userValues("", "Jane", "Doe", "jane@example.com", "")).Code)

	w := get(s.engine, "/auditlogs?actionType=Delete&pageSize=notanumber")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "deleted with email bfgates@example.com")
	s.NotContains(w.Body.String(), "created with email jane@example.com")
}

func (s *WebSuite) TestAuditLogDetails() {
	s.Require().Equal(http.StatusSeeOther, post(s.engine, "/users/delete/3", url.Values{}).Code)

	w := get(s.engine, "/auditlogs/1")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "User Castor Troy deleted with email ctroy@example.com")
}

func (s *WebSuite) TestAuditLogDetailsNotFound() {
	w := get(s.engine, "/auditlogs/999")

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Audit log with ID 999 not found.")
}

func TestListUsersServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockUserService(ctrl)
	service.EXPECT().FilterByActive(gomock.Any(), gomock.Nil()).Return(nil, errors.New("database is locked"))

	w := get(newTestEngine(service, nil), "/users")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), msgListUsersFailed)
	require.NotContains(t, w.Body.String(), "database is locked")
}

func TestEditUserUpdateFailureRerendersForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockUserService(ctrl)
	service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))

	w := post(newTestEngine(service, nil), "/users/edit/1", userValues("1", "Pete", "Loew", "ploew@example.com", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), msgUpdateUserFailed)
	require.Contains(t, w.Body.String(), `value="Pete"`)
}

func TestCSRFMiddlewareRejectsMismatchedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zap.NewNop()}
	engine := gin.New()
	engine.Use(h.RequireCSRF())
	engine.POST("/users/add", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	form := url.Values{}
	form.Set(csrfFormField, "other")
	r := httptest.NewRequest(http.MethodPost, "/users/add", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: testToken})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFMiddlewareAcceptsHeaderToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zap.NewNop()}
	engine := gin.New()
	engine.Use(h.RequireCSRF())
	engine.POST("/users/add", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodPost, "/users/add", nil)
	r.Header.Set(csrfHeader, testToken)
	r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: testToken})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, r)

	require.Equal(t, http.StatusNoContent, w.Code)
}
