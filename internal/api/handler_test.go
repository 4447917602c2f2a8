package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"japantune/internal/api/mocks"
	"japantune/internal/auth"
	"japantune/internal/model"
	"japantune/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// helperTestCar - универсальный тестовый автомобиль
var helperTestCar = model.Car{
	Base:        model.Base{ID: 7, Version: 2},
	Mark:        "Toyota",
	Model:       "Supra",
	ReleaseYear: 1998,
	UserID:      3,
	User:        model.User{FirstName: "Кейчи", SurName: "Цучия"},
}

type testSite struct {
	ctrl     *gomock.Controller
	handler  http.Handler
	auth     *mocks.MockAuthenticator
	sessions *mocks.MockSessionManager
	cars     *mocks.MockEntityService[model.Car, *model.Car]
}

// setupHandlerAndMocks - хелпер для инициализации сервера и моков.
// login - пользователь в сессии, пустая строка - анонимный посетитель.
func setupHandlerAndMocks(t *testing.T, login string) *testSite {
	ctrl := gomock.NewController(t)
	views, err := NewViews()
	require.NoError(t, err)

	site := &testSite{
		ctrl:     ctrl,
		auth:     mocks.NewMockAuthenticator(ctrl),
		sessions: mocks.NewMockSessionManager(ctrl),
		cars:     mocks.NewMockEntityService[model.Car, *model.Car](ctrl),
	}
	site.sessions.EXPECT().Identity(gomock.Any()).Return(login, login != "").AnyTimes()

	h := NewHandlers(views, site.auth, site.sessions, true, CarResource(site.cars))
	site.handler = NewServer("0", h).Handler()
	return site
}

func (s *testSite) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func carForm() url.Values {
	return url.Values{
		"mark":        {"Toyota"},
		"model":       {"Supra"},
		"releaseYear": {"1998"},
		"userId":      {"3"},
	}
}

func TestNewViews_ParsesAllPages(t *testing.T) {
	views, err := NewViews()
	require.NoError(t, err)
	for _, name := range pageNames {
		assert.Contains(t, views.pages, name)
	}
}

func TestResource_List(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.cars.EXPECT().List(gomock.Any()).Return([]model.Car{helperTestCar}, nil)

	rr := site.do(http.MethodGet, "/cars", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Supra")
	assert.Contains(t, body, "Кейчи Цучия")
	assert.Contains(t, body, "/cars/7/edit")
}

func TestResource_List_StoreError(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.cars.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	rr := site.do(http.MethodGet, "/cars", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db down")
}

func TestResource_Details_NotFound(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.cars.EXPECT().Get(gomock.Any(), 42).Return(nil, service.ErrNotFound)

	rr := site.do(http.MethodGet, "/cars/42", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResource_Details_BadID(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	// Сервис не вызывается
	rr := site.do(http.MethodGet, "/cars/abc", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResource_Create_Redirects(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	created := helperTestCar
	site.cars.EXPECT().Create(gomock.Any(), carForm()).Return(&created, nil)

	rr := site.do(http.MethodPost, "/cars/create", carForm())

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/cars", rr.Header().Get("Location"))
}

func TestResource_Create_ValidationEchoesInput(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	form := carForm()
	form.Set("releaseYear", "1800")
	verr := &service.ValidationError{Message: service.MsgReleaseYear, Values: form}

	site.cars.EXPECT().Create(gomock.Any(), form).Return(nil, verr)
	site.cars.EXPECT().RetryForm(gomock.Any(), 0, form, verr).Return(&service.Form[model.Car]{
		Values:  form,
		Lookups: map[model.LookupKind][]model.Option{model.LookupUsers: {{ID: 3, Label: "Кейчи Цучия"}}},
		Error:   service.MsgReleaseYear,
	}, nil)

	rr := site.do(http.MethodPost, "/cars/create", form)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, service.MsgReleaseYear)
	assert.Contains(t, body, `value="1800"`)
	assert.Contains(t, body, `<option value="3" selected>`)
}

func TestResource_Update_Conflict(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	form := carForm()
	form.Set("version", "1")

	site.cars.EXPECT().Update(gomock.Any(), 7, form).Return(nil, service.ErrConflict)
	site.cars.EXPECT().RetryForm(gomock.Any(), 7, form, service.ErrConflict).Return(&service.Form[model.Car]{
		Item:   &helperTestCar,
		Values: form,
		Error:  service.MsgConflict,
	}, nil)

	rr := site.do(http.MethodPost, "/cars/7/edit", form)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), service.MsgConflict)
	assert.Contains(t, rr.Body.String(), `action="/cars/7/edit"`)
}

func TestResource_Update_NotFound(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.cars.EXPECT().Update(gomock.Any(), 9, gomock.Any()).Return(nil, service.ErrNotFound)

	rr := site.do(http.MethodPost, "/cars/9/edit", carForm())

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResource_EditForm_CarriesVersion(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	values := carForm()
	values.Set("version", "2")
	site.cars.EXPECT().EditForm(gomock.Any(), 7).Return(&service.Form[model.Car]{Item: &helperTestCar, Values: values}, nil)

	rr := site.do(http.MethodGet, "/cars/7/edit", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `name="version" value="2"`)
}

func TestResource_ConfirmDelete_ShowsDependents(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.cars.EXPECT().Get(gomock.Any(), 7).Return(&helperTestCar, nil)
	site.cars.EXPECT().Dependents(gomock.Any(), 7).Return([]model.DependentCount{{Table: model.TableOrders, Count: 2}}, nil)

	rr := site.do(http.MethodGet, "/cars/7/delete", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Заказы: 2")
}

func TestResource_Delete_Redirects(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.cars.EXPECT().Delete(gomock.Any(), 7).Return(int64(1), nil)

	rr := site.do(http.MethodPost, "/cars/7/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/cars", rr.Header().Get("Location"))
}

func TestResource_Delete_Referenced(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	rerr := &service.ReferentialError{Message: service.MsgInUse, Err: service.ErrReference}
	site.cars.EXPECT().Delete(gomock.Any(), 7).Return(int64(0), rerr)
	site.cars.EXPECT().Get(gomock.Any(), 7).Return(&helperTestCar, nil)
	site.cars.EXPECT().Dependents(gomock.Any(), 7).Return(nil, nil)

	rr := site.do(http.MethodPost, "/cars/7/delete", url.Values{})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), service.MsgInUse)
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	rr := site.do(http.MethodGet, "/cars", nil)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fcars", rr.Header().Get("Location"))
}

func TestLoginPage_AuthenticatedRedirectsHome(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	rr := site.do(http.MethodGet, "/login", nil)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestLoginPage_Anonymous(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	rr := site.do(http.MethodGet, "/login?next=/cars", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `name="next" value="/cars"`)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	site.auth.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(nil, auth.ErrInvalidCredentials)

	rr := site.do(http.MethodPost, "/login", url.Values{"login": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Неверный логин или пароль")
	assert.Contains(t, rr.Body.String(), `value="alice"`)
}

func TestLogin_SuccessRedirectsToNext(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	user := &model.User{ClientLogin: "alice"}
	site.auth.EXPECT().Login(gomock.Any(), "alice", "secret").Return(user, nil)
	site.sessions.EXPECT().SignIn(gomock.Any(), gomock.Any(), "alice").Return(nil)

	rr := site.do(http.MethodPost, "/login", url.Values{"login": {"alice"}, "password": {"secret"}, "next": {"/cars"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/cars", rr.Header().Get("Location"))
}

func TestLogin_ForeignNextIgnored(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	user := &model.User{ClientLogin: "alice"}
	site.auth.EXPECT().Login(gomock.Any(), "alice", "secret").Return(user, nil)
	site.sessions.EXPECT().SignIn(gomock.Any(), gomock.Any(), "alice").Return(nil)

	rr := site.do(http.MethodPost, "/login", url.Values{"login": {"alice"}, "password": {"secret"}, "next": {"//evil.example"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestRegister_Success(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	form := url.Values{
		"login":           {"bob"},
		"password":        {"pw"},
		"confirmPassword": {"pw"},
		"firstName":       {"Боб"},
		"surName":         {"Смит"},
		"phoneNumber":     {"+79990001122"},
	}
	site.auth.EXPECT().Register(gomock.Any(), auth.Registration{
		Login: "bob", Password: "pw", ConfirmPassword: "pw",
		FirstName: "Боб", SurName: "Смит", PhoneNumber: "+79990001122",
	}).Return(&model.User{ClientLogin: "bob"}, nil)
	site.sessions.EXPECT().SignIn(gomock.Any(), gomock.Any(), "bob").Return(nil)

	rr := site.do(http.MethodPost, "/register", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestRegister_LoginTaken(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	site.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, auth.ErrLoginTaken)

	rr := site.do(http.MethodPost, "/register", url.Values{"login": {"bob"}, "password": {"pw"}})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Пользователь с таким логином уже существует")
	assert.NotContains(t, rr.Body.String(), `value="pw"`)
}

func TestRegister_PhoneTaken(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	site.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, auth.ErrPhoneTaken)

	rr := site.do(http.MethodPost, "/register", url.Values{"login": {"bob"}, "phoneNumber": {"89121234567"}})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Пользователь с таким номером телефона уже существует")
	assert.Contains(t, rr.Body.String(), `value="89121234567"`)
}

func TestLogout(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.sessions.EXPECT().SignOut(gomock.Any(), gomock.Any()).Return(nil)

	rr := site.do(http.MethodPost, "/logout", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestLogout_GetNotAllowed(t *testing.T) {
	site := setupHandlerAndMocks(t, "admin")
	defer site.ctrl.Finish()

	site.sessions.EXPECT().SignOut(gomock.Any(), gomock.Any()).Times(0)

	rr := site.do(http.MethodGet, "/logout", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	rr := site.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStaticFiles(t *testing.T) {
	site := setupHandlerAndMocks(t, "")
	defer site.ctrl.Finish()

	rr := site.do(http.MethodGet, "/static/style.css", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/cars", safeNext("/cars"))
	assert.Equal(t, "/", safeNext(""))
	assert.Equal(t, "/", safeNext("https://evil.example"))
	assert.Equal(t, "/", safeNext("//evil.example"))
}

func TestMaskCard(t *testing.T) {
	card := "4111111111111111"
	assert.Equal(t, "**** 1111", maskCard(&card))
	assert.Equal(t, "", maskCard(nil))
}
