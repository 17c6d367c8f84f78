package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/delivery/http/validator"
	"tripdesk/internal/domain/entity"
	"tripdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJSONContext builds an echo context with the request validator wired, the
// way the server configures it. Handlers under test carry a nil usecase, so a
// request that survived validation would panic instead of silently passing.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Register_MissingFieldsRejected(t *testing.T) {
	h := &UserHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/agent/register", `{}`)

	err := h.Register(entity.RoleAgent)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Register_InvalidEmailRejected(t *testing.T) {
	h := &UserHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/agent/register",
		`{"name":"Jane","email":"not-an-email","phone_number":"9876543210","password":"secret1"}`)

	err := h.Register(entity.RoleAgent)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Login_MissingCredentialsRejected(t *testing.T) {
	h := &UserHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"role":"Agent","password":"secret1"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestSuperAdminHandler_Signup_ShortPasswordRejected(t *testing.T) {
	h := &SuperAdminHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/superadmin/signup",
		`{"name":"Root","email":"root@example.com","phone_number":"9876543210","password":"abc"}`)

	err := h.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBookingHandler_Verify_EmptyNameRejected(t *testing.T) {
	h := &BookingHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/booking/verify",
		`{"booking_id":"`+uuid.NewString()+`","name":""}`)

	err := h.Verify(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBookingHandler_Create_MissingDatesRejected(t *testing.T) {
	h := &BookingHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/booking/create",
		`{"name":"Jane Doe","location_id":"`+uuid.NewString()+`"}`)
	deliverycontext.SetPrincipal(c, &service.Claims{SubjectID: uuid.New(), Role: entity.RoleAgent})

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReviewHandler_Create_RatingOutOfRangeRejected(t *testing.T) {
	h := &ReviewHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/review",
		`{"business_type":"Restaurant","business_id":"`+uuid.NewString()+`","rating":6}`)
	deliverycontext.SetPrincipal(c, &service.Claims{SubjectID: uuid.New(), Role: entity.RoleBooking})

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestReservationHandler_Update_UnknownStatusRejected(t *testing.T) {
	h := &ReservationHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPut, "/api/reservation/"+uuid.NewString(),
		`{"status":"Paused"}`)
	c.SetParamNames("reservation_id")
	c.SetParamValues(uuid.NewString())

	err := h.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestDishHandler_Create_ZeroPriceRejected(t *testing.T) {
	h := &DishHandler{logger: testLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/dish",
		`{"name":"Paneer Tikka","price":0}`)
	deliverycontext.SetPrincipal(c, &service.Claims{SubjectID: uuid.New(), Role: entity.RoleRestaurant})

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
