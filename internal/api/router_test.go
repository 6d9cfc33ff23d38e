package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkTimeAvailabilityHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/check_time_availability"
	formSessionHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/form_session"
	getAvailableTimesHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/get_available_times"
	getConfirmationHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/get_confirmation"
	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers/pages"
	submitBookingHandler "github.com/m04kA/LittleLemon-Booking/internal/api/handlers/submit_booking"
	"github.com/m04kA/LittleLemon-Booking/internal/api/middleware"
	"github.com/m04kA/LittleLemon-Booking/internal/infra/storage/slot"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
	"github.com/m04kA/LittleLemon-Booking/internal/service/confirmation"
	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
	checkTimeAvailabilityUC "github.com/m04kA/LittleLemon-Booking/internal/usecase/check_time_availability"
	getAvailableTimesUC "github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
	submitBookingUC "github.com/m04kA/LittleLemon-Booking/internal/usecase/submit_booking"
	"github.com/m04kA/LittleLemon-Booking/pkg/logger"
	"github.com/m04kA/LittleLemon-Booking/pkg/simulation/simulationtest"
)

// сегодня 2024-01-10, ближайшая доступная дата 2024-01-11
var (
	today               = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	confirmationPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithRandom(t, simulationtest.NewRandom(0.5))
}

func newTestRouterWithRandom(t *testing.T, random *simulationtest.Random) http.Handler {
	t.Helper()
	return newTestRouterWithOptions(t, random, Options{Logger: logger.NewNop()})
}

func newTestRouterWithOptions(t *testing.T, random *simulationtest.Random, opts Options) http.Handler {
	t.Helper()

	log := logger.NewNop()
	clock := simulationtest.Clock{T: today}
	latency := &simulationtest.Latency{}

	getTimes := getAvailableTimesUC.NewUseCase(latency, random, nil, log)
	checkTime := checkTimeAvailabilityUC.NewUseCase(latency, random, nil, log)
	submit := submitBookingUC.NewUseCase(latency, random, nil, log)

	confirmationSvc := confirmation.NewService(slot.NewRepository(slot.NewMemoryBackend(), ""), log)

	machine, err := bookingform.NewMachine(clock)
	require.NoError(t, err)

	manager := sessions.NewManager(&sessions.Deps{
		Machine:   machine,
		Engine:    getTimes,
		Submitter: submit,
		Store:     confirmationSvc,
		Clock:     clock,
		Logger:    log,
	}, time.Hour)

	pagesHandler, err := pages.NewHandler(confirmationSvc, clock, log)
	require.NoError(t, err)

	return NewRouter(&Handlers{
		GetAvailableTimes:     getAvailableTimesHandler.NewHandler(getTimes, log),
		CheckTimeAvailability: checkTimeAvailabilityHandler.NewHandler(checkTime, log),
		SubmitBooking:         submitBookingHandler.NewHandler(submit, log),
		GetConfirmation:       getConfirmationHandler.NewHandler(confirmationSvc, log),
		FormSession:           formSessionHandler.NewHandler(manager, log),
		Pages:                 pagesHandler,
	}, manager, opts)
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRouter_Health(t *testing.T) {
	rec := do(t, newTestRouter(t), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AvailableTimes(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2024-01-16", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	assert.True(t, env.Success)

	var data getAvailableTimesHandler.AvailableTimesResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "2024-01-16", data.Date)
	assert.Len(t, data.AvailableTimes, 9)
	assert.Equal(t, []getAvailableTimesHandler.TimeSlot{
		{Time: "21:30", Available: false},
		{Time: "22:00", Available: false},
	}, data.UnavailableTimes)

}

func TestRouter_AvailableTimes_UnparseableDateServesWeekday(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/available-times?date=",
		"/api/v1/available-times",
		"/api/v1/available-times?date=garbage",
	} {
		t.Run(target, func(t *testing.T) {
			rec := do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			env := decode(t, rec)
			assert.True(t, env.Success)

			var data getAvailableTimesHandler.AvailableTimesResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Len(t, data.AvailableTimes, 9)
			assert.Len(t, data.UnavailableTimes, 2)
		})
	}
}

func TestRouter_CheckTimeAvailability(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/available-times/check?date=2024-12-24&time=16:00", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-12-24","time":"16:00","available":true}`, string(decode(t, rec).Data))

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/available-times/check?date=2024-01-13&time=22:30", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Time slot not found", env.Error)

	// пустая дата обслуживается как будний день: 21:30 есть в таблице, но занят
	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/available-times/check?date=&time=21:30", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"","time":"21:30","available":false}`, string(decode(t, rec).Data))

	// без времени слот не найден
	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/available-times/check?date=2024-01-16", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Time slot not found", decode(t, rec).Error)
}

func TestRouter_SubmitBooking(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "valid", body: `{"date":"2024-01-15","time":"19:00","guests":4,"occasion":"Birthday"}`, wantStatus: http.StatusCreated},
		{name: "missing guests", body: `{"date":"2024-01-15","time":"19:00"}`, wantStatus: http.StatusBadRequest},
		{name: "zero guests", body: `{"date":"2024-01-15","time":"19:00","guests":0}`, wantStatus: http.StatusBadRequest},
		{name: "missing date", body: `{"time":"19:00","guests":2}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			rec := do(t, h, req)
			require.Equal(t, tt.wantStatus, rec.Code)

			env := decode(t, rec)
			if tt.wantStatus != http.StatusCreated {
				assert.False(t, env.Success)
				assert.Equal(t, "Failed to submit booking", env.Error)
				assert.Equal(t, "Missing required fields", env.Details)
				return
			}

			var record submitBookingHandler.BookingRecordResponse
			require.NoError(t, json.Unmarshal(env.Data, &record))
			assert.Regexp(t, confirmationPattern, record.ConfirmationNumber)
			assert.Regexp(t, `^BK\d+$`, record.BookingID)
			assert.Equal(t, "confirmed", record.Status)
			assert.Equal(t, "Birthday", record.Occasion)
			assert.Equal(t, 4, record.Guests)
			assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, record.CreatedAt)
		})
	}
}

func TestRouter_BookingFormEndToEnd(t *testing.T) {
	h := newTestRouter(t)

	// 1. Открываем форму и получаем cookie сессии
	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please select a date first")
	assert.Contains(t, rec.Body.String(), `min="2024-01-11"`)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.SessionCookieName, cookies[0].Name)

	// 2. Отправляем заполненную форму
	form := url.Values{"date": {"2024-01-11"}, "time": {"19:00"}, "guests": {"2"}, "occasion": {""}}
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	rec = do(t, h, req)

	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/confirmation/"), location)
	number := strings.TrimPrefix(location, "/confirmation/")
	assert.Regexp(t, confirmationPattern, number)

	// 3. Страница подтверждения показывает запись без повода
	req = httptest.NewRequest(http.MethodGet, location, nil)
	req.AddCookie(cookies[0])
	rec = do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, number)
	assert.Contains(t, body, "2024-01-11")
	assert.Contains(t, body, "19:00")
	assert.Contains(t, body, "confirmed")
	assert.NotContains(t, body, "Occasion</dt>")

	// 4. Та же запись доступна через API
	req = httptest.NewRequest(http.MethodGet, "/api/v1/confirmations/"+number, nil)
	req.AddCookie(cookies[0])
	rec = do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// 5. Без cookie запись не видна
	rec = do(t, h, httptest.NewRequest(http.MethodGet, location, nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/404", rec.Header().Get("Location"))
}

func TestRouter_BookingFormValidationFailure(t *testing.T) {
	h := newTestRouter(t)

	form := url.Values{"date": {""}, "guests": {"11"}}
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(t, h, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Date is required")
	assert.Contains(t, body, "Time is required")
	assert.Contains(t, body, "Maximum 10 guests")
}

func TestRouter_BookingFormRefreshLoadsTimes(t *testing.T) {
	h := newTestRouter(t)

	form := url.Values{"date": {"2024-01-13"}, "action": {"refresh"}}
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Select a time")
	assert.Contains(t, body, `<option value="22:00">22:00</option>`)
}

func TestRouter_BookingFormNoTimesAvailable(t *testing.T) {
	// каждый бросок ниже порога 0.1, все слоты отфильтрованы
	h := newTestRouterWithRandom(t, simulationtest.NewRandom(0.05))

	form := url.Values{"date": {"2024-01-13"}, "action": {"refresh"}}
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No times available for this date")
	assert.NotContains(t, body, `<option value="19:00">`)
}

func TestRouter_UnknownConfirmationRedirectsToNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/confirmation/UNKNOWN1", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/404", rec.Header().Get("Location"))

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/confirmations/UNKNOWN1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := do(t, newTestRouter(t), httptest.NewRequest(http.MethodGet, "/menu", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestRouter_HomePage(t *testing.T) {
	rec := do(t, newTestRouter(t), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Little Lemon</h1>")
	assert.Contains(t, body, `<a href="/bookings">Reserve Your Table</a>`)
	assert.Contains(t, body, "<table>")
	assert.Contains(t, body, "Copyright 2024 Little Lemon")
}

func TestRouter_FormSessionAPI(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created formSessionHandler.CreateSessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))
	require.NotEmpty(t, created.SessionID)

	events := "/api/v1/sessions/" + created.SessionID + "/events"

	rec = do(t, h, httptest.NewRequest(http.MethodPost, events,
		strings.NewReader(`{"type":"change","field":"date","value":"2024-01-13","wait":true}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	var view formSessionHandler.SessionView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "times_ready", view.Phase)
	assert.Len(t, view.AvailableTimes, 11)
	assert.False(t, view.TimeSelectDisabled)

	rec = do(t, h, httptest.NewRequest(http.MethodPost, events, strings.NewReader(`{"type":"submit"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "validation_failed", view.Phase)
	assert.Equal(t, "Time is required", view.Errors["time"])

	rec = do(t, h, httptest.NewRequest(http.MethodPost, events, strings.NewReader(`{"type":"hover"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RateLimitCoversSessionOpeningRoutes(t *testing.T) {
	log := logger.NewNop()

	paths := []string{"/bookings", "/confirmation/ABCD1234", "/api/v1/confirmations/ABCD1234"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			h := newTestRouterWithOptions(t, simulationtest.NewRandom(0.5), Options{
				Logger:      log,
				RateLimiter: middleware.NewRateLimiter(0.001, 1, log),
			})

			first := do(t, h, httptest.NewRequest(http.MethodGet, path, nil))
			assert.NotEqual(t, http.StatusTooManyRequests, first.Code)

			second := do(t, h, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusTooManyRequests, second.Code)
			assert.Empty(t, second.Result().Cookies(), "rejected request must not open a session")
		})
	}
}

func TestRouter_FormSessionAPI_BookingReadBack(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created formSessionHandler.CreateSessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	require.Equal(t, created.SessionID, cookies[0].Value)

	events := "/api/v1/sessions/" + created.SessionID + "/events"
	var view formSessionHandler.SessionView
	for _, body := range []string{
		`{"type":"change","field":"date","value":"2024-01-13","wait":true}`,
		`{"type":"change","field":"time","value":"19:00"}`,
		`{"type":"change","field":"guests","value":"2"}`,
		`{"type":"submit"}`,
	} {
		rec = do(t, h, httptest.NewRequest(http.MethodPost, events, strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code, body)
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	}

	require.Equal(t, "submitted", view.Phase)
	require.True(t, strings.HasPrefix(view.Redirect, "/confirmation/"), view.Redirect)
	number := strings.TrimPrefix(view.Redirect, "/confirmation/")

	// адрес из Redirect открывается с cookie, выданной при создании сессии
	req := httptest.NewRequest(http.MethodGet, view.Redirect, nil)
	req.AddCookie(cookies[0])
	rec = do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), number)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/confirmations/"+number, nil)
	req.AddCookie(cookies[0])
	rec = do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var record submitBookingHandler.BookingRecordResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &record))
	assert.Equal(t, "2024-01-13", record.Date)
	assert.Equal(t, "19:00", record.Time)
	assert.Equal(t, 2, record.Guests)

	// клиент без cookie передаёт сессию в query
	rec = do(t, h, httptest.NewRequest(http.MethodGet,
		"/api/v1/confirmations/"+number+"?sessionId="+created.SessionID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_FormSessionAPI_UnlistedTimeIgnored(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	var created formSessionHandler.CreateSessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))
	events := "/api/v1/sessions/" + created.SessionID + "/events"

	do(t, h, httptest.NewRequest(http.MethodPost, events,
		strings.NewReader(`{"type":"change","field":"date","value":"2024-01-13","wait":true}`)))
	rec = do(t, h, httptest.NewRequest(http.MethodPost, events,
		strings.NewReader(`{"type":"change","field":"time","value":"03:17"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var view formSessionHandler.SessionView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Empty(t, view.Values.Time)
	assert.Equal(t, "times_ready", view.Phase)
}
