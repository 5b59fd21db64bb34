package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	intconfig "transit/internal/config"
	h "transit/internal/http/handlers"
	"transit/internal/repositories"
	"transit/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() *gin.Engine {
	env := intconfig.Env{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		TicketTokenSecret:  []byte("router-test-secret"),
		TicketTokenTTL:     time.Minute,
	}
	handler := h.NewHandler(repositories.CatalogRepository{}, services.TicketTokenCodec{
		Secret: env.TicketTokenSecret,
		TTL:    env.TicketTokenTTL,
	})
	handler.Rand = func(n int) int { return 7 % n }
	return newRouter(env, handler)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func wizardForm(step string) url.Values {
	return url.Values{
		"step":          {step},
		"source":        {"Bangalore"},
		"destination":   {"Mysore"},
		"date":          {"2024-03-01"},
		"bus":           {"Express 101"},
		"passengerName": {"Asha Rao"},
		"age":           {"29"},
		"gender":        {"female"},
	}
}

func TestRootRedirectsToLogin(t *testing.T) {
	rec := get(testRouter(), "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestScreensRender(t *testing.T) {
	r := testRouter()
	cases := map[string]string{
		"/login":          "Welcome back",
		"/signup":         "Create account",
		"/dashboard":      "View Timetable",
		"/track-bus":      "Enter route number",
		"/book-ticket":    "Journey Details",
		"/digital-ticket": "Booking ID",
		"/timetable":      "Search Timetable",
		"/my-tickets":     "KSRTC123456",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			rec := get(r, path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), want)
		})
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	rec := get(testRouter(), "/no/such/screen")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oops! Page not found")
}

func TestUnknownAPIPathIsJSON(t *testing.T) {
	rec := get(testRouter(), "/api/nothing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), "route not found")
}

func TestWizardStaysOnIncompleteJourney(t *testing.T) {
	form := wizardForm("1")
	form.Set("date", "")

	rec := postForm(testRouter(), "/book-ticket", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please fill all fields")
	assert.Contains(t, body, "Journey Details")
	assert.Contains(t, body, `value="Bangalore"`)
}

func TestWizardStaysWithoutBus(t *testing.T) {
	form := wizardForm("2")
	form.Del("bus")

	rec := postForm(testRouter(), "/book-ticket", form)

	assert.Contains(t, rec.Body.String(), "Please select a bus")
	assert.Contains(t, rec.Body.String(), "Available Buses")
}

func TestWizardStaysOnIncompletePassenger(t *testing.T) {
	form := wizardForm("3")
	form.Set("gender", "")

	rec := postForm(testRouter(), "/book-ticket", form)

	assert.Contains(t, rec.Body.String(), "Please fill all passenger details")
	assert.Contains(t, rec.Body.String(), "Passenger Details")
}

func TestWizardFullFlowReachesTicket(t *testing.T) {
	r := testRouter()

	rec := postForm(r, "/book-ticket", wizardForm("1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Available Buses")

	rec = postForm(r, "/book-ticket", wizardForm("2"))
	assert.Contains(t, rec.Body.String(), "Passenger Details")

	rec = postForm(r, "/book-ticket", wizardForm("3"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/digital-ticket?"), location)

	rec = get(r, location)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ticket booked successfully!")
	for _, want := range []string{"Asha Rao", "Express 101", "Bangalore", "Mysore", "2024-03-01", "KSRTC7", "A8", "₹450"} {
		assert.Contains(t, body, want)
	}

	again := get(r, location)
	assert.Equal(t, body, again.Body.String())
}

func TestWizardBackNavigation(t *testing.T) {
	r := testRouter()

	form := wizardForm("2")
	form.Set("action", "back")
	rec := postForm(r, "/book-ticket", form)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Journey Details")

	form = wizardForm("1")
	form.Set("action", "back")
	rec = postForm(r, "/book-ticket", form)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestWizardBackPostsCurrentStepInputs(t *testing.T) {
	r := testRouter()

	rec := postForm(r, "/book-ticket", wizardForm("2"))
	body := rec.Body.String()
	require.Contains(t, body, "Passenger Details")
	assert.Equal(t, 1, strings.Count(body, "<form"))
	form := body[strings.Index(body, "<form"):strings.Index(body, "</form>")]
	assert.Contains(t, form, `name="passengerName"`)
	assert.Contains(t, form, `name="action" value="back"`)

	back := url.Values{
		"step":          {"3"},
		"action":        {"back"},
		"source":        {"Bangalore"},
		"destination":   {"Mysore"},
		"date":          {"2024-03-01"},
		"bus":           {"Super Deluxe 202"},
		"passengerName": {"Asha Rao"},
	}
	rec = postForm(r, "/book-ticket", back)
	body = rec.Body.String()
	require.Contains(t, body, "Available Buses")
	assert.Contains(t, body, `name="passengerName" value="Asha Rao"`)
	assert.Contains(t, body, `value="Super Deluxe 202" checked`)

	forward := url.Values{
		"step":          {"2"},
		"source":        {"Bangalore"},
		"destination":   {"Mysore"},
		"date":          {"2024-03-01"},
		"bus":           {"Super Deluxe 202"},
		"passengerName": {"Asha Rao"},
	}
	rec = postForm(r, "/book-ticket", forward)
	body = rec.Body.String()
	require.Contains(t, body, "Passenger Details")
	assert.Contains(t, body, `id="passengerName" name="passengerName" value="Asha Rao"`)
}

func TestTicketWithoutPayloadRendersEmptyFields(t *testing.T) {
	r := testRouter()
	for _, path := range []string{"/digital-ticket", "/digital-ticket?t=forged.token.value"} {
		rec := get(r, path)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<span>Passenger Name</span><span></span>")
		assert.Contains(t, body, "<span>From</span><span></span>")
		assert.Contains(t, body, "KSRTC7")
	}
}

func TestTicketDownload(t *testing.T) {
	rec := get(testRouter(), "/digital-ticket/download")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ticket-KSRTC7.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestTrackBusScreen(t *testing.T) {
	r := testRouter()

	rec := postForm(r, "/track-bus", url.Values{"mode": {"route"}, "q": {""}})
	assert.Contains(t, rec.Body.String(), "Please enter a search term")
	assert.NotContains(t, rec.Body.String(), "KA-01-AB-1234")

	rec = postForm(r, "/track-bus", url.Values{"mode": {"vehicle"}, "q": {"anything"}})
	assert.Contains(t, rec.Body.String(), "Bus found!")
	assert.Contains(t, rec.Body.String(), "KA-01-AB-1234")
	assert.Contains(t, rec.Body.String(), "Electronic City")
}

func TestTimetableScreen(t *testing.T) {
	r := testRouter()

	rec := postForm(r, "/timetable", url.Values{"q": {""}})
	assert.Contains(t, rec.Body.String(), "Please enter search details")
	assert.NotContains(t, rec.Body.String(), "Super Deluxe 202")

	rec = postForm(r, "/timetable", url.Values{"q": {" "}})
	assert.Contains(t, rec.Body.String(), "Found buses!")

	rec = postForm(r, "/timetable", url.Values{"q": {"Bangalore-Mysore"}})
	body := rec.Body.String()
	assert.Contains(t, body, "Found buses!")
	assert.Equal(t, 3, strings.Count(body, "View Details"))

	rec = postForm(r, "/timetable", url.Values{"q": {"x"}, "selected": {"2"}})
	assert.Contains(t, rec.Body.String(), "Vikram Singh")
	assert.Contains(t, rec.Body.String(), "Anil Reddy")
}

func TestMyTicketsScreen(t *testing.T) {
	body := get(testRouter(), "/my-tickets").Body.String()

	assert.Contains(t, body, "KSRTC123457")
	assert.Equal(t, 1, strings.Count(body, "Cancel Ticket"))
}

func TestLoginAndSignupPresenceChecks(t *testing.T) {
	r := testRouter()

	rec := postForm(r, "/login", url.Values{"email": {"asha@example.com"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill all fields")

	rec = postForm(r, "/login", url.Values{"email": {" "}, "password": {" "}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = postForm(r, "/login", url.Values{"email": {"asha@example.com"}, "password": {"pw"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = postForm(r, "/signup", url.Values{"name": {"Asha"}, "email": {"a@b.c"}, "password": {"pw"}})
	assert.Contains(t, rec.Body.String(), "Please fill all fields")

	rec = postForm(r, "/signup", url.Values{"name": {"Asha"}, "email": {"a@b.c"}, "phone": {"123"}, "password": {"pw"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAPIWizardTransition(t *testing.T) {
	r := testRouter()

	rec := postJSON(r, "/api/wizard/transition", map[string]any{
		"state": map[string]any{"step": 1},
		"event": map[string]any{"kind": "next"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var rejected struct {
		State   services.WizardState `json:"state"`
		Outcome struct {
			Kind   string `json:"kind"`
			Notice struct {
				Message string `json:"message"`
			} `json:"notice"`
		} `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rejected))
	assert.Equal(t, services.StepJourney, rejected.State.Step)
	assert.Equal(t, "rejected", rejected.Outcome.Kind)
	assert.Equal(t, "Please fill all fields", rejected.Outcome.Notice.Message)

	rec = postJSON(r, "/api/wizard/transition", map[string]any{
		"state": map[string]any{"step": 3, "draft": map[string]any{
			"source": "Bangalore", "destination": "Mysore", "date": "2024-03-01", "bus": "Express 101",
			"passengerName": "Asha Rao", "age": "29", "gender": "female",
		}},
		"event": map[string]any{"kind": "next"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var completed struct {
		Outcome struct {
			Kind string `json:"kind"`
		} `json:"outcome"`
		Ticket struct {
			PassengerName string `json:"passengerName"`
			BookingID     string `json:"bookingId"`
			Seat          string `json:"seat"`
		} `json:"ticket"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.Equal(t, "completed", completed.Outcome.Kind)
	assert.Equal(t, "Asha Rao", completed.Ticket.PassengerName)
	assert.Equal(t, "KSRTC7", completed.Ticket.BookingID)
	assert.Equal(t, "A8", completed.Ticket.Seat)
	assert.NotEmpty(t, completed.Token)

	rec = postJSON(r, "/api/tickets/render", map[string]any{"token": completed.Token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payload":true`)
	assert.Contains(t, rec.Body.String(), "Asha Rao")
}

func TestAPIWizardTransitionRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/wizard/transition", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPISearches(t *testing.T) {
	r := testRouter()

	rec := postJSON(r, "/api/track", map[string]string{"mode": "route", "query": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")

	rec = postJSON(r, "/api/track", map[string]string{"query": "500D"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KA-01-AB-1234")

	rec = postJSON(r, "/api/timetable", map[string]string{"query": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(r, "/api/timetable", map[string]string{"query": "Mysore"})
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Results []struct {
			BusNumber string `json:"busNumber"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Results, 3)
}

func TestAPITimetableEntry(t *testing.T) {
	r := testRouter()

	rec := get(r, "/api/timetable/3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mahesh Gowda")

	assert.Equal(t, http.StatusNotFound, get(r, "/api/timetable/9").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/timetable/abc").Code)
}

func TestAPITicketsAndRenderWithoutToken(t *testing.T) {
	r := testRouter()

	rec := get(r, "/api/tickets")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KSRTC123456")

	req := httptest.NewRequest(http.MethodPost, "/api/tickets/render", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payload":false`)
	assert.Contains(t, rec.Body.String(), `"passengerName":""`)
}

func TestAPIHealthAndRoutes(t *testing.T) {
	r := testRouter()

	assert.Equal(t, http.StatusOK, get(r, "/api/health").Code)

	rec := get(r, "/api/routes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/book-ticket")
	assert.Contains(t, rec.Body.String(), "/api/wizard/transition")
}

func TestStaticStylesheet(t *testing.T) {
	rec := get(testRouter(), "/static/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--primary")
}

func TestRouterWithoutConfiguredOrigins(t *testing.T) {
	handler := h.NewHandler(repositories.CatalogRepository{}, services.TicketTokenCodec{Secret: []byte("s")})

	var r *gin.Engine
	require.NotPanics(t, func() { r = newRouter(intconfig.Env{}, handler) })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
