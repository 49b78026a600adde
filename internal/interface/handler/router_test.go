package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/internal/infrastructure/config"
	"partner-portal-service/internal/infrastructure/persistence"
	repo "partner-portal-service/internal/interface/repository"
	"partner-portal-service/internal/usecase"
	"partner-portal-service/pkg/logger"
	"partner-portal-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type testPortal struct {
	router        *gin.Engine
	upstreamCalls *int32
	lastUpstream  *http.Request
	lastBody      []byte
}

// newTestPortal wires the full router against an in-memory sqlite store and a
// fake hotel API answering with status and body.
func newTestPortal(t *testing.T, defaults usecase.HeaderDefaults, status int, body string) *testPortal {
	t.Helper()

	portal := &testPortal{upstreamCalls: new(int32)}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(portal.upstreamCalls, 1)
		portal.lastUpstream = r.Clone(r.Context())
		portal.lastBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(upstream.Close)

	db, err := persistence.OpenGorm(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", reg)
	log := logger.NewNopLogger()

	client := repo.NewHotelClient(repo.HotelClientConfig{BaseURL: upstream.URL, Timeout: 5 * time.Second}, log, m)
	hotels := NewHotelHandler(
		usecase.NewHotelAvailabilityService(repo.NewHotelAvailabilityAPI(client), defaults),
		usecase.NewHotelShopService(repo.NewHotelShopAPI(client), defaults),
		usecase.NewHotelContentService(repo.NewHotelContentAPI(client), defaults),
		usecase.NewHotelInventoryService(repo.NewHotelInventoryAPI(client), defaults),
		usecase.NewHotelReservationsService(repo.NewHotelReservationsAPI(client), defaults),
		log,
	)
	bookings := NewBookingHandler(usecase.NewBookingService(repo.NewGormBookingRepository(db), log, m), log)

	portal.router = NewRouter(RouterConfig{CORSOrigins: []string{"http://localhost:3000"}, Gatherer: reg}, bookings, hotels, log, m)
	return portal
}

func (p *testPortal) do(method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body %q: %v", w.Body.String(), err)
	}
	return resp
}

var channel = map[string]string{"x-channelcode": "demo-channel"}

func TestRouter_AvailabilityPassthrough(t *testing.T) {
	const upstreamBody = `{"roomStays":[{"propertyInfo":{"hotelCode":"OHM1"},"availability":"AvailableForSale"}]}`
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, upstreamBody)

	w := p.do(http.MethodGet, "/api/shop/v1/hotels?hotelCodes=OHM1&arrivalDate=2026-01-01&departureDate=2026-01-03", nil, channel)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Body.String() != upstreamBody {
		t.Errorf("body = %s, want upstream body verbatim", w.Body.String())
	}
	if got := p.lastUpstream.Header.Get("x-channelCode"); got != "demo-channel" {
		t.Errorf("forwarded x-channelCode = %q", got)
	}
	if got := p.lastUpstream.URL.Query().Get("HotelCodes"); got != "OHM1" {
		t.Errorf("forwarded HotelCodes = %q", got)
	}
}

func TestRouter_MissingChannelCode(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{}`)

	w := p.do(http.MethodGet, "/api/content/v1/hotels/OHM1", nil, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Kind != "MissingRequiredHeader" {
		t.Errorf("kind = %s", resp.Kind)
	}
	if n := atomic.LoadInt32(p.upstreamCalls); n != 0 {
		t.Errorf("upstream was called %d times", n)
	}
}

func TestRouter_InvalidReportCode(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{ChannelCode: "default"}, http.StatusOK, `[]`)

	w := p.do(http.MethodGet, "/api/inv/v1/hotels/H1/inventory-statistics?dateRangeStart=2026-01-01&dateRangeEnd=2026-01-31&reportCode=InvalidCode", nil, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Kind != "ValidationError" || resp.Error != "validation failed" {
		t.Errorf("response = %+v", resp)
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Path != "reportCode" {
		t.Errorf("issues = %+v", resp.Issues)
	}
	if n := atomic.LoadInt32(p.upstreamCalls); n != 0 {
		t.Errorf("upstream was called %d times", n)
	}
}

func TestRouter_UpstreamErrors(t *testing.T) {
	t.Run("rejection mirrors the status", func(t *testing.T) {
		p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusNotFound, `{"detail":"hotel OHM9 unknown in db shard 3"}`)

		w := p.do(http.MethodGet, "/api/content/v1/hotels/OHM9", nil, channel)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "shard") {
			t.Errorf("upstream detail leaked: %s", w.Body.String())
		}
		if resp := decodeError(t, w); resp.Kind != "UpstreamRejected" {
			t.Errorf("kind = %s", resp.Kind)
		}
	})

	t.Run("server error becomes 500", func(t *testing.T) {
		p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusBadGateway, `{"detail":"stack trace"}`)

		w := p.do(http.MethodGet, "/api/content/v1/hotels/OHM1", nil, channel)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
		resp := decodeError(t, w)
		if resp.Kind != "UpstreamFailure" || strings.Contains(w.Body.String(), "stack") {
			t.Errorf("response = %s", w.Body.String())
		}
	})
}

func TestRouter_ReservationsCreateValidatesBody(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{"reservations":{"reservation":[]}}`)

	w := p.do(http.MethodPost, "/api/rsv/v1/hotels/H1/reservations", map[string]any{"other": 1}, channel)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if n := atomic.LoadInt32(p.upstreamCalls); n != 0 {
		t.Errorf("upstream was called %d times", n)
	}

	w = p.do(http.MethodPost, "/api/rsv/v1/hotels/H1/reservations", map[string]any{
		"reservations": map[string]any{"reservation": []any{map[string]any{"hotelId": "H1"}}},
	}, channel)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if p.lastUpstream.Method != http.MethodPost || p.lastUpstream.URL.Path != "/rsv/v1/hotels/H1/reservations" {
		t.Errorf("upstream request = %s %s", p.lastUpstream.Method, p.lastUpstream.URL.Path)
	}
}

func TestRouter_ReservationBodyForwardedIntact(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{"reservations":{"reservation":[]}}`)

	const sent = `{"reservations":{"reservation":[{
		"roomStay":{
			"arrivalDate":"2026-02-01","departureDate":"2026-02-03",
			"roomType":"KING","ratePlanCode":"BAR","marketCode":"LEISURE","sourceCode":"WEB",
			"total":{"amountAfterTax":220,"currencyCode":"USD"},
			"guestCounts":{"adults":2,"children":1,"childrenAges":[7]},
			"guarantee":{"guaranteeCode":"CC","paymentCard":{"cardType":"VI","cardNumber":"4111111111111111","expireDate":"2028-12","cardHolderName":"Ada Lovelace"}},
			"roomRates":[{"rates":{"rate":[{"base":100,"effectiveDate":"2026-02-01"}]}}]
		},
		"reservationGuests":[
			{"profileInfo":{"profile":{
				"customer":{"personName":[{"givenName":"Ada","surname":"Lovelace","middleName":"King"}]},
				"email":"ada@example.com","phoneNumber":"+44 20 7946 0000",
				"address":{"addressLine":["12 St James Square"],"city":"London","postalCode":"SW1Y 4JH","countryCode":"GB","state":"LDN"}
			}}},
			{"primary":false,"profileInfo":{"profile":{"customer":{"personName":[{"givenName":"Charles","surname":"Babbage"}]}}}}
		],
		"hotelId":"H1"
	}]}}`

	req := httptest.NewRequest(http.MethodPost, "/api/rsv/v1/hotels/H1/reservations", strings.NewReader(sent))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-channelcode", "demo-channel")
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got, want map[string]any
	if err := json.Unmarshal(p.lastBody, &got); err != nil {
		t.Fatalf("forwarded body is not JSON: %v", err)
	}
	json.Unmarshal([]byte(sent), &want)
	// a guest without primary is forwarded as primary
	guests := want["reservations"].(map[string]any)["reservation"].([]any)[0].(map[string]any)["reservationGuests"].([]any)
	guests[0].(map[string]any)["primary"] = true

	if !reflect.DeepEqual(got, want) {
		t.Errorf("forwarded body = %s", p.lastBody)
	}
}

func TestRouter_ReservationBodyValidation(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{}`)

	cases := []struct {
		name string
		body string
		path string
	}{
		{"bad email", `{"reservations":{"reservation":[{"reservationGuests":[{"profileInfo":{"profile":{"email":"not-an-email"}}}]}]}}`, "reservations.reservation[0].reservationGuests[0].profileInfo.profile.email"},
		{"zero adults", `{"reservations":{"reservation":[{"roomStay":{"guestCounts":{"adults":0}}}]}}`, "reservations.reservation[0].roomStay.guestCounts.adults"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/rsv/v1/hotels/H1/reservations/R1", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("x-channelcode", "demo-channel")
			w := httptest.NewRecorder()
			p.router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			if resp := decodeError(t, w); len(resp.Issues) != 1 || resp.Issues[0].Path != tc.path {
				t.Errorf("issues = %+v", resp.Issues)
			}
		})
	}
	if n := atomic.LoadInt32(p.upstreamCalls); n != 0 {
		t.Errorf("upstream was called %d times", n)
	}
}

func TestRouter_ReservationStatistics(t *testing.T) {
	const upstreamBody = `{"checkReservations":[{"hotelId":"H1","reservationId":"R1","numberOfRooms":1}],"hasMore":false}`
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, upstreamBody)

	w := p.do(http.MethodGet, "/api/rsv/v1/hotels/H1/reservations/statistics?startDate=2026-01-01&endDate=2026-01-31&limit=5", nil,
		map[string]string{"x-channelcode": "demo-channel", "Accept-Language": "en-US"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Body.String() != upstreamBody {
		t.Errorf("body = %s", w.Body.String())
	}
	if p.lastUpstream.URL.Path != "/rsv/v1/hotels/H1/reservations/statistics" || p.lastUpstream.URL.Query().Get("limit") != "5" {
		t.Errorf("upstream request = %s", p.lastUpstream.URL)
	}
	if got := p.lastUpstream.Header.Get("Accept-Language"); got != "" {
		t.Errorf("Accept-Language forwarded to reservations: %q", got)
	}

	w = p.do(http.MethodGet, "/api/rsv/v1/hotels/H1/reservations/statistics?startDate=01-01-2026", nil, channel)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad startDate status = %d", w.Code)
	}
}

func TestRouter_Bookings(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{}`)

	create := map[string]any{
		"partnerId":    "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"customerName": "Ada Lovelace",
		"serviceType":  "hotel",
		"startDate":    "2026-03-01T14:00:00Z",
		"endDate":      "2026-03-04T11:00:00Z",
	}

	w := p.do(http.MethodPost, "/api/bookings", create, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created entity.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != entity.BookingPending || created.ID == "" {
		t.Errorf("created = %+v", created)
	}

	t.Run("fetch returns identical values", func(t *testing.T) {
		w := p.do(http.MethodGet, "/api/bookings/"+created.ID, nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var got entity.Booking
		json.Unmarshal(w.Body.Bytes(), &got)
		if got.ID != created.ID || got.CustomerName != created.CustomerName ||
			!got.StartDate.Equal(created.StartDate) || !got.EndDate.Equal(created.EndDate) ||
			!got.CreatedAt.Equal(created.CreatedAt) || got.Status != created.Status {
			t.Errorf("got %+v, want %+v", got, created)
		}
	})

	t.Run("end before start is a 400", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range create {
			bad[k] = v
		}
		bad["endDate"] = "2026-02-01T00:00:00Z"

		w := p.do(http.MethodPost, "/api/bookings", bad, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		if resp := decodeError(t, w); resp.Error != "End date must be after start date" {
			t.Errorf("error = %q", resp.Error)
		}
	})

	t.Run("invalid partner id", func(t *testing.T) {
		bad := map[string]any{}
		for k, v := range create {
			bad[k] = v
		}
		bad["partnerId"] = "partner-1"

		w := p.do(http.MethodPost, "/api/bookings", bad, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
		if resp := decodeError(t, w); len(resp.Issues) == 0 || resp.Issues[0].Path != "partnerId" {
			t.Errorf("issues = %+v", resp.Issues)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		w := p.do(http.MethodPut, "/api/bookings/"+created.ID, map[string]any{"status": "confirmed"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var got entity.Booking
		json.Unmarshal(w.Body.Bytes(), &got)
		if got.Status != entity.BookingConfirmed || got.CustomerName != created.CustomerName {
			t.Errorf("got %+v", got)
		}
		if !got.UpdatedAt.After(created.UpdatedAt) {
			t.Errorf("updatedAt did not advance")
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		w := p.do(http.MethodPut, "/api/bookings/"+created.ID, map[string]any{"status": "PENDING"}, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("update absent id", func(t *testing.T) {
		w := p.do(http.MethodPut, "/api/bookings/missing", map[string]any{"customerName": "x"}, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		w := p.do(http.MethodGet, "/api/bookings", nil, nil)
		var list []entity.Booking
		json.Unmarshal(w.Body.Bytes(), &list)
		if w.Code != http.StatusOK || len(list) != 1 {
			t.Fatalf("list status = %d, len = %d", w.Code, len(list))
		}

		if w := p.do(http.MethodDelete, "/api/bookings/"+created.ID, nil, nil); w.Code != http.StatusNoContent {
			t.Fatalf("delete status = %d", w.Code)
		}
		if w := p.do(http.MethodDelete, "/api/bookings/"+created.ID, nil, nil); w.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d", w.Code)
		}
	})
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{}`)

	w := p.do(http.MethodGet, "/health", nil, nil)
	var health HealthResponse
	json.Unmarshal(w.Body.Bytes(), &health)
	if w.Code != http.StatusOK || health.Status != "ok" || health.Timestamp == "" {
		t.Errorf("health = %d %+v", w.Code, health)
	}

	w = p.do(http.MethodGet, "/metrics", nil, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "test_http_requests_total") {
		t.Errorf("metrics = %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	p := newTestPortal(t, usecase.HeaderDefaults{}, http.StatusOK, `{}`)

	w := p.do(http.MethodOptions, "/api/bookings", nil, map[string]string{"Origin": "http://localhost:3000"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin = %q", got)
	}

	w = p.do(http.MethodGet, "/health", nil, map[string]string{"Origin": "http://evil.example"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow origin %q", got)
	}
}
