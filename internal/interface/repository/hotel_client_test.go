package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"

	"partner-portal-service/internal/domain/apperror"
	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/pkg/logger"
	"partner-portal-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/oauth2"
)

type recordedRequest struct {
	method  string
	path    string
	query   url.Values
	headers http.Header
	body    []byte
}

// fakeHotelAPI answers every request with status and body and records the last request
func fakeHotelAPI(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.query = r.URL.Query()
		rec.headers = r.Header.Clone()
		rec.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func newTestHotelClient(baseURL string, strict bool, tokens oauth2.TokenSource) (*HotelClient, *metrics.Metrics) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	client := NewHotelClient(HotelClientConfig{
		BaseURL:         baseURL,
		Timeout:         5 * time.Second,
		StrictResponses: strict,
		Tokens:          tokens,
	}, logger.NewNopLogger(), m)
	return client, m
}

func ptr[T any](v T) *T {
	return &v
}

func channelHeaders() entity.Headers {
	return entity.Headers{"x-channelCode": "demo-channel"}
}

// fullReservationBody carries every field a reservation request may hold
const fullReservationBody = `{
  "reservations": {
    "reservation": [{
      "reservationIdList": [{"id": "R1", "type": "Reservation"}],
      "roomStay": {
        "arrivalDate": "2026-02-01",
        "departureDate": "2026-02-03",
        "roomType": "KING",
        "ratePlanCode": "BAR",
        "marketCode": "LEISURE",
        "sourceCode": "WEB",
        "total": {"amountBeforeTax": 200, "amountAfterTax": 220, "currencyCode": "USD"},
        "guestCounts": {"adults": 2, "children": 1, "childrenAges": [7]},
        "guarantee": {
          "guaranteeCode": "CC",
          "shortDescription": "Credit card",
          "paymentCard": {"cardType": "VI", "cardNumber": "4111111111111111", "expireDate": "2028-12", "cardHolderName": "Ada Lovelace"}
        },
        "roomRates": [{
          "roomType": "KING",
          "ratePlanCode": "BAR",
          "start": "2026-02-01",
          "end": "2026-02-03",
          "total": {"amountBeforeTax": 200, "currencyCode": "USD"},
          "guestCounts": {"adults": 2},
          "rates": {"rate": [{"base": 100, "amountBeforeTax": 100, "amountAfterTax": 110, "currencyCode": "USD", "effectiveDate": "2026-02-01"}]}
        }]
      },
      "reservationGuests": [{
        "primary": true,
        "profileInfo": {
          "profileIdList": [{"id": "P1", "type": "Profile"}],
          "profile": {
            "customer": {"personName": [{"givenName": "Ada", "surname": "Lovelace", "namePrefix": "Ms", "middleName": "King", "nameSuffix": "II"}]},
            "email": "ada@example.com",
            "phoneNumber": "+44 20 7946 0000",
            "address": {"addressLine": ["12 St James Square"], "city": "London", "postalCode": "SW1Y 4JH", "countryCode": "GB", "state": "LDN"}
          }
        }
      }],
      "hotelId": "H1",
      "reservationStatus": "Reserved",
      "createDateTime": "2026-01-28T06:10:20"
    }]
  }
}`

// assertSameJSON compares two JSON documents by value
func assertSameJSON(t *testing.T, got []byte, want string) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("expected body is not JSON: %v", err)
	}
	if !reflect.DeepEqual(g, w) {
		t.Errorf("body = %s\nwant %s", got, want)
	}
}

func TestHotelAvailabilityAPI_SearchProperties(t *testing.T) {
	const upstreamBody = `{"roomStays":[{"propertyInfo":{"hotelCode":"OHM1"},"availability":"AvailableForSale"}]}`
	server, rec := fakeHotelAPI(t, http.StatusOK, upstreamBody)
	client, _ := newTestHotelClient(server.URL, false, nil)

	query := entity.PropertySearchQuery{
		HotelCodes:    []string{"OHM1", "OHM2"},
		ArrivalDate:   "2026-01-01",
		DepartureDate: "2026-01-03",
		Adults:        ptr(2),
		AvailableOnly: ptr(true),
		MinRate:       ptr(100.5),
	}

	body, err := NewHotelAvailabilityAPI(client).SearchProperties(context.Background(), query, channelHeaders())
	if err != nil {
		t.Fatalf("SearchProperties failed: %v", err)
	}
	if string(body) != upstreamBody {
		t.Errorf("body = %s, want upstream body verbatim", body)
	}

	if rec.method != http.MethodGet || rec.path != "/shop/v1/hotels" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}

	want := map[string]string{
		"HotelCodes":    "OHM1,OHM2",
		"ArrivalDate":   "2026-01-01",
		"DepartureDate": "2026-01-03",
		"Adults":        "2",
		"AvailableOnly": "true",
		"minRate":       "100.5",
	}
	for k, v := range want {
		if got := rec.query.Get(k); got != v {
			t.Errorf("query %s = %q, want %q", k, got, v)
		}
	}
	for _, absent := range []string{"Children", "ArrivalDateTo", "RatePlanCodes", "maxRate"} {
		if _, ok := rec.query[absent]; ok {
			t.Errorf("query %s should be omitted", absent)
		}
	}

	if got := rec.headers.Get("x-channelCode"); got != "demo-channel" {
		t.Errorf("x-channelCode = %q", got)
	}
}

func TestHotelShopAPI_EscapesPathParameters(t *testing.T) {
	server, rec := fakeHotelAPI(t, http.StatusOK, `{"roomStays":[]}`)
	client, _ := newTestHotelClient(server.URL, false, nil)

	_, err := NewHotelShopAPI(client).GetPropertyOffers(context.Background(), "A B/C", entity.PropertyOffersQuery{
		ArrivalDate:   "2026-01-01",
		DepartureDate: "2026-01-02",
		RoomTypes:     []string{"KING", "QUEEN"},
	}, channelHeaders())
	if err != nil {
		t.Fatalf("GetPropertyOffers failed: %v", err)
	}

	if rec.path != "/shop/v1/hotels/A%20B%2FC/offers" {
		t.Errorf("path = %s", rec.path)
	}
	if got := rec.query.Get("RoomTypes"); got != "KING,QUEEN" {
		t.Errorf("RoomTypes = %q", got)
	}
}

func TestHotelInventoryAPI_RepeatsListKeys(t *testing.T) {
	server, rec := fakeHotelAPI(t, http.StatusOK, `[{"hotelName":"Ohm","reportCode":"SellLimitSummary"}]`)
	client, m := newTestHotelClient(server.URL, true, nil)

	_, err := NewHotelInventoryAPI(client).GetInventoryStatistics(context.Background(), "H1", entity.InventoryStatisticsQuery{
		DateRangeStart: "2026-01-01",
		DateRangeEnd:   "2026-01-31",
		ReportCode:     entity.ReportSellLimitSummary,
		ParameterName:  []string{"roomType", "ratePlan"},
		ParameterValue: []string{"KING", "BAR"},
	}, channelHeaders())
	if err != nil {
		t.Fatalf("GetInventoryStatistics failed: %v", err)
	}

	if rec.path != "/inv/v1/hotels/H1/inventoryStatistics" {
		t.Errorf("path = %s", rec.path)
	}
	if got := rec.query["parameterName"]; len(got) != 2 || got[0] != "roomType" || got[1] != "ratePlan" {
		t.Errorf("parameterName = %v", got)
	}
	if got := rec.query["parameterValue"]; len(got) != 2 {
		t.Errorf("parameterValue = %v", got)
	}
	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("inventory.statistics", "ok")); got != 1 {
		t.Errorf("ok counter = %v, want 1", got)
	}
}

func TestHotelReservationsAPI(t *testing.T) {
	t.Run("list repeats confirmation numbers", func(t *testing.T) {
		server, rec := fakeHotelAPI(t, http.StatusOK, `{"reservations":{"reservation":[]}}`)
		client, _ := newTestHotelClient(server.URL, false, nil)

		_, err := NewHotelReservationsAPI(client).ListReservations(context.Background(), "H1", entity.HotelReservationsQuery{
			Surname:                ptr("Smith"),
			ConfirmationNumberList: []string{"C1", "C2"},
			Limit:                  ptr(10),
		}, channelHeaders())
		if err != nil {
			t.Fatalf("ListReservations failed: %v", err)
		}
		if got := rec.query["confirmationNumberList"]; len(got) != 2 {
			t.Errorf("confirmationNumberList = %v", got)
		}
		if rec.query.Get("limit") != "10" || rec.query.Get("surname") != "Smith" {
			t.Errorf("query = %v", rec.query)
		}
	})

	t.Run("create forwards every field", func(t *testing.T) {
		server, rec := fakeHotelAPI(t, http.StatusOK, `{"reservations":{"reservation":[{"hotelId":"H1"}]}}`)
		client, _ := newTestHotelClient(server.URL, true, nil)

		var req entity.CreateReservationRequest
		if err := json.Unmarshal([]byte(fullReservationBody), &req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, err := NewHotelReservationsAPI(client).CreateReservation(context.Background(), "H1", req, channelHeaders())
		if err != nil {
			t.Fatalf("CreateReservation failed: %v", err)
		}

		if rec.method != http.MethodPost || rec.path != "/rsv/v1/hotels/H1/reservations" {
			t.Errorf("request = %s %s", rec.method, rec.path)
		}
		if ct := rec.headers.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		assertSameJSON(t, rec.body, fullReservationBody)
	})

	t.Run("statistics maps the date range", func(t *testing.T) {
		server, rec := fakeHotelAPI(t, http.StatusOK, `{"checkReservations":[{"hotelId":"H1","numberOfRooms":1}],"hasMore":false}`)
		client, m := newTestHotelClient(server.URL, true, nil)

		_, err := NewHotelReservationsAPI(client).GetReservationStatistics(context.Background(), "H1", entity.ReservationStatisticsQuery{
			StartDate: ptr("2026-01-01"),
			EndDate:   ptr("2026-01-31"),
			Limit:     ptr(20),
		}, channelHeaders())
		if err != nil {
			t.Fatalf("GetReservationStatistics failed: %v", err)
		}
		if rec.path != "/rsv/v1/hotels/H1/reservations/statistics" {
			t.Errorf("path = %s", rec.path)
		}
		if rec.query.Get("startDate") != "2026-01-01" || rec.query.Get("endDate") != "2026-01-31" || rec.query.Get("limit") != "20" {
			t.Errorf("query = %v", rec.query)
		}
		if rec.query.Has("offset") {
			t.Errorf("offset should be absent")
		}
		if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("reservations.statistics", "ok")); got != 1 {
			t.Errorf("ok counter = %v, want 1", got)
		}
	})

	t.Run("reservation records are checked loosely", func(t *testing.T) {
		const loose = `{"reservations":{"reservation":[{"roomStay":{"roomRates":[{"rates":{"rate":[{"base":100}]}}]},"createDateTime":"2026-01-28T06:10:20.083795"}]}}`
		server, _ := fakeHotelAPI(t, http.StatusOK, loose)
		client, m := newTestHotelClient(server.URL, true, nil)

		body, err := NewHotelReservationsAPI(client).UpdateReservation(context.Background(), "H1", "R1", entity.CreateReservationRequest{
			Reservations: &entity.ReservationCollection{},
		}, channelHeaders())
		if err != nil {
			t.Fatalf("UpdateReservation failed: %v", err)
		}
		if string(body) != loose {
			t.Errorf("body = %s", body)
		}
		if got := testutil.ToFloat64(m.ShapeMismatches.WithLabelValues("reservations.update")); got != 0 {
			t.Errorf("mismatch counter = %v, want 0", got)
		}
	})

	t.Run("reservation list envelope is still checked", func(t *testing.T) {
		server, _ := fakeHotelAPI(t, http.StatusOK, `{"reservations":{"reservation":"none"}}`)
		client, _ := newTestHotelClient(server.URL, true, nil)

		_, err := NewHotelReservationsAPI(client).ListReservations(context.Background(), "H1", entity.HotelReservationsQuery{}, channelHeaders())
		if !apperror.IsKind(err, apperror.KindUpstreamFailure) {
			t.Fatalf("expected UpstreamFailure, got %v", err)
		}
	})

	t.Run("cancel path", func(t *testing.T) {
		server, rec := fakeHotelAPI(t, http.StatusOK, `{"status":"Cancelled"}`)
		client, _ := newTestHotelClient(server.URL, true, nil)

		_, err := NewHotelReservationsAPI(client).CancelReservation(context.Background(), "H1", "R9", entity.CancelReservationRequest{
			Reason: &entity.CancelReason{Code: ptr("GUEST")},
		}, channelHeaders())
		if err != nil {
			t.Fatalf("CancelReservation failed: %v", err)
		}
		if rec.path != "/rsv/v1/hotels/H1/reservations/R9/cancellations" {
			t.Errorf("path = %s", rec.path)
		}
	})
}

func TestHotelClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		wantKind   apperror.Kind
		wantStatus int
	}{
		{"not found is rejected", http.StatusNotFound, apperror.KindUpstreamRejected, http.StatusNotFound},
		{"bad request is rejected", http.StatusBadRequest, apperror.KindUpstreamRejected, http.StatusBadRequest},
		{"server error is a failure", http.StatusInternalServerError, apperror.KindUpstreamFailure, http.StatusInternalServerError},
		{"unavailable is a failure", http.StatusServiceUnavailable, apperror.KindUpstreamFailure, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := fakeHotelAPI(t, tc.status, `{"detail":"secret internals"}`)
			client, _ := newTestHotelClient(server.URL, false, nil)

			_, err := NewHotelContentAPI(client).GetProperty(context.Background(), "OHM1", channelHeaders())
			appErr := apperror.As(err)
			if appErr == nil || appErr.Kind != tc.wantKind {
				t.Fatalf("error = %v, want kind %s", err, tc.wantKind)
			}
			if appErr.Status() != tc.wantStatus {
				t.Errorf("status = %d, want %d", appErr.Status(), tc.wantStatus)
			}
		})
	}

	t.Run("transport failure", func(t *testing.T) {
		server, _ := fakeHotelAPI(t, http.StatusOK, `{}`)
		server.Close()
		client, m := newTestHotelClient(server.URL, false, nil)

		_, err := NewHotelContentAPI(client).GetProperty(context.Background(), "OHM1", channelHeaders())
		if !apperror.IsKind(err, apperror.KindUpstreamFailure) {
			t.Fatalf("expected UpstreamFailure, got %v", err)
		}
		if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("content.hotel", "failure")); got != 1 {
			t.Errorf("failure counter = %v, want 1", got)
		}
	})
}

func TestHotelClient_ShapeCheck(t *testing.T) {
	const mismatched = `{"hotels":"not-a-list"}`

	t.Run("lenient passes mismatches through", func(t *testing.T) {
		server, _ := fakeHotelAPI(t, http.StatusOK, mismatched)
		client, m := newTestHotelClient(server.URL, false, nil)

		body, err := NewHotelContentAPI(client).ListProperties(context.Background(), entity.PropertiesSummaryQuery{}, channelHeaders())
		if err != nil {
			t.Fatalf("ListProperties failed: %v", err)
		}
		if string(body) != mismatched {
			t.Errorf("body = %s", body)
		}
		if got := testutil.ToFloat64(m.ShapeMismatches.WithLabelValues("content.hotels")); got != 1 {
			t.Errorf("mismatch counter = %v, want 1", got)
		}
	})

	t.Run("strict fails mismatches", func(t *testing.T) {
		server, _ := fakeHotelAPI(t, http.StatusOK, mismatched)
		client, _ := newTestHotelClient(server.URL, true, nil)

		_, err := NewHotelContentAPI(client).ListProperties(context.Background(), entity.PropertiesSummaryQuery{}, channelHeaders())
		if !apperror.IsKind(err, apperror.KindUpstreamFailure) {
			t.Fatalf("expected UpstreamFailure, got %v", err)
		}
	})

	t.Run("unchecked endpoints skip the check", func(t *testing.T) {
		const odd = `{"hotelInfo":"not-an-object","roomTypes":42}`
		server, _ := fakeHotelAPI(t, http.StatusOK, odd)
		client, m := newTestHotelClient(server.URL, true, nil)
		api := NewHotelContentAPI(client)

		body, err := api.GetProperty(context.Background(), "OHM1", channelHeaders())
		if err != nil {
			t.Fatalf("GetProperty failed: %v", err)
		}
		if string(body) != odd {
			t.Errorf("body = %s", body)
		}
		if _, err := api.GetRoomTypes(context.Background(), "OHM1", entity.RoomTypesQuery{}, channelHeaders()); err != nil {
			t.Fatalf("GetRoomTypes failed: %v", err)
		}
		for _, endpoint := range []string{"content.hotel", "content.roomTypes"} {
			if got := testutil.ToFloat64(m.ShapeMismatches.WithLabelValues(endpoint)); got != 0 {
				t.Errorf("%s mismatch counter = %v, want 0", endpoint, got)
			}
		}
	})

	t.Run("shop offers are checked", func(t *testing.T) {
		server, _ := fakeHotelAPI(t, http.StatusOK, `{"offer":"not-an-object"}`)
		client, _ := newTestHotelClient(server.URL, true, nil)

		_, err := NewHotelShopAPI(client).GetOfferDetails(context.Background(), "OHM1", entity.OfferDetailsQuery{
			ArrivalDate:   "2026-01-01",
			DepartureDate: "2026-01-02",
		}, channelHeaders())
		if !apperror.IsKind(err, apperror.KindUpstreamFailure) {
			t.Fatalf("expected UpstreamFailure, got %v", err)
		}
	})
}

func TestHotelClient_BearerToken(t *testing.T) {
	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "svc-token", TokenType: "Bearer"})

	t.Run("token fills a missing authorization", func(t *testing.T) {
		server, rec := fakeHotelAPI(t, http.StatusOK, `{"propertyInfo":{}}`)
		client, _ := newTestHotelClient(server.URL, false, tokens)

		if _, err := NewHotelContentAPI(client).GetProperty(context.Background(), "OHM1", channelHeaders()); err != nil {
			t.Fatalf("GetProperty failed: %v", err)
		}
		if got := rec.headers.Get("Authorization"); got != "Bearer svc-token" {
			t.Errorf("Authorization = %q", got)
		}
	})

	t.Run("caller authorization wins", func(t *testing.T) {
		server, rec := fakeHotelAPI(t, http.StatusOK, `{"propertyInfo":{}}`)
		client, _ := newTestHotelClient(server.URL, false, tokens)

		headers := channelHeaders()
		headers["Authorization"] = "Bearer caller"
		if _, err := NewHotelContentAPI(client).GetProperty(context.Background(), "OHM1", headers); err != nil {
			t.Fatalf("GetProperty failed: %v", err)
		}
		if got := rec.headers.Get("Authorization"); got != "Bearer caller" {
			t.Errorf("Authorization = %q", got)
		}
	})
}
