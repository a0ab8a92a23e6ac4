package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/domain"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	bookErr        error
	bookResult     *domain.Ticket
	lastBookSlug   string
	lastSubmission domain.BookingSubmission
	listErr        error
	listResult     []*domain.Ticket
}

func (f *fakeBookingService) BookTicket(_ context.Context, eventSlug string, submission domain.BookingSubmission) (*domain.Ticket, error) {
	f.lastBookSlug = eventSlug
	f.lastSubmission = submission
	return f.bookResult, f.bookErr
}

func (f *fakeBookingService) ListTickets(_ context.Context) ([]*domain.Ticket, error) {
	return f.listResult, f.listErr
}

func newTicketMux(svc domain.BookingService) *http.ServeMux {
	c := NewTicketController(testLogger, svc)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/events/{slug}/book", c.BookTicket)
	mux.HandleFunc("GET /api/tickets", c.ListTickets)
	return mux
}

const validBookingBody = `{"name":"Ahmed Ali","email":"ahmed@example.com","mobile":"+971 50 1234567","date":"2024-12-15"}`

func TestBookTicket(t *testing.T) {
	svc := &fakeBookingService{
		bookResult: &domain.Ticket{
			ID:           "ticket-abc",
			EventSlug:    "tech-summit-2024",
			AttendeeName: "Ahmed Ali",
			BookingDate:  time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC),
		},
	}
	mux := newTicketMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/events/tech-summit-2024/book",
		strings.NewReader(validBookingBody))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "tech-summit-2024", svc.lastBookSlug)
	assert.Equal(t, domain.BookingSubmission{
		Name:   "Ahmed Ali",
		Email:  "ahmed@example.com",
		Mobile: "+971 50 1234567",
		Date:   "2024-12-15",
	}, svc.lastSubmission)

	var resp BookTicketSuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "ticket-abc", resp.Data.ID)
}

func TestBookTicket_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"a@b.com","mobile":"+123456","date":"2024-12-15"}`, "name is required"},
		{"missing email", `{"name":"A","mobile":"+123456","date":"2024-12-15"}`, "email is required"},
		{"bad email", `{"name":"A","email":"not-an-email","mobile":"+123456","date":"2024-12-15"}`, "email must be a valid email address"},
		{"missing mobile", `{"name":"A","email":"a@b.com","date":"2024-12-15"}`, "mobile is required"},
		{"bad mobile", `{"name":"A","email":"a@b.com","mobile":"phone","date":"2024-12-15"}`, "mobile must be a valid phone number"},
		{"missing date", `{"name":"A","email":"a@b.com","mobile":"+123456"}`, "date is required"},
		{"blank date", `{"name":"A","email":"a@b.com","mobile":"+123456","date":"   "}`, "date is required"},
		{"unknown field", `{"name":"A","email":"a@b.com","mobile":"+123456","date":"2024-12-15","extra":1}`, "unknown field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{}
			mux := newTicketMux(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/events/tech-summit-2024/book",
				strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
			assert.Empty(t, svc.lastBookSlug, "service must not be called on invalid input")
		})
	}
}

func TestBookTicket_MobileFormats(t *testing.T) {
	valid := []string{"+971501234567", "0501234567", "+1 (555) 123-4567", "555.123.4567"}
	for _, mobile := range valid {
		t.Run(mobile, func(t *testing.T) {
			req := BookTicketRequest{Name: "A", Email: "a@b.com", Mobile: mobile, Date: "2024-12-15"}
			assert.Empty(t, req.Validate())
		})
	}
	invalid := []string{"abc", "+", "12345 12345 12345 12345"}
	for _, mobile := range invalid {
		t.Run(mobile, func(t *testing.T) {
			req := BookTicketRequest{Name: "A", Email: "a@b.com", Mobile: mobile, Date: "2024-12-15"}
			assert.NotEmpty(t, req.Validate())
		})
	}
}

func TestBookTicket_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not_found", "Event not found."},
		{"sold out", domain.ErrEventFull, http.StatusConflict, "sold_out", "This event is fully booked."},
		{"transient", domain.ErrTransient, http.StatusServiceUnavailable, "unavailable", "Network error. Please try again later."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{bookErr: tt.err}
			mux := newTicketMux(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/events/tech-summit-2024/book",
				strings.NewReader(validBookingBody))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
		})
	}
}

func TestListTickets(t *testing.T) {
	svc := &fakeBookingService{
		listResult: []*domain.Ticket{
			{ID: "ticket-1", EventSlug: "tech-summit-2024"},
			{ID: "ticket-2", EventSlug: "jazz-night-downtown"},
		},
	}
	mux := newTicketMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp ListTicketsSuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "ticket-1", resp.Data[0].ID)
}

func TestListTickets_EmptyIsArray(t *testing.T) {
	mux := newTicketMux(&fakeBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
}
