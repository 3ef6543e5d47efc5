package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mediq/models"
	"mediq/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBookingService struct {
	entry      *models.ScheduleEntry
	err        error
	lastSlotID string
	lastSource string
	lastBooked bool
}

func (f *fakeBookingService) Book(_ context.Context, slotID, source string) (*models.ScheduleEntry, error) {
	f.lastSlotID, f.lastSource, f.lastBooked = slotID, source, true
	return f.entry, f.err
}

func (f *fakeBookingService) Release(_ context.Context, slotID, source string) (*models.ScheduleEntry, error) {
	f.lastSlotID, f.lastSource, f.lastBooked = slotID, source, false
	return f.entry, f.err
}

func bookingRouter(svc *fakeBookingService) *gin.Engine {
	router := gin.New()
	handler := NewBookingHandler(svc)
	router.PATCH("/api/schedules/slots/:slotId", handler.ToggleSlotHandler)
	return router
}

func patchSlot(t *testing.T, router *gin.Engine, slotID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPatch, "/api/schedules/slots/"+slotID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestToggleSlotBooks(t *testing.T) {
	svc := &fakeBookingService{
		entry: &models.ScheduleEntry{ID: "entry1", DoctorID: "doc1", Date: "2025-06-01"},
	}
	router := bookingRouter(svc)

	w := patchSlot(t, router, "slot1", models.ToggleSlotRequest{IsBooked: true, Source: models.TransitionSourceAppointment})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastSlotID != "slot1" || !svc.lastBooked {
		t.Errorf("service called with slot=%s booked=%v", svc.lastSlotID, svc.lastBooked)
	}
	if svc.lastSource != models.TransitionSourceAppointment {
		t.Errorf("unexpected source %q", svc.lastSource)
	}
}

func TestToggleSlotDefaultsToAdminSource(t *testing.T) {
	svc := &fakeBookingService{entry: &models.ScheduleEntry{ID: "entry1"}}
	router := bookingRouter(svc)

	w := patchSlot(t, router, "slot1", map[string]interface{}{"isBooked": false})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastSource != models.TransitionSourceAdmin {
		t.Errorf("expected admin default source, got %q", svc.lastSource)
	}
	if svc.lastBooked {
		t.Error("expected a release call")
	}
}

func TestToggleSlotLostRace(t *testing.T) {
	svc := &fakeBookingService{err: utils.NewConflictError("slot slot1 is no longer available")}
	router := bookingRouter(svc)

	w := patchSlot(t, router, "slot1", models.ToggleSlotRequest{IsBooked: true, Source: models.TransitionSourceAppointment})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"] != "This time is no longer available, please choose another" {
		t.Errorf("unexpected error message %q", body["error"])
	}
}

func TestToggleSlotUnknownSlot(t *testing.T) {
	svc := &fakeBookingService{err: utils.NewNotFoundError("slot ghost")}
	router := bookingRouter(svc)

	w := patchSlot(t, router, "ghost", models.ToggleSlotRequest{IsBooked: true, Source: models.TransitionSourceAppointment})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleSlotMalformedPayload(t *testing.T) {
	svc := &fakeBookingService{entry: &models.ScheduleEntry{}}
	router := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/schedules/slots/slot1", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
