package validation

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shawndjkidd/aletrail-platform/internal/analytics"
	"github.com/shawndjkidd/aletrail-platform/pkg/db/models"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

type stubBreweryFinder struct {
	brewery *models.Brewery
	err     error
}

func (s *stubBreweryFinder) FindByID(ctx context.Context, id uuid.UUID) (*models.Brewery, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.brewery, nil
}

type stubStampWriter struct {
	created bool
	err     error
	calls   int
}

func (s *stubStampWriter) Insert(ctx context.Context, userID, breweryID, trailID uuid.UUID, method enums.ValidationMethod) (bool, error) {
	s.calls++
	return s.created, s.err
}

type stubEventWriter struct {
	events []analytics.Event
	err    error
}

func (s *stubEventWriter) Insert(ctx context.Context, event analytics.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func newTestService(t *testing.T, brewery *stubBreweryFinder, stampsW *stubStampWriter, events *stubEventWriter) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		BreweryRepo: brewery,
		StampRepo:   stampsW,
		EventRepo:   events,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testBrewery() *models.Brewery {
	return &models.Brewery{
		ID:         uuid.New(),
		TrailID:    uuid.New(),
		Name:       "Cabin Boys",
		SecretCode: "HOPS2024",
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  hops2024  ": "HOPS2024",
		"HOPS2024":     "HOPS2024",
		"   ":          "",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidateCodeCaseAndWhitespaceInsensitive(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{created: true}
	events := &stubEventWriter{}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, events)

	userID := uuid.New()
	res, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "  hops2024 ",
		UserID:    &userID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid || !res.StampCreated {
		t.Fatalf("expected valid with stamp, got %+v", res)
	}
	if res.Message != "Code validated successfully!" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestValidateCodeInvalidHasNoSideEffects(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{}
	events := &stubEventWriter{}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, events)

	userID := uuid.New()
	res, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "WRONG",
		UserID:    &userID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if res.Message != "Invalid code" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if stampsW.calls != 0 {
		t.Fatalf("invalid code must not touch the stamp store, calls: %d", stampsW.calls)
	}
	if len(events.events) != 0 {
		t.Fatalf("invalid code must not log events, got %d", len(events.events))
	}
}

func TestValidateCodeWithoutUserIsPreviewOnly(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{}
	events := &stubEventWriter{}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, events)

	res, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "HOPS2024",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid || res.StampCreated {
		t.Fatalf("expected valid preview, got %+v", res)
	}
	if stampsW.calls != 0 || len(events.events) != 0 {
		t.Fatal("preview must not persist anything")
	}
}

func TestValidateCodeRepeatIsIdempotent(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{created: false}
	events := &stubEventWriter{}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, events)

	userID := uuid.New()
	res, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "HOPS2024",
		UserID:    &userID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid || res.StampCreated {
		t.Fatalf("expected valid without a new stamp, got %+v", res)
	}
	if len(events.events) != 0 {
		t.Fatal("a repeat stamp must not produce a new event")
	}
}

func TestValidateCodeRecordsAnalyticsEvent(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{created: true}
	events := &stubEventWriter{}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, events)

	userID := uuid.New()
	_, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "HOPS2024",
		UserID:    &userID,
		Method:    enums.ValidationMethodQR,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.events) != 1 {
		t.Fatalf("expected one event, got %d", len(events.events))
	}

	event := events.events[0]
	if event.EventType != enums.AnalyticsEventStampCollected {
		t.Fatalf("unexpected event type: %s", event.EventType)
	}
	if event.TrailID != brewery.TrailID {
		t.Fatalf("expected trail %s, got %s", brewery.TrailID, event.TrailID)
	}
	if event.EventData["method"] != "qr" {
		t.Fatalf("unexpected method: %v", event.EventData["method"])
	}
	if event.EventData["brewery_name"] != "Cabin Boys" {
		t.Fatalf("unexpected brewery name: %v", event.EventData["brewery_name"])
	}
}

func TestValidateCodeAnalyticsFailureIsSwallowed(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{created: true}
	events := &stubEventWriter{err: errors.New("event store down")}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, events)

	userID := uuid.New()
	res, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "HOPS2024",
		UserID:    &userID,
	})
	if err != nil {
		t.Fatalf("analytics failure must not fail the validation: %v", err)
	}
	if !res.Valid || !res.StampCreated {
		t.Fatalf("expected valid with stamp, got %+v", res)
	}
}

func TestValidateCodeAnalyticsFailureLogsIdentifiers(t *testing.T) {
	brewery := testBrewery()
	var out bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "validation-test", Output: &out})
	svc, err := NewService(ServiceParams{
		BreweryRepo: &stubBreweryFinder{brewery: brewery},
		StampRepo:   &stubStampWriter{created: true},
		EventRepo:   &stubEventWriter{err: errors.New("event store down")},
		Logger:      logg,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	userID := uuid.New()
	if _, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "HOPS2024",
		UserID:    &userID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := out.String()
	if !strings.Contains(line, "analytics.write_failed") {
		t.Fatalf("expected failure log, got %q", line)
	}
	for field, value := range map[string]string{
		"user_id":    userID.String(),
		"trail_id":   brewery.TrailID.String(),
		"brewery_id": brewery.ID.String(),
	} {
		if !strings.Contains(line, `"`+field+`":"`+value+`"`) {
			t.Fatalf("expected %s=%s in log line %q", field, value, line)
		}
	}
}

func TestValidateCodeUnknownBrewery(t *testing.T) {
	svc := newTestService(t, &stubBreweryFinder{err: gorm.ErrRecordNotFound}, &stubStampWriter{}, &stubEventWriter{})

	_, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: uuid.New(),
		Code:      "HOPS2024",
	})
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %s", typed.Code())
	}
}

func TestValidateCodeRequiresInput(t *testing.T) {
	svc := newTestService(t, &stubBreweryFinder{}, &stubStampWriter{}, &stubEventWriter{})

	if _, err := svc.ValidateCode(context.Background(), Request{Code: "HOPS2024"}); err == nil {
		t.Fatal("expected error without a brewery id")
	}
	if _, err := svc.ValidateCode(context.Background(), Request{BreweryID: uuid.New(), Code: "   "}); err == nil {
		t.Fatal("expected error with a blank code")
	}
}

func TestValidateCodeStampStoreFailure(t *testing.T) {
	brewery := testBrewery()
	stampsW := &stubStampWriter{err: errors.New("db down")}
	svc := newTestService(t, &stubBreweryFinder{brewery: brewery}, stampsW, &stubEventWriter{})

	userID := uuid.New()
	_, err := svc.ValidateCode(context.Background(), Request{
		BreweryID: brewery.ID,
		Code:      "HOPS2024",
		UserID:    &userID,
	})
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency code, got %s", typed.Code())
	}
}
