package telemetry

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	req, _ := http.NewRequest("GET", "/bookings/GF000042", nil)
	req.Pattern = "GET /bookings/{booking_id}"
	assert.Equal(t, "GET /bookings/{booking_id}", SpanNameFormatter("", req))

	req.Pattern = ""
	assert.Equal(t, "GET /bookings/GF000042", SpanNameFormatter("", req))
}

func TestRecordErrorAndStatus(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedResult bool
		expectedCode   codes.Code
		expectedMsg    string
		expectedError  string
		expectedEvent  string
	}{
		"no-error": {
			expectedResult: false,
			expectedCode:   codes.Ok,
			expectedMsg:    "OK",
		},
		"infrastructure-error": {
			err:            errors.New("connection refused"),
			expectedResult: true,
			expectedCode:   codes.Error,
			expectedMsg:    "connection refused",
			expectedError:  "connection refused",
		},
		"conflict-is-an-event": {
			err:            domain.NewConflictErr("Requested time not available"),
			expectedResult: true,
			expectedCode:   codes.Ok,
			expectedMsg:    "OK",
			expectedEvent:  "business_error",
		},
		"wrapped-not-found-is-an-event": {
			err:            fmt.Errorf("lookup: %w", domain.NewNotFoundErr("Booking not found")),
			expectedResult: true,
			expectedCode:   codes.Ok,
			expectedMsg:    "OK",
			expectedEvent:  "business_error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			span := &mockSpan{}
			assert.Equal(t, tt.expectedResult, RecordErrorAndStatus(span, tt.err))
			assert.Equal(t, tt.expectedCode, span.statusCode)
			assert.Equal(t, tt.expectedMsg, span.statusMsg)
			assert.Equal(t, tt.expectedError, span.lastError)
			assert.Equal(t, tt.expectedEvent, span.lastEvent)
		})
	}
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, "samvaad.session.id", string(SessionID("s-1").Key))
	assert.Equal(t, "GF000042", BookingReference("GF000042").Value.AsString())
	assert.Equal(t, int64(2), RestaurantID(2).Value.AsInt64())
	assert.Equal(t, "create_booking", ToolName("create_booking").Value.AsString())
}

func TestStart(t *testing.T) {
	// Create in-memory exporter
	exporter := tracetest.NewInMemoryExporter()

	// Set up TracerProvider with the exporter
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	tracer = tp.Tracer("test-tracer")

	_, span := Start(t.Context())
	span.End()

	// Assert the name
	spans := exporter.GetSpans()
	assert.Equal(t, 1, len(spans))

	assert.Equal(t, "telemetry::TestStart", spans[0].Name)

}

// --- Mocks ---

type mockSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
	lastEvent  string
}

func (m *mockSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}
func (m *mockSpan) AddEvent(name string, _ ...trace.EventOption) {
	m.lastEvent = name
}
func (m *mockSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}
