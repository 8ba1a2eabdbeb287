package telemetry

import "go.opentelemetry.io/otel/attribute"

// Span attribute keys shared by the chat loop, the tools and the storage adapters.
const (
	SessionIDKey        = attribute.Key("samvaad.session.id")
	BookingReferenceKey = attribute.Key("samvaad.booking.reference")
	RestaurantIDKey     = attribute.Key("samvaad.restaurant.id")
	ToolNameKey         = attribute.Key("samvaad.tool.name")
)

func SessionID(id string) attribute.KeyValue { return SessionIDKey.String(id) }

func BookingReference(ref string) attribute.KeyValue { return BookingReferenceKey.String(ref) }

func RestaurantID(id int) attribute.KeyValue { return RestaurantIDKey.Int(id) }

func ToolName(name string) attribute.KeyValue { return ToolNameKey.String(name) }
