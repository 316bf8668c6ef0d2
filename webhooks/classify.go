package webhooks

// EventKind identifies which variant of a messaging event is populated.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventOptin
	EventMessage
	EventDelivery
	EventPostback
	EventRead
	EventAccountLinking
)

func (k EventKind) String() string {
	switch k {
	case EventOptin:
		return "optin"
	case EventMessage:
		return "message"
	case EventDelivery:
		return "delivery"
	case EventPostback:
		return "postback"
	case EventRead:
		return "read"
	case EventAccountLinking:
		return "account_linking"
	default:
		return "unknown"
	}
}

// Classify determines the kind of one messaging event. Variants are tested
// in a fixed order and the first populated field wins, so a malformed event
// with several fields set still classifies deterministically. An event with
// no variant populated is EventUnknown; it is reported and dropped, never an
// error.
func Classify(m Messaging) EventKind {
	switch {
	case m.Optin != nil:
		return EventOptin
	case m.Message != nil:
		return EventMessage
	case m.Delivery != nil:
		return EventDelivery
	case m.Postback != nil:
		return EventPostback
	case m.Read != nil:
		return EventRead
	case m.AccountLinking != nil:
		return EventAccountLinking
	default:
		return EventUnknown
	}
}
