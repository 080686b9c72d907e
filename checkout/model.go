package checkout

import "time"

type State string

const (
	StateIdle             State = "IDLE"
	StateValidated        State = "VALIDATED"
	StatePriced           State = "PRICED"
	StatePaid             State = "PAID"
	StatePersisted        State = "PERSISTED"
	StateLoggedAndCleared State = "LOGGED_AND_CLEARED"
	StateDone             State = "DONE"
	StateRejected         State = "REJECTED"
)

func (s State) IsTerminal() bool {
	return s == StateDone || s == StateRejected
}

func (s State) String() string {
	return string(s)
}

// Mode decides what happens when writing the order or the log entry fails.
type Mode string

const (
	// ModeLenient reports write failures as warnings and still commits the checkout.
	ModeLenient Mode = "lenient"
	// ModeStrict rolls back the order when either write fails and leaves the cart untouched.
	ModeStrict Mode = "strict"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLenient, "":
		return ModeLenient, true
	case ModeStrict:
		return ModeStrict, true
	default:
		return "", false
	}
}

type Confirmation struct {
	OrderID       int
	Total         int
	PaymentMethod string
	CheckedOutAt  time.Time
	Warnings      []error
}
