package model

import "fmt"

const (
	EntityName = "connection"
)

// State is the lifecycle of the single store connection.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	ConnectionFailed
)

var stateNames = map[State]string{
	Disconnected:     "DISCONNECTED",
	Connecting:       "CONNECTING",
	Connected:        "CONNECTED",
	ConnectionFailed: "CONNECTION_FAILED",
}

var stateLabels = map[State]string{
	Disconnected:     "Disconnected",
	Connecting:       "Connecting...",
	Connected:        "Connected",
	ConnectionFailed: "Connection failed!",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Label is the operator-facing status text.
func (s State) Label() string {
	return stateLabels[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state

			return nil
		}
	}

	return fmt.Errorf("unknown connection state %q", text)
}
