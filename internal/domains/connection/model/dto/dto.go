package dto

import (
	"frontdesk/internal/domains/connection/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type StateResponse struct {
	State model.State `json:"state"`
	Label string      `json:"label"`
	// InterfaceEnabled is true only while connected; the desk accepts no edits otherwise.
	InterfaceEnabled bool `json:"interface_enabled"`
}

func (r *StateResponse) FromModel(state model.State) {
	r.State = state
	r.Label = state.Label()
	r.InterfaceEnabled = state == model.Connected
}

func NewStateResponse(state model.State) StateResponse {
	var res StateResponse
	res.FromModel(state)

	return res
}

// StateChange is one frame of the connection stream.
type StateChange struct {
	StateResponse
	At string `json:"at"`
}

func NewStateChange(state model.State) StateChange {
	return StateChange{
		StateResponse: NewStateResponse(state),
		At:            timezone.Format(timezone.Now(), constant.TimeFormat),
	}
}

type ToggleResponse struct {
	StateResponse
	Success bool `json:"success"`
}
