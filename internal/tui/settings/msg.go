package settings

// Msg is the interface for all settings form messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgSaved is sent when a save attempt finishes.
type MsgSaved struct {
	Err error
	Key string
}

func (MsgSaved) sealed() {}
