package models

// SaveNotesRequest is the payload of the save-all-notes bridge call.
type SaveNotesRequest struct {
	// Notes is the full note collection to persist, newest first.
	Notes []Note `json:"notes"`

	// Length is the number of entries in Notes. The host rejects the
	// request when it does not match.
	Length int `json:"length"`

	// Hash is the hex-encoded HMAC-SHA256 of the JSON-encoded Notes.
	// Empty when no hash key is configured.
	Hash string `json:"hash,omitempty"`
}

// SaveNotesResponse reports the outcome of a save-all-notes call.
type SaveNotesResponse struct {
	Saved bool `json:"saved"`
}

// GetNotesRequest is the (empty) payload of the fetch-all-notes call.
type GetNotesRequest struct{}

// GetNotesResponse carries every stored note.
type GetNotesResponse struct {
	Notes []Note `json:"notes"`
}

// gRPC names of the bridge service. Both the host handler and the client
// adapter route on these.
const (
	BridgeServiceName     = "notes.v1.Bridge"
	BridgeGetNotesMethod  = "GetNotes"
	BridgeSaveNotesMethod = "SaveNotes"
)

// BridgeMethodPath returns the full gRPC method name, e.g.
// "/notes.v1.Bridge/GetNotes".
func BridgeMethodPath(method string) string {
	return "/" + BridgeServiceName + "/" + method
}
