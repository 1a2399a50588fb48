package alerts

import "net/http"

// Response header convention consumed by the web client to surface toasts.
// Success alerts carry an event key plus the entity id; failure alerts carry a
// machine-readable error key, the entity name, and a human message.
const (
	AlertHeader   = "X-Firstcode-Alert"
	ParamsHeader  = "X-Firstcode-Params"
	ErrorHeader   = "X-Firstcode-Error"
	MessageHeader = "X-Firstcode-Message"
)

// SetAlert writes a bare alert/params pair.
func SetAlert(h http.Header, message, param string) {
	h.Set(AlertHeader, message)
	h.Set(ParamsHeader, param)
}

// SetEntityCreationAlert signals that a new entity was persisted.
func SetEntityCreationAlert(h http.Header, entity, id string) {
	SetAlert(h, "firstcode."+entity+".created", id)
}

// SetEntityUpdateAlert signals that an existing entity was overwritten.
func SetEntityUpdateAlert(h http.Header, entity, id string) {
	SetAlert(h, "firstcode."+entity+".updated", id)
}

// SetEntityDeletionAlert signals that an entity was removed.
func SetEntityDeletionAlert(h http.Header, entity, id string) {
	SetAlert(h, "firstcode."+entity+".deleted", id)
}

// SetFailureAlert reports a rejected request without touching the body.
func SetFailureAlert(h http.Header, entity, errorKey, message string) {
	h.Set(ErrorHeader, "error."+errorKey)
	h.Set(ParamsHeader, entity)
	h.Set(MessageHeader, message)
}
