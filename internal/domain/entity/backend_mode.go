package entity

// BackendMode names the storage backend that is authoritative for a session.
type BackendMode string

const (
	// BackendRemote is the realtime document store.
	BackendRemote BackendMode = "remote"
	// BackendLocal is the single-key local store.
	BackendLocal BackendMode = "local"
)
