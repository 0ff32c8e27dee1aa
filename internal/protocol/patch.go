package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// PlanReloaded is broadcast when the watched plan file changes and was
// re-analyzed successfully.
type PlanReloaded struct {
	Snapshot PlanSnapshot `json:"snapshot"`
}

// PlanReloadFailed is broadcast when the changed plan no longer analyzes;
// clients keep showing the last good snapshot.
type PlanReloadFailed struct {
	Error string `json:"error"`
}
