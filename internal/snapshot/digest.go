package snapshot

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
)

// SortEndpoints orders endpoints by URL, then method, then handler.
//
// Both Digest and the endpoint diff use this ordering, so two modules that
// differ only in discovery order compare as equal.
func SortEndpoints(endpoints []Endpoint) {
	sort.SliceStable(endpoints, func(i, j int) bool {
		ei, ej := endpoints[i], endpoints[j]
		if ei.URL != ej.URL {
			return ei.URL < ej.URL
		}
		if ei.Method != ej.Method {
			return ei.Method < ej.Method
		}
		return ei.Handler < ej.Handler
	})
}

// Digest computes a SHA256 digest over a module's endpoints, independent of
// their order. The result has the form "sha256:<hex>".
func Digest(endpoints []Endpoint) string {
	sorted := make([]Endpoint, len(endpoints))
	copy(sorted, endpoints)
	SortEndpoints(sorted)

	h := sha256.New()
	for i, e := range sorted {
		b, err := json.Marshal(e)
		if err != nil {
			b = []byte(fmt.Sprintf("%v", e))
		}
		h.Write(b)
		if i < len(sorted)-1 {
			h.Write([]byte("\n"))
		}
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil))
}

// digestOf returns the recorded digest of m, computing it for snapshots
// written without one.
func digestOf(m ModuleSnapshot) string {
	if m.Digest != "" {
		return m.Digest
	}
	return Digest(m.Endpoints)
}
