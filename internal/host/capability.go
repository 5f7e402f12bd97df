package host

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned by collaborators whose backing capability is not
// loaded in the current process.
var ErrUnavailable = errors.New("host capability unavailable")

// Capability names an optional host subsystem.
type Capability string

const (
	// CapabilityFileIndex backs FindFilesByName.
	CapabilityFileIndex Capability = "file-index"
	// CapabilitySymbolIndex backs the SymbolIndex queries.
	CapabilitySymbolIndex Capability = "symbol-index"
	// CapabilityFlatConfig backs ParseAsFlatProperties.
	CapabilityFlatConfig Capability = "flat-config"
	// CapabilityNestedConfig backs ParseAsNestedMapping.
	CapabilityNestedConfig Capability = "nested-config"
)

// Capabilities reports which host subsystems are loaded.
type Capabilities interface {
	Available(c Capability) bool
}

// Advisor receives recoverable "analysis degraded" notices.
type Advisor interface {
	Advise(c Capability, message string)
}

// AdvisorFunc adapts a function to the Advisor interface.
type AdvisorFunc func(c Capability, message string)

// Advise calls f.
func (f AdvisorFunc) Advise(c Capability, message string) {
	f(c, message)
}

// NopAdvisor discards every notice.
var NopAdvisor Advisor = AdvisorFunc(func(Capability, string) {})

// OnceAdvisor forwards the first notice per capability and drops repeats.
type OnceAdvisor struct {
	next Advisor
	seen sync.Map
}

// NewOnceAdvisor wraps next so that each capability is reported at most once.
func NewOnceAdvisor(next Advisor) *OnceAdvisor {
	if next == nil {
		next = NopAdvisor
	}
	return &OnceAdvisor{next: next}
}

// Advise implements Advisor.
func (a *OnceAdvisor) Advise(c Capability, message string) {
	if _, loaded := a.seen.LoadOrStore(c, struct{}{}); loaded {
		return
	}
	a.next.Advise(c, message)
}
