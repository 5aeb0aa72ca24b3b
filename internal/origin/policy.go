package origin

import (
	"strings"

	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

// Decision is the outcome of evaluating one request's Origin.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Reason records which rule produced a Decision.
type Reason string

const (
	ReasonNoOrigin  Reason = "no_origin"
	ReasonAllowList Reason = "allow_list"
	ReasonWildcard  Reason = "wildcard"
	ReasonDenied    Reason = "denied"
)

// Policy decides whether a cross-origin caller may receive a response.
// It is immutable after NewPolicy and safe for concurrent use.
type Policy struct {
	allowed map[string]struct{}
	origins []string
	suffix  string
	logger  *logging.Logger
}

// NewPolicy builds a Policy from an exact allow-list and a wildcard hostname
// suffix. An empty suffix disables wildcard matching. A nil logger discards
// deny warnings.
func NewPolicy(origins []string, suffix string, logger *logging.Logger) *Policy {
	if logger == nil {
		logger = logging.Discard()
	}
	p := &Policy{
		allowed: make(map[string]struct{}, len(origins)),
		suffix:  suffix,
		logger:  logger,
	}
	for _, o := range origins {
		o = Normalize(strings.TrimSpace(o))
		if o == "" {
			continue
		}
		key := strings.ToLower(o)
		if _, dup := p.allowed[key]; dup {
			continue
		}
		p.allowed[key] = struct{}{}
		p.origins = append(p.origins, o)
	}
	return p
}

// Origins returns a copy of the exact allow-list.
func (p *Policy) Origins() []string {
	return append([]string(nil), p.origins...)
}

// Suffix returns the wildcard hostname suffix.
func (p *Policy) Suffix() string {
	return p.suffix
}

// Decide is Evaluate without the reason.
func (p *Policy) Decide(origin string) Decision {
	d, _ := p.Evaluate(origin)
	return d
}

// Evaluate applies the rules in order: no origin, exact allow-list, wildcard
// suffix. Anything else is denied and logged once at WARN with the raw origin.
func (p *Policy) Evaluate(origin string) (Decision, Reason) {
	if origin == "" {
		return Allow, ReasonNoOrigin
	}

	normalized := Normalize(origin)
	if _, ok := p.allowed[strings.ToLower(normalized)]; ok {
		return Allow, ReasonAllowList
	}
	if MatchWildcard(normalized, p.suffix) {
		return Allow, ReasonWildcard
	}

	p.logger.Warn("origin rejected", "origin", origin)
	return Deny, ReasonDenied
}
