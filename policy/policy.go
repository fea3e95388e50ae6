// Package policy loads an accepted-license policy from YAML and exposes it
// as the predicate spdxexpr.Expression needs for evaluation and as the
// licensee list it needs for minimization.
package policy

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gospdx/expr"
)

// rawPolicy is the YAML-shaped struct Load unmarshals into before
// resolving each accepted entry into a spdxexpr.Licensee.
type rawPolicy struct {
	Mode     string   `yaml:"mode"`
	Accepted []string `yaml:"accepted"`
}

// Policy is an accepted-license set together with the parse mode used to
// interpret both the policy file's entries and the expressions it is
// checked against.
type Policy struct {
	Mode     spdxexpr.ParseMode
	Accepted []spdxexpr.Licensee
}

// Load reads a YAML policy document of the form:
//
//	mode: lax            # strict | lax
//	accepted:
//	  - MIT
//	  - Apache-2.0
//	  - GPL-2.0-or-later
func Load(r io.Reader) (*Policy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("policy: read: %w", err)
	}

	var raw rawPolicy
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("policy: parse yaml: %w", err)
	}

	mode, err := parseMode(raw.Mode)
	if err != nil {
		return nil, err
	}

	accepted := make([]spdxexpr.Licensee, 0, len(raw.Accepted))
	for _, entry := range raw.Accepted {
		l, err := spdxexpr.ParseLicensee(entry, mode)
		if err != nil {
			return nil, fmt.Errorf("policy: accepted entry %q: %w", entry, err)
		}
		accepted = append(accepted, l)
	}

	return &Policy{Mode: mode, Accepted: accepted}, nil
}

func parseMode(name string) (spdxexpr.ParseMode, error) {
	switch name {
	case "", "strict":
		return spdxexpr.Strict(), nil
	case "lax":
		return spdxexpr.Lax(), nil
	default:
		return spdxexpr.ParseMode{}, fmt.Errorf("policy: invalid mode %q (want \"strict\" or \"lax\")", name)
	}
}

// Predicate returns the "does some accepted licensee satisfy this
// requirement" function that Expression.Evaluate and
// Expression.EvaluateWithFailures expect.
func (p *Policy) Predicate() func(spdxexpr.LicenseReq) bool {
	return func(req spdxexpr.LicenseReq) bool {
		for _, l := range p.Accepted {
			if l.Satisfies(req) {
				return true
			}
		}
		return false
	}
}
