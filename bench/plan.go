// SPDX-License-Identifier: MIT
// Package: topobench/bench
//
// plan.go — YAML plan loading.

package bench

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParsePlan decodes a YAML plan and validates it. Unknown fields are
// rejected so a typo in a plan file fails loudly instead of silently
// running defaults.
func ParsePlan(r io.Reader) (Plan, error) {
	var plan Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		return Plan{}, fmt.Errorf("bench: parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// LoadPlan reads and parses a plan file.
func LoadPlan(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("bench: open plan %s: %w", path, err)
	}
	defer f.Close()

	return ParsePlan(f)
}
