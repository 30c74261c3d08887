package resolver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NextValueFunc chooses the new value of the updated field from its current
// value and the number of available themes.
type NextValueFunc func(current string, available int) string

// Increment returns current+1. A non-integer current value counts as 0.
func Increment(current string, _ int) string {
	return strconv.Itoa(parseIndex(current) + 1)
}

// Cycle returns current+1, wrapping back to 1 once it passes available.
// With no available themes it behaves like Increment.
func Cycle(current string, available int) string {
	next := parseIndex(current) + 1
	if available > 0 && (next > available || next < 1) {
		next = 1
	}
	return strconv.Itoa(next)
}

// DefaultPolicy is the policy used when none is named.
const DefaultPolicy = "increment"

var policies = map[string]NextValueFunc{
	"increment": Increment,
	"cycle":     Cycle,
}

// PolicyByName returns the named policy. An empty name selects DefaultPolicy.
func PolicyByName(name string) (NextValueFunc, error) {
	if name == "" {
		name = DefaultPolicy
	}
	policy, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("unknown update policy %q (want one of: %s)", name, strings.Join(PolicyNames(), ", "))
	}
	return policy, nil
}

// PolicyNames returns the registered policy names in sorted order.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseIndex(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
