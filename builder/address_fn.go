// Package builder provides helper functions and types
// for configuring address draws in the topology generator.
package builder

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// AddressFn draws a candidate router address.
// It must consume randomness only from rng so that a fixed seed reproduces
// the same sequence. Uniqueness is NOT its concern: the generator discards
// the whole pair attempt when a drawn address is already allocated.
type AddressFn func(rng *rand.Rand) string

// DefaultAddressFn returns four independent draws in [0, OctetBound) joined
// by AddressSeparator, e.g. "17.203.4.96".
// Complexity: O(1) time, O(1) space.
func DefaultAddressFn(rng *rand.Rand) string {
	return drawOctets(rng, nil)
}

// PrefixAddressFn returns an AddressFn with fixed leading octets; the
// remaining ones are drawn in [0, OctetBound).
// Example: PrefixAddressFn(10, 0) → "10.0.x.y".
// Panics if more than AddressOctets octets are given or any is outside [0,255].
func PrefixAddressFn(octets ...int) AddressFn {
	if len(octets) > AddressOctets {
		panic(fmt.Sprintf("PrefixAddressFn: at most %d octets, got %d", AddressOctets, len(octets)))
	}
	for _, o := range octets {
		if o < 0 || o > 255 {
			panic(fmt.Sprintf("PrefixAddressFn: octet must be in [0,255], got %d", o))
		}
	}
	prefix := make([]int, len(octets))
	copy(prefix, octets)

	return func(rng *rand.Rand) string {
		return drawOctets(rng, prefix)
	}
}

// FixedAddressFn returns an AddressFn that always yields addr and consumes no
// randomness. Useful to provoke collisions deterministically.
// Panics on an empty address.
func FixedAddressFn(addr string) AddressFn {
	if addr == "" {
		panic("FixedAddressFn: empty address")
	}

	return func(_ *rand.Rand) string {
		return addr
	}
}

// drawOctets renders prefix followed by AddressOctets-len(prefix) random octets.
func drawOctets(rng *rand.Rand, prefix []int) string {
	var sb strings.Builder
	sb.Grow(4*AddressOctets - 1)
	for i := 0; i < AddressOctets; i++ {
		if i > 0 {
			sb.WriteString(AddressSeparator)
		}
		if i < len(prefix) {
			sb.WriteString(strconv.Itoa(prefix[i]))
			continue
		}
		sb.WriteString(strconv.Itoa(rng.Intn(OctetBound)))
	}

	return sb.String()
}

// WithPrefixAddresses sets the address draw to PrefixAddressFn(octets...).
// Complexity: O(1).
func WithPrefixAddresses(octets ...int) BuilderOption {
	return WithAddressFn(PrefixAddressFn(octets...))
}
