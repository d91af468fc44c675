// SPDX-License-Identifier: MIT

// Package flight models a flight network as a core.Graph of City values.
//
// A City carries the airline serving it together with the time and cost of
// the hop, so the same airport reached through two airlines is two distinct
// nodes. The network exposes the queries a route planner needs: whether an
// endpoint exists and which cities are one hop away.
package flight

import (
	"errors"
	"fmt"
)

// ErrUnknownCity indicates a requested endpoint is not part of the network.
var ErrUnknownCity = errors.New("flight: unknown city")

// City is one node of the flight network.
type City struct {
	Name    string `yaml:"name"`
	Airline string `yaml:"airline"`
	Time    int    `yaml:"time"` // minutes
	Cost    int    `yaml:"cost"` // whole currency units
}

// String renders the city as "Name (Airline)".
func (c City) String() string {
	if c.Airline == "" {
		return c.Name
	}

	return fmt.Sprintf("%s (%s)", c.Name, c.Airline)
}
