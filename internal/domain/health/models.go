// health models liveness checks against the things this process depends on
package health

import "context"

// Pinger is anything that can tell us whether it is usable right now
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is a named Pinger
type Dependency struct {
	Name   string
	Pinger Pinger
}

// Unhealthy is returned when a dependency fails its probe
type Unhealthy struct {
	Dependency string
	Cause      error
}

func (e Unhealthy) Error() string {
	return "Dependency [" + e.Dependency + "] is unavailable"
}

func (e Unhealthy) Unwrap() error {
	return e.Cause
}

// Check pings every dependency in order and returns the first failure
func Check(ctx context.Context, dependencies []Dependency) error {
	for _, d := range dependencies {
		if err := d.Pinger.Ping(ctx); err != nil {
			return Unhealthy{Dependency: d.Name, Cause: err}
		}
	}
	return nil
}
