// metadata contains models that hold data about data. MySQL stores both timestamps as
// DATETIME(6), so everything here is kept at microsecond precision in UTC.
package metadata

import "time"

type CreatedAt time.Time
type UpdatedAt time.Time

type Metadata struct {
	CreatedAt CreatedAt
	UpdatedAt UpdatedAt
}

// New returns Metadata for a freshly inserted record
func New(now time.Time) Metadata {
	at := Truncate(now)
	return Metadata{
		CreatedAt: CreatedAt(at),
		UpdatedAt: UpdatedAt(at),
	}
}

// Touch refreshes UpdatedAt, never letting it fall behind CreatedAt even if the clock
// went backwards between the insert and now.
func (m *Metadata) Touch(now time.Time) {
	at := Truncate(now)
	if at.Before(time.Time(m.CreatedAt)) {
		at = time.Time(m.CreatedAt)
	}
	m.UpdatedAt = UpdatedAt(at)
}

// Truncate normalises a time to what survives a round trip through the store
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
