package poem

import (
	"context"
	"fmt"
)

type Poem struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Reader loads the current Poem from wherever it is kept
type Reader interface {
	Read(ctx context.Context) (*Poem, error)
}

// FileAccess is returned when the poem file cannot be read
type FileAccess struct {
	Path  string
	Cause error
}

func (e FileAccess) Error() string {
	return fmt.Sprintf("Error while accessing file [%s]: %v", e.Path, e.Cause)
}

func (e FileAccess) Unwrap() error {
	return e.Cause
}

// Unparseable is returned when the poem file is not a valid YAML Poem
type Unparseable struct {
	Path  string
	Cause error
}

func (e Unparseable) Error() string {
	return fmt.Sprintf("Error in YAML file [%s]: %v", e.Path, e.Cause)
}

func (e Unparseable) Unwrap() error {
	return e.Cause
}
