package greeting

import "fmt"

const (
	DefaultSalutation = "Hello"
	DefaultName       = "World"
)

// Request is what a caller may say about how they want to be greeted
type Request struct {
	Salutation *string
	Name       *string
}

// Format renders "<salutation>, <name>!", falling back to the defaults for
// missing parts
func (r *Request) Format() string {
	salutation := DefaultSalutation
	if r.Salutation != nil {
		salutation = *r.Salutation
	}
	name := DefaultName
	if r.Name != nil {
		name = *r.Name
	}
	return fmt.Sprintf("%s, %s!", salutation, name)
}
