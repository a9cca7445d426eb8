package greeting

import "github.com/lloydmeta/notably/internal/domain/greeting"

// Request is accepted both as a query string and as a JSON body
type Request struct {
	Salutation *string `json:"salutation,omitempty" form:"salutation" example:"Hi"`
	Name       *string `json:"name,omitempty" form:"name" example:"Bob"`
}

func (r *Request) ToDomainRequest() greeting.Request {
	return greeting.Request{
		Salutation: r.Salutation,
		Name:       r.Name,
	}
}
