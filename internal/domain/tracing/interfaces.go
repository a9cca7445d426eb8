package tracing

import "context"

// Transaction is a unit of traced work that does not originate from an HTTP request
type Transaction interface {
	Context() context.Context
	End()
}

type Tracer interface {
	// BackgroundTx starts a Transaction for scheduled work such as the store reporter
	BackgroundTx(name string) Transaction
}
