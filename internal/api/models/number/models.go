package number

// LookupResult says whether a number is in the registry
type LookupResult struct {
	Number int32 `json:"number" example:"5"`
	Found  bool  `json:"found" example:"true"`
}
