package health

const StatusOk = "ok"

type Status struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"API Services"`
}
