package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the daemon"`
	Pending bool   `json:"pending" doc:"Whether a mutating request is in flight"`
}
