package errors

type clearInput struct {
	Key string `path:"key" example:"CREATE_SAMPLE_ERROR" doc:"Error key to reset"`
}

type listOutput struct {
	Body map[string]*failure
}

type failure struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
