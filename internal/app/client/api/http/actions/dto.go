package actions

type dispatchInput struct {
	Body dispatchRequest
}

type dispatchRequest struct {
	Type    string `json:"type" minLength:"1" example:"FIND_SAMPLES_REQUESTED" doc:"Action type"`
	Payload any    `json:"payload,omitempty" required:"false" doc:"Action payload"`
}

type dispatchOutput struct {
	Body dispatchResponse
}

type dispatchResponse struct {
	Status string `json:"status" example:"Accepted"`
	Type   string `json:"type"`
}

type typesOutput struct {
	Body []string
}
