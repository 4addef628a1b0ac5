package state

type getInput struct{}

type getOutput struct {
	Body any
}

type sliceInput struct {
	Slice string `path:"slice" doc:"Top-level state key, e.g. samples or errors"`
}

type sliceOutput struct {
	Body any
}

type namesOutput struct {
	Body []string
}
