package reports

import "github.com/OfficialArms/virtool/internal/domain/report"

type listInput struct {
	Limit int `query:"limit" default:"50" minimum:"1" maximum:"500" doc:"Maximum number of reports"`
}

type listOutput struct {
	Body []report.Report
}
