package settings

import "slices"

type Settings struct {
	SampleGroup           string   `json:"sample_group"`
	SampleAllRead         bool     `json:"sample_all_read"`
	SampleAllWrite        bool     `json:"sample_all_write"`
	SampleGroupRead       bool     `json:"sample_group_read"`
	SampleGroupWrite      bool     `json:"sample_group_write"`
	SampleUniqueNames     bool     `json:"sample_unique_names"`
	EnableAPI             bool     `json:"enable_api"`
	EnableSentry          bool     `json:"enable_sentry"`
	MinimumPasswordLength int      `json:"minimum_password_length"`
	DefaultSourceTypes    []string `json:"default_source_types"`
}

type Update struct {
	SampleGroup           *string   `json:"sample_group,omitempty"`
	SampleAllRead         *bool     `json:"sample_all_read,omitempty"`
	SampleAllWrite        *bool     `json:"sample_all_write,omitempty"`
	SampleGroupRead       *bool     `json:"sample_group_read,omitempty"`
	SampleGroupWrite      *bool     `json:"sample_group_write,omitempty"`
	SampleUniqueNames     *bool     `json:"sample_unique_names,omitempty"`
	EnableAPI             *bool     `json:"enable_api,omitempty"`
	EnableSentry          *bool     `json:"enable_sentry,omitempty"`
	MinimumPasswordLength *int      `json:"minimum_password_length,omitempty"`
	DefaultSourceTypes    *[]string `json:"default_source_types,omitempty"`
}

func (u Update) Apply(s Settings) Settings {
	if u.SampleGroup != nil {
		s.SampleGroup = *u.SampleGroup
	}
	if u.SampleAllRead != nil {
		s.SampleAllRead = *u.SampleAllRead
	}
	if u.SampleAllWrite != nil {
		s.SampleAllWrite = *u.SampleAllWrite
	}
	if u.SampleGroupRead != nil {
		s.SampleGroupRead = *u.SampleGroupRead
	}
	if u.SampleGroupWrite != nil {
		s.SampleGroupWrite = *u.SampleGroupWrite
	}
	if u.SampleUniqueNames != nil {
		s.SampleUniqueNames = *u.SampleUniqueNames
	}
	if u.EnableAPI != nil {
		s.EnableAPI = *u.EnableAPI
	}
	if u.EnableSentry != nil {
		s.EnableSentry = *u.EnableSentry
	}
	if u.MinimumPasswordLength != nil {
		s.MinimumPasswordLength = *u.MinimumPasswordLength
	}
	if u.DefaultSourceTypes != nil {
		s.DefaultSourceTypes = slices.Clone(*u.DefaultSourceTypes)
	}
	return s
}

// OTUName is one entry of the control OTU readahead list.
type OTUName struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

type State struct {
	Data             *Settings `json:"data"`
	Readahead        []OTUName `json:"readahead"`
	ReadaheadPending bool      `json:"readahead_pending"`
}

func (s State) Settle() State {
	s.ReadaheadPending = false
	return s
}
