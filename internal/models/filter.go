package models

import "time"

// SortField is a single ordering criterion. Field names are the public ones
// ("created", "ph"), not column names.
type SortField struct {
	Field string
	Desc  bool
}

// SystemFilter narrows a System listing. Zero values mean "no restriction".
type SystemFilter struct {
	Location   string
	CreatedMin time.Time
	CreatedMax time.Time
	UpdatedMin time.Time
	UpdatedMax time.Time
	Ordering   []SortField
}

// MeasurementFilter narrows a Measurement listing. Nil bounds are open.
type MeasurementFilter struct {
	SystemID       int64
	StartDate      time.Time
	EndDate        time.Time
	PHMin          *Fixed
	PHMax          *Fixed
	TemperatureMin *Fixed
	TemperatureMax *Fixed
	TDSMin         *Fixed
	TDSMax         *Fixed
	Ordering       []SortField
	Limit          int
}
