package models

import "time"

// System is a hydroponic setup owned by a single user.
type System struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	OwnerID  int64     `json:"user"`
	Location string    `json:"location"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// SystemDetail is the single-record view of a System with its latest readings.
type SystemDetail struct {
	System
	Measurements []Measurement `json:"measurements"`
}
