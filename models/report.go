package models

import (
	"time"
)

// Report represents one splicing work entry submitted from the dashboard form.
type Report struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"                     json:"id"`
	Zone           string    `gorm:"column:zone;not null"                         json:"zone"`
	ChainNo        string    `gorm:"column:chain_no;not null"                     json:"chainNo"`
	SplicingTeam   string    `gorm:"column:splicing_team;not null"                json:"splicingTeam"`
	Name           string    `gorm:"column:name;not null"                         json:"name"`
	JobID          string    `gorm:"column:job_id;not null"                       json:"jobId"`
	BjOrSite       string    `gorm:"column:bj_or_site;not null"                   json:"bjOrSite"`
	Routing        string    `gorm:"column:routing;not null"                      json:"routing"`
	Date           string    `gorm:"column:date;not null;index"                   json:"date"`
	GpsCoordinates *string   `gorm:"column:gps_coordinates"                       json:"gpsCoordinates"`
	TimeBegin      string    `gorm:"column:time_begin;not null"                   json:"timeBegin"`
	TimeFinished   *string   `gorm:"column:time_finished"                         json:"timeFinished"`
	Status         bool      `gorm:"column:status;not null"                       json:"status"`
	Effect         string    `gorm:"column:effect;not null"                       json:"effect"`
	ProblemDetails *string   `gorm:"column:problem_details"                       json:"problemDetails"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;<-:create"   json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"             json:"updatedAt"`
}

func (Report) TableName() string {
	return "reports"
}

// StatusLabel is the label shown in tables and exports.
func (r Report) StatusLabel() string {
	if r.Status {
		return "Complete"
	}
	return "Not Complete"
}

// FinishedAt returns the finish time only while the report is complete.
// A reopened report keeps its previous finish time in storage.
func (r Report) FinishedAt() string {
	if !r.Status || r.TimeFinished == nil {
		return ""
	}
	return *r.TimeFinished
}

// ClockLayout is the HH:MM layout used for timeBegin and timeFinished.
const ClockLayout = "15:04"

// DateLayout is the layout of the date field.
const DateLayout = "2006-01-02"
