package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindNullableString
	kindBool
)

// reportField describes one client-writable field of a Report.
type reportField struct {
	JSON     string
	Column   string
	Kind     fieldKind
	Required bool // must be present on create
	NonEmpty bool // must not be blank on create
}

// reportFields is ordered the way the entry form lists them; validation
// reports the first failing field in this order.
var reportFields = []reportField{
	{JSON: "zone", Column: "zone", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "chainNo", Column: "chain_no", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "splicingTeam", Column: "splicing_team", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "name", Column: "name", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "jobId", Column: "job_id", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "bjOrSite", Column: "bj_or_site", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "routing", Column: "routing", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "date", Column: "date", Kind: kindString, Required: true, NonEmpty: true},
	{JSON: "gpsCoordinates", Column: "gps_coordinates", Kind: kindNullableString},
	{JSON: "timeBegin", Column: "time_begin", Kind: kindString},
	{JSON: "timeFinished", Column: "time_finished", Kind: kindNullableString},
	{JSON: "status", Column: "status", Kind: kindBool},
	{JSON: "effect", Column: "effect", Kind: kindString, Required: true},
	{JSON: "problemDetails", Column: "problem_details", Kind: kindNullableString},
}

func fieldByColumn(column string) (reportField, bool) {
	for _, f := range reportFields {
		if f.Column == column {
			return f, true
		}
	}
	return reportField{}, false
}

// CreateReportInput is a validated creation payload. Pointer fields are nil
// when the client did not supply them.
type CreateReportInput struct {
	Zone           string
	ChainNo        string
	SplicingTeam   string
	Name           string
	JobID          string
	BjOrSite       string
	Routing        string
	Date           string
	GpsCoordinates *string
	TimeBegin      *string
	TimeFinished   *string
	Status         *bool
	Effect         string
	ProblemDetails *string
}

// Validate checks the required string fields of an input built in code
// rather than parsed from JSON.
func (in CreateReportInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"zone", in.Zone},
		{"chainNo", in.ChainNo},
		{"splicingTeam", in.SplicingTeam},
		{"name", in.Name},
		{"jobId", in.JobID},
		{"bjOrSite", in.BjOrSite},
		{"routing", in.Routing},
		{"date", in.Date},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return newValidationError(r.field, r.field+" is required")
		}
	}
	return nil
}

// ParseCreateReportInput decodes and validates a creation payload.
// Unknown fields are ignored.
func ParseCreateReportInput(body []byte) (CreateReportInput, error) {
	var in CreateReportInput
	raw, err := decodeObject(body)
	if err != nil {
		return in, err
	}

	values := make(map[string]any, len(reportFields))
	for _, f := range reportFields {
		msg, ok := raw[f.JSON]
		if !ok {
			if f.Required {
				return in, newValidationError(f.JSON, f.JSON+" is required")
			}
			continue
		}
		v, verr := decodeField(f, msg)
		if verr != nil {
			return in, verr
		}
		if f.NonEmpty && strings.TrimSpace(v.(string)) == "" {
			return in, newValidationError(f.JSON, f.JSON+" is required")
		}
		values[f.JSON] = v
	}

	in.Zone = values["zone"].(string)
	in.ChainNo = values["chainNo"].(string)
	in.SplicingTeam = values["splicingTeam"].(string)
	in.Name = values["name"].(string)
	in.JobID = values["jobId"].(string)
	in.BjOrSite = values["bjOrSite"].(string)
	in.Routing = values["routing"].(string)
	in.Date = values["date"].(string)
	in.Effect = values["effect"].(string)
	in.GpsCoordinates = optionalString(values, "gpsCoordinates")
	in.TimeBegin = optionalString(values, "timeBegin")
	in.TimeFinished = optionalString(values, "timeFinished")
	in.ProblemDetails = optionalString(values, "problemDetails")
	if v, ok := values["status"]; ok {
		b := v.(bool)
		in.Status = &b
	}
	return in, nil
}

// ReportChanges is a sparse set of column updates. A missing key leaves the
// column untouched; a nil value clears a nullable column.
type ReportChanges map[string]any

// ParseReportChanges decodes and validates a partial update payload. Every
// field is optional and unknown fields are ignored. An empty object yields an
// empty change set.
func ParseReportChanges(body []byte) (ReportChanges, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	changes := ReportChanges{}
	for _, f := range reportFields {
		msg, ok := raw[f.JSON]
		if !ok {
			continue
		}
		v, verr := decodeField(f, msg)
		if verr != nil {
			return nil, verr
		}
		changes[f.Column] = v
	}
	return changes, nil
}

// Validate checks a change set built in code. Keys must be known columns and
// values must have the column's type.
func (c ReportChanges) Validate() error {
	for _, f := range reportFields {
		v, ok := c[f.Column]
		if !ok {
			continue
		}
		switch f.Kind {
		case kindBool:
			if _, isBool := v.(bool); !isBool {
				return newValidationError(f.JSON, f.JSON+" must be a boolean")
			}
		case kindString:
			if _, isString := v.(string); !isString {
				return newValidationError(f.JSON, f.JSON+" must be a string")
			}
		case kindNullableString:
			if v == nil {
				continue
			}
			switch v.(type) {
			case string, *string:
			default:
				return newValidationError(f.JSON, f.JSON+" must be a string")
			}
		}
	}
	for column := range c {
		if _, ok := fieldByColumn(column); !ok {
			return newValidationError(column, "unknown field "+column)
		}
	}
	return nil
}

// Apply writes the change set onto r. It assumes c has been validated.
func (c ReportChanges) Apply(r *Report) {
	for column, v := range c {
		switch column {
		case "zone":
			r.Zone = v.(string)
		case "chain_no":
			r.ChainNo = v.(string)
		case "splicing_team":
			r.SplicingTeam = v.(string)
		case "name":
			r.Name = v.(string)
		case "job_id":
			r.JobID = v.(string)
		case "bj_or_site":
			r.BjOrSite = v.(string)
		case "routing":
			r.Routing = v.(string)
		case "date":
			r.Date = v.(string)
		case "time_begin":
			r.TimeBegin = v.(string)
		case "status":
			r.Status = v.(bool)
		case "effect":
			r.Effect = v.(string)
		case "gps_coordinates":
			r.GpsCoordinates = nullableString(v)
		case "time_finished":
			r.TimeFinished = nullableString(v)
		case "problem_details":
			r.ProblemDetails = nullableString(v)
		}
	}
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, newValidationError("", "Invalid JSON body")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, newValidationError("", "Invalid JSON body")
	}
	return raw, nil
}

func decodeField(f reportField, msg json.RawMessage) (any, *ValidationError) {
	isNull := bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
	switch f.Kind {
	case kindBool:
		var b bool
		if isNull || json.Unmarshal(msg, &b) != nil {
			return nil, newValidationError(f.JSON, f.JSON+" must be a boolean")
		}
		return b, nil
	case kindNullableString:
		if isNull {
			return nil, nil
		}
	}
	var s string
	if isNull || json.Unmarshal(msg, &s) != nil {
		return nil, newValidationError(f.JSON, f.JSON+" must be a string")
	}
	return s, nil
}

func optionalString(values map[string]any, key string) *string {
	v, ok := values[key]
	if !ok || v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

func nullableString(v any) *string {
	switch s := v.(type) {
	case string:
		return &s
	case *string:
		if s == nil {
			return nil
		}
		cp := *s
		return &cp
	default:
		return nil
	}
}
