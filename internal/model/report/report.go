package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PlaceholderValue fills any schema field the NLU service did not extract.
// Columns are never left empty so the sheet layout stays positionally stable.
const PlaceholderValue = "Not provided"

// TimestampLayout is the submission-time format written to the sheet and
// echoed in confirmation text.
const TimestampLayout = "2006-01-02 15:04:05"

// Status reflects the outcome of the single persistence attempt.
type Status string

const (
	StatusSubmitted     Status = "Submitted"
	StatusPersistFailed Status = "PersistFailed"
)

// Field binds one sheet column to the Dialogflow parameter it is filled from.
type Field struct {
	Column   string
	ParamKey string
}

// Schema is the fixed column layout of the complaint sheet, in row order.
// The reference ID and submission timestamp occupy the two columns before
// these, and the status column follows them.
var Schema = []Field{
	{Column: "Name", ParamKey: "person-name"},
	{Column: "Email", ParamKey: "email"},
	{Column: "Phone", ParamKey: "phone-number"},
	{Column: "Crime Type", ParamKey: "crime-type"},
	{Column: "Description", ParamKey: "description"},
	{Column: "Amount Lost", ParamKey: "amount"},
	{Column: "Location", ParamKey: "location"},
	{Column: "Suspect Info", ParamKey: "suspect-info"},
	{Column: "Evidence", ParamKey: "evidence"},
}

// Complaint is one completed incident report extracted from a fulfillment
// callback. Values holds the schema fields in Schema order.
type Complaint struct {
	ID          string
	SubmittedAt time.Time
	Values      []string
	Status      Status
}

// NewComplaint normalizes raw callback parameters against the fixed schema.
// Unknown or missing parameters take the placeholder value; this never fails,
// because the upstream parameter map is data to record, not input to validate.
func NewComplaint(id string, submittedAt time.Time, params map[string]interface{}) *Complaint {
	values := make([]string, len(Schema))
	for i, field := range Schema {
		values[i] = stringify(params[field.ParamKey])
	}
	return &Complaint{
		ID:          id,
		SubmittedAt: submittedAt,
		Values:      values,
		Status:      StatusSubmitted,
	}
}

// Row lays the complaint out in sheet column order: reference ID first,
// then the submission timestamp, the schema fields, and the status.
func (c *Complaint) Row() []interface{} {
	row := make([]interface{}, 0, len(c.Values)+3)
	row = append(row, c.ID, c.SubmittedAt.Format(TimestampLayout))
	for _, v := range c.Values {
		row = append(row, v)
	}
	row = append(row, string(StatusSubmitted))
	return row
}

// stringify renders one callback parameter as a sheet cell value.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return PlaceholderValue
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return s
		}
		return PlaceholderValue
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]interface{}:
		// Composite entities such as @sys.person carry a name sub-field.
		if name, ok := val["name"].(string); ok && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
		return PlaceholderValue
	default:
		return fmt.Sprint(val)
	}
}
