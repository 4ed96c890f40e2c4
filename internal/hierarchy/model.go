// File path: internal/hierarchy/model.go
package hierarchy

// Trend indicates the direction an indicator value is moving.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Report is a PDF document attached to an indicator. File contents are never
// interpreted here; date and size are display strings carried from the source
// dataset.
type Report struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Size string `json:"size"`
}

// Indicator is a named KPI with its current display value and attached reports.
type Indicator struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Value       string   `json:"value"`
	Unit        string   `json:"unit"`
	Trend       Trend    `json:"trend"`
	Reports     []Report `json:"reports"`
}

type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Indicators  []Indicator `json:"indicators"`
}

type Management struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

type Superintendence struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Managements []Management `json:"managements"`
}

type Company struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	FullName         string            `json:"full_name"`
	Superintendences []Superintendence `json:"superintendences"`
}

// ReportRef is a report flattened out of the tree together with the ancestor
// chain needed for display and deep-link navigation.
type ReportRef struct {
	Report            Report   `json:"report"`
	IndicatorName     string   `json:"indicator_name"`
	Path              []string `json:"path"`
	CompanyID         string   `json:"company_id"`
	SuperintendenceID string   `json:"superintendence_id"`
	ManagementID      string   `json:"management_id"`
	ProjectID         string   `json:"project_id"`
	IndicatorID       string   `json:"indicator_id"`
}
