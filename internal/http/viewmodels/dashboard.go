package viewmodels

type DashboardViewData struct {
	Layout           LayoutData
	BenchmarkKey     string
	BenchmarkName    string
	BenchmarkVersion string
	Summary          SummaryViewData
	Chart            ChartViewData
	Filters          DashboardFiltersData
	Results          DashboardResultsData
}

type SummaryViewData struct {
	TotalCount        int
	CompliantCount    int
	NonCompliantCount int
	ErroredCount      int
	UnknownCount      int
	ViolationCount    int
	CompliancePercent int
}

type ChartViewData struct {
	Kind     string
	Total    int
	Segments []ChartSegmentItem
}

type ChartSegmentItem struct {
	Label   string
	Count   int
	Percent float64
	Color   string
}

type DashboardFiltersData struct {
	Status           string
	StatusOptions    []SelectOption
	Service          string
	ServiceOptions   []SelectOption
	Query            string
	Benchmark        string
	BenchmarkOptions []SelectOption
	Chart            string
}

type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

type DashboardResultsData struct {
	Rows          []ResultRowItem
	TotalCount    int
	FilteredCount int
	LoadFailed    bool
}

type ResultRowItem struct {
	ID             string
	Title          string
	Service        string
	Status         string
	StatusLabel    string
	ViolationCount int
	Violations     []string
	Error          string
}
