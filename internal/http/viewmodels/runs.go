package viewmodels

type RunsViewData struct {
	Layout LayoutData
	Runs   []RunRowItem
}

type RunRowItem struct {
	ID         string
	ReportedAt string
	User       string
	Benchmark  string
	Outcome    string
}
