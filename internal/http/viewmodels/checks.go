package viewmodels

type CheckDetailViewData struct {
	Layout        LayoutData
	BenchmarkKey  string
	BenchmarkName string
	Check         ResultRowItem
}
