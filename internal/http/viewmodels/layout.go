package viewmodels

type LayoutData struct {
	Title      string
	ActivePath string
}
