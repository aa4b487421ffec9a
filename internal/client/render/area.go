package render

// Area is a named display surface, the console's stand-in for a DOM
// container. Rendering is destructive: each call fully replaces whatever the
// area held before.
type Area struct {
	title   string
	content string
}

// NewArea returns an area showing the empty-state placeholder.
func NewArea(title string) *Area {
	return &Area{title: title, content: mutedStyle.Render(NoData)}
}

// Render replaces the area's content with a table of rows (or the
// placeholder when rows is empty).
func (a *Area) Render(rows []Row) {
	a.content = Table(rows)
}

// Content returns the area's current text, prefixed with its title.
func (a *Area) Content() string {
	return titleStyle.Render(a.title) + "\n" + a.content
}

// Body returns the area's current text without the title line.
func (a *Area) Body() string { return a.content }
