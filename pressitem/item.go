package pressitem

// Record is a single entry from a press-release listing. Missing values are
// carried as empty strings, never omitted.
type Record struct {
	Title  string `csv:"Title" json:"title"`
	Link   string `csv:"Link" json:"link"`
	Date   string `csv:"Date" json:"date"`
	Source string `csv:"Source" json:"source"`
}
