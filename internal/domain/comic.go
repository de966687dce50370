package domain

type Comic struct {
	ID          int             `json:"id"`
	DigitalID   int             `json:"digitalId"`
	Title       string          `json:"title"`
	IssueNumber float64         `json:"issueNumber"`
	Description string          `json:"description"`
	Modified    string          `json:"modified"`
	Format      string          `json:"format"`
	PageCount   int             `json:"pageCount"`
	ResourceURI string          `json:"resourceURI"`
	URLs        []URL           `json:"urls"`
	Thumbnail   Image           `json:"thumbnail"`
	Creators    ResourceList    `json:"creators"`
	Characters  ResourceList    `json:"characters"`
	Series      ResourceSummary `json:"series"`
}

// Comics is the data payload of the comics resource
type Comics struct {
	DataContainer
	Results []Comic `json:"results"`
}
