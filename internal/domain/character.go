package domain

type Character struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Modified    string       `json:"modified"`
	ResourceURI string       `json:"resourceURI"`
	URLs        []URL        `json:"urls"`
	Thumbnail   Image        `json:"thumbnail"`
	Comics      ResourceList `json:"comics"`
	Series      ResourceList `json:"series"`
	Stories     ResourceList `json:"stories"`
	Events      ResourceList `json:"events"`
}

// Characters is the data payload of the characters resource
type Characters struct {
	DataContainer
	Results []Character `json:"results"`
}
