package domain

import "strings"

// Image is a thumbnail reference as returned by the API
type Image struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// Image variants accepted by the Marvel image service
const (
	ImagePortraitMedium  = "portrait_medium"
	ImagePortraitXLarge  = "portrait_xlarge"
	ImageStandardMedium  = "standard_medium"
	ImageLandscapeMedium = "landscape_medium"
	ImageFullSize        = ""
)

// URL builds the address of the given image variant. ImageFullSize yields the original image.
func (i Image) URL(variant string) string {
	if i.Path == "" {
		return ""
	}
	if variant == ImageFullSize {
		return i.Path + "." + i.Extension
	}
	return strings.TrimSuffix(i.Path, "/") + "/" + variant + "." + i.Extension
}

type URL struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type ResourceSummary struct {
	ResourceURI string `json:"resourceURI"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
}

// ResourceList is a partial list of related entities
type ResourceList struct {
	Available     int               `json:"available"`
	Returned      int               `json:"returned"`
	CollectionURI string            `json:"collectionURI"`
	Items         []ResourceSummary `json:"items"`
}

// DataContainer holds the paging fields shared by every collection
type DataContainer struct {
	Offset int `json:"offset"` // Items skipped
	Limit  int `json:"limit"`  // Requested page size
	Total  int `json:"total"`  // Total items matching the request
	Count  int `json:"count"`  // Items in this page
}

// HasNextPage reports whether items remain after this page
func (d DataContainer) HasNextPage() bool {
	return d.Offset+d.Count < d.Total
}

// Page returns the zero-based page index of this container
func (d DataContainer) Page() int {
	return d.Offset / PageSize
}
