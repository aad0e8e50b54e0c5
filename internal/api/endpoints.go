package api

// Endpoint is one of the fixed remote data categories.
type Endpoint struct {
	Name string // Name is the short identifier used in daily file entries and logs.
	Path string // Path is the URL path relative to the API base URL.
}

// Endpoints is the fixed set of polled endpoints, in call order.
// The order is part of the contract: entries land in the daily file in this order.
var Endpoints = []Endpoint{
	{Name: "live", Path: "match/detail_live"},
	{Name: "details", Path: "match/recent/list"},
	{Name: "odds", Path: "odds/history"},
	{Name: "team", Path: "team/additional/list"},
	{Name: "competition", Path: "competition/additional/list"},
	{Name: "country", Path: "country/list"},
}
