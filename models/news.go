package models

// NewsItem is a single collected headline. Field names are part of the
// external contract: they appear verbatim in JSON snapshots and as MongoDB
// document keys.
type NewsItem struct {
	Title   string `json:"title" bson:"title"`
	URL     string `json:"url" bson:"url"`
	Excerpt string `json:"excerpt" bson:"excerpt"`
	Date    string `json:"date" bson:"date"` // ISO-8601 when the source provides one, else ""
	// StoredAt is set by the store at persistence time; fetch results and
	// pre-storage snapshots carry no value here.
	StoredAt string `json:"stored_at,omitempty" bson:"stored_at,omitempty"`
}
