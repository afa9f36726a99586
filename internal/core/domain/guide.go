package domain

// Guide catalogs are flat baseline lists with no owning day. Baseline
// entries are addressed by position; user-added entries carry a
// generated ID and IsCustom=true. Guide entries support whole-record
// add/delete only, no per-field edits.

// PintxoBar is a pintxos bar recommendation.
type PintxoBar struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Area      string `json:"area"`
	Specialty string `json:"specialty"`
	IsCustom  bool   `json:"isCustom,omitempty"`
}

// Place is a must-see place, in San Sebastián or Bilbao.
type Place struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time,omitempty"`
	MapLink     string `json:"mapLink,omitempty"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}

// Film is a film suggestion for the travel hours.
type Film struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Year        int    `json:"year,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	Streaming   string `json:"streaming,omitempty"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}

// Series is a TV series suggestion.
type Series struct {
	Title           string `json:"title"`
	Rating          string `json:"rating,omitempty"`
	Seasons         int    `json:"seasons,omitempty"`
	EpisodeDuration string `json:"episodeDuration,omitempty"`
	Description     string `json:"description,omitempty"`
	Streaming       string `json:"streaming,omitempty"`
	Recommended     string `json:"recommended,omitempty"`
}

// ReadingItem is an article or long read for the train.
type ReadingItem struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Topics      []string `json:"topics,omitempty"`
	ReadTime    string   `json:"readTime,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// GuideCatalog bundles the flat baseline catalogs of the trip guide.
type GuideCatalog struct {
	PintxoBars   []PintxoBar   `json:"pintxoBars,omitempty"`
	MustSee      []Place       `json:"mustSee,omitempty"`
	BilbaoPlaces []Place       `json:"bilbaoPlaces,omitempty"`
	Films        []Film        `json:"films,omitempty"`
	Series       []Series      `json:"series,omitempty"`
	ReadingList  []ReadingItem `json:"readingList,omitempty"`
}

// Trip is the fully-loaded immutable baseline dataset: the itinerary
// days plus the flat guide catalogs, and the instant the trip begins
// (countdown target).
type Trip struct {
	// Name is the trip display name.
	Name string `json:"name"`

	// Days is the ordered itinerary.
	Days []DayPlan `json:"days"`

	// Guide holds the flat catalogs.
	Guide GuideCatalog `json:"guide"`

	// StartsAt is the departure instant for the countdown, RFC 3339.
	StartsAt string `json:"startsAt,omitempty"`
}
