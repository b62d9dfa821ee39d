package unsplash

// RandomRequest selects a random photo.
type RandomRequest struct {
	Query       string // comma separated keywords
	Orientation string // landscape, portrait or squarish
}

// Photo is the subset of the Unsplash photo object the background needs.
type Photo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Color       string `json:"color"`
	URLs        URLs   `json:"urls"`
	User        User   `json:"user"`
	Links       Links  `json:"links"`
}

type URLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
}

type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Links struct {
	HTML string `json:"html"`
}
