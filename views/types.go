package views

// Website is a CMS target the backend can publish posts to.
// Field names and JSON tags follow the automation backend's payloads.
type Website struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Domain  string  `json:"domain"`
	CMSType string  `json:"cms_type"` // platform identifier, e.g. "wordpress"
	APIURL  string  `json:"api_url"`
	APIKey  *string `json:"api_key,omitempty"`
}

// Post is a generated article as reported by the backend. CreatedAt is the
// raw timestamp string the backend emits (SQLite CURRENT_TIMESTAMP format).
type Post struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	MetaDescription string  `json:"meta_description,omitempty"`
	FocusKeyphrase  string  `json:"focus_keyphrase,omitempty"`
	Category        string  `json:"category,omitempty"`
	Content         string  `json:"content"`
	ImageURL        string  `json:"image_url,omitempty"`
	SEOScore        float64 `json:"seo_score"`
	Published       bool    `json:"published"`
	PublishedURL    string  `json:"published_url,omitempty"`
	WebsiteName     string  `json:"website_name,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ToastLevel is the severity of a notification toast.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)
