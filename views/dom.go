package views

import "fmt"

// Element ids shared between renderers, handlers, and dashboard.js.
// Every dynamic id goes through these helpers so the addressing scheme is
// defined once instead of being rebuilt as ad-hoc strings at each call site.
const (
	WebsiteListID  = "websites-list"
	PostListID     = "posts-list"
	ToastStackID   = "toast-stack"
	GenerateFormID = "generate-form"
	WebsiteFormID  = "website-form"
	WebsiteModalID = "website-modal"
	ActivityListID = "activity-list"
	GenerateBtnID  = "generate-btn"
)

// WebsiteSelectID is the id of the publish-target select rendered for a post.
func WebsiteSelectID(postID int64) string {
	return fmt.Sprintf("website-select-%d", postID)
}

// WebsiteCardID is the id of a website card.
func WebsiteCardID(websiteID int64) string {
	return fmt.Sprintf("website-card-%d", websiteID)
}

// PostCardID is the id of a post card.
func PostCardID(postID int64) string {
	return fmt.Sprintf("post-card-%d", postID)
}
