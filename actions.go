package blogpilot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/eringen/blogpilot/activity"
	"github.com/eringen/blogpilot/backend"
	"github.com/eringen/blogpilot/views"
	"github.com/labstack/echo/v4"
)

// respond completes an action request. htmx callers get the primary target
// component, any out-of-band extras, and the toast appended to the stack;
// a plain form submit gets the toast as a flash and a redirect home.
func (a *App) respond(c echo.Context, t views.ToastMessage, primary templ.Component, extras ...templ.Component) error {
	if !isHTMX(c) {
		flashToast(c, t)
		return c.Redirect(http.StatusSeeOther, "/")
	}
	cmps := make([]templ.Component, 0, len(extras)+2)
	cmps = append(cmps, primary)
	cmps = append(cmps, extras...)
	cmps = append(cmps, views.ToastOOB(t))
	return Render(c, cmps...)
}

// record journals an action outcome. Journal failures are logged, never
// surfaced to the user.
func (a *App) record(c echo.Context, action, target string, ok bool, msg string) {
	if err := a.Activity.Record(activity.Entry{
		Action:  action,
		Target:  target,
		OK:      ok,
		Message: msg,
	}); err != nil {
		c.Logger().Warnf("record activity: %v", err)
	}
}

// currentPostList renders the posts region from the current snapshots
// without touching the backend. Used when an action fails before or at the
// backend call and the state must stay as it was.
func (a *App) currentPostList() templ.Component {
	websites, posts := a.State.Snapshot()
	return views.PostList(posts, websites)
}

// handleGenerate triggers AI article generation. Validation runs before any
// backend call: at least one of category and custom topic is required. The
// trigger button stays disabled and the spinner visible until this handler
// responds, whatever the outcome.
func (a *App) handleGenerate(c echo.Context) error {
	ctx := c.Request().Context()

	category := strings.TrimSpace(c.FormValue("category"))
	focusKeyword := strings.TrimSpace(c.FormValue("focus_keyword"))
	customTopic := strings.TrimSpace(c.FormValue("custom_topic"))

	if category == "" && customTopic == "" {
		return a.respond(c, errToast("Enter a category or a custom topic first."), a.currentPostList())
	}

	if !a.generateGate.TryAcquire() {
		return a.respond(c, infoToast("A generation is already running."), a.currentPostList())
	}
	defer a.generateGate.Release()

	req := backend.GenerateRequest{Category: category}
	if customTopic != "" {
		req.CustomTopic = &customTopic
		if req.Category == "" {
			req.Category = customTopic
		}
	}
	if focusKeyword != "" {
		req.FocusKeyword = focusKeyword
	}

	res, err := a.Backend.Generate(ctx, req)
	if err != nil {
		c.Logger().Errorf("generate: %v", err)
		a.record(c, activity.ActionGenerate, req.Category, false, "Generation failed for "+req.Category)
		return a.respond(c, errToast("Generation failed. Check the backend logs."),
			a.currentPostList(), views.ActivityListOOB(a.recentActivity(c)))
	}

	msg := "Post generated! SEO score " + strconv.FormatFloat(res.SEOScore, 'f', -1, 64)
	if res.FocusKeyphrase != "" {
		msg += fmt.Sprintf(", keyphrase %q", res.FocusKeyphrase)
	}
	a.record(c, activity.ActionGenerate, req.Category, true, msg)

	extras := []templ.Component{views.GenerateForm(true), views.ActivityListOOB(a.recentActivity(c))}
	if err := a.State.RefreshPosts(ctx); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		extras = append(extras, views.ToastOOB(errToast("Could not reload posts from the backend.")))
	}
	websites, posts := a.State.Snapshot()
	return a.respond(c, successToast(msg), views.PostList(posts, websites), extras...)
}

// handlePublish pushes a post to the website chosen in its per-post select.
// Precondition order matches the dashboard UI: the select must be present,
// then a website must actually be chosen; the confirmation prompt naming the
// target happens in the browser before the request is ever sent.
func (a *App) handlePublish(c echo.Context) error {
	ctx := c.Request().Context()

	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	form := c.Request().Form

	postID, err := strconv.ParseInt(form.Get("post_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	if !form.Has("website_id") {
		return a.respond(c, errToast("Website selector missing. Reload the dashboard."), a.currentPostList())
	}
	websiteID, err := strconv.ParseInt(form.Get("website_id"), 10, 64)
	if err != nil || websiteID == 0 {
		a.selectErrorTrigger(c, postID)
		return a.respond(c, errToast("Select a website to publish to."), a.currentPostList())
	}

	websiteName := a.websiteName(websiteID)

	if err := a.Backend.Publish(ctx, postID, websiteID); err != nil {
		c.Logger().Errorf("publish post %d to website %d: %v", postID, websiteID, err)
		a.record(c, activity.ActionPublish, websiteName, false, "Publishing to "+websiteName+" failed")
		return a.respond(c, errToast(fmt.Sprintf("Publishing to %s failed. Check its CMS credentials.", websiteName)),
			a.currentPostList(), views.ActivityListOOB(a.recentActivity(c)))
	}

	msg := fmt.Sprintf("Published to %s!", websiteName)
	a.record(c, activity.ActionPublish, websiteName, true, msg)

	extras := []templ.Component{views.ActivityListOOB(a.recentActivity(c))}
	if err := a.State.RefreshPosts(ctx); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		extras = append(extras, views.ToastOOB(errToast("Could not reload posts from the backend.")))
	}
	websites, posts := a.State.Snapshot()
	return a.respond(c, successToast(msg), views.PostList(posts, websites), extras...)
}

// handleCreateWebsite registers a new publishing target from the modal form.
// An empty API key is sent as absent, not as an empty string.
func (a *App) handleCreateWebsite(c echo.Context) error {
	ctx := c.Request().Context()

	req := backend.CreateWebsiteRequest{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Domain:  strings.TrimSpace(c.FormValue("domain")),
		CMSType: strings.TrimSpace(c.FormValue("cms_type")),
		APIURL:  strings.TrimSpace(c.FormValue("api_url")),
	}
	if key := c.FormValue("api_key"); key != "" {
		req.APIKey = &key
	}

	if err := a.Backend.CreateWebsite(ctx, req); err != nil {
		c.Logger().Errorf("create website %q: %v", req.Name, err)
		a.record(c, activity.ActionCreateWebsite, req.Name, false, "Adding website "+req.Name+" failed")
		return a.respond(c, errToast("Adding the website failed."),
			views.WebsiteList(a.State.Websites()), views.ActivityListOOB(a.recentActivity(c)))
	}

	msg := fmt.Sprintf("Website %q added!", req.Name)
	a.record(c, activity.ActionCreateWebsite, req.Name, true, msg)

	// A fresh modal closes the dialog and resets its fields; the posts
	// region re-renders too because its publish dropdowns list websites.
	extras := []templ.Component{views.WebsiteModal(true), views.ActivityListOOB(a.recentActivity(c))}
	extras = a.refreshBoth(c, extras)
	websites, posts := a.State.Snapshot()
	extras = append(extras, views.PostListOOB(posts, websites))
	return a.respond(c, successToast(msg), views.WebsiteList(websites), extras...)
}

// handleDeleteWebsite removes a publishing target. On failure nothing is
// reloaded; the snapshot stays as it was.
func (a *App) handleDeleteWebsite(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid website id")
	}
	name := a.websiteName(id)

	if err := a.Backend.DeleteWebsite(ctx, id); err != nil {
		c.Logger().Errorf("delete website %d: %v", id, err)
		a.record(c, activity.ActionDeleteWebsite, name, false, "Deleting website "+name+" failed")
		return a.respond(c, errToast("Deleting the website failed."),
			views.WebsiteList(a.State.Websites()), views.ActivityListOOB(a.recentActivity(c)))
	}

	msg := fmt.Sprintf("Website %s deleted.", name)
	a.record(c, activity.ActionDeleteWebsite, name, true, msg)

	extras := []templ.Component{views.ActivityListOOB(a.recentActivity(c))}
	extras = a.refreshBoth(c, extras)
	websites, posts := a.State.Snapshot()
	extras = append(extras, views.PostListOOB(posts, websites))
	return a.respond(c, successToast(msg), views.WebsiteList(websites), extras...)
}

// handleDeletePost removes a post. Only the post snapshot reloads.
func (a *App) handleDeletePost(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	title := a.postTitle(id)

	if err := a.Backend.DeletePost(ctx, id); err != nil {
		c.Logger().Errorf("delete post %d: %v", id, err)
		a.record(c, activity.ActionDeletePost, title, false, "Deleting post failed")
		return a.respond(c, errToast("Deleting the post failed."),
			a.currentPostList(), views.ActivityListOOB(a.recentActivity(c)))
	}

	a.record(c, activity.ActionDeletePost, title, true, "Post deleted.")

	extras := []templ.Component{views.ActivityListOOB(a.recentActivity(c))}
	if err := a.State.RefreshPosts(ctx); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		extras = append(extras, views.ToastOOB(errToast("Could not reload posts from the backend.")))
	}
	websites, posts := a.State.Snapshot()
	return a.respond(c, successToast("Post deleted."), views.PostList(posts, websites), extras...)
}

// refreshBoth reloads websites then posts, appending an error toast for
// whichever fails. Used by website mutations, which invalidate both regions.
func (a *App) refreshBoth(c echo.Context, extras []templ.Component) []templ.Component {
	ctx := c.Request().Context()
	if err := a.State.RefreshWebsites(ctx); err != nil {
		c.Logger().Errorf("load websites: %v", err)
		extras = append(extras, views.ToastOOB(errToast("Could not reload websites from the backend.")))
	}
	if err := a.State.RefreshPosts(ctx); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		extras = append(extras, views.ToastOOB(errToast("Could not reload posts from the backend.")))
	}
	return extras
}

// selectErrorTrigger asks dashboard.js (via the HX-Trigger response header)
// to flash the error highlight on a post's website select for two seconds.
func (a *App) selectErrorTrigger(c echo.Context, postID int64) {
	payload, err := json.Marshal(map[string]any{
		"publish-select-error": map[string]string{"target": "#" + views.WebsiteSelectID(postID)},
	})
	if err != nil {
		return
	}
	c.Response().Header().Set("HX-Trigger", string(payload))
}

// websiteName resolves a website id against the current snapshot for
// user-facing messages.
func (a *App) websiteName(id int64) string {
	for _, w := range a.State.Websites() {
		if w.ID == id {
			return w.Name
		}
	}
	return "the website"
}

func (a *App) postTitle(id int64) string {
	for _, p := range a.State.Posts() {
		if p.ID == id {
			return p.Title
		}
	}
	return "the post"
}
