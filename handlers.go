package blogpilot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eringen/blogpilot/backend"
	"github.com/eringen/blogpilot/views"
	"github.com/labstack/echo/v4"
)

// handleDashboard serves the full dashboard page. Both snapshots are
// reloaded first; if the backend is unreachable the page renders from the
// previous snapshots with an error toast, rather than failing outright.
func (a *App) handleDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	toasts := popFlashes(c)
	if err := a.State.RefreshWebsites(ctx); err != nil {
		c.Logger().Errorf("load websites: %v", err)
		toasts = append(toasts, errToast("Could not load websites from the backend."))
	}
	if err := a.State.RefreshPosts(ctx); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		toasts = append(toasts, errToast("Could not load posts from the backend."))
	}

	websites, posts := a.State.Snapshot()
	return Render(c, views.Dashboard(a.siteCfg, websites, posts, a.recentActivity(c), toasts, csrfToken(c)))
}

// handleWebsitesPartial reloads and re-renders the websites region.
func (a *App) handleWebsitesPartial(c echo.Context) error {
	if err := a.State.RefreshWebsites(c.Request().Context()); err != nil {
		c.Logger().Errorf("load websites: %v", err)
		return Render(c,
			views.WebsiteList(a.State.Websites()),
			views.ToastOOB(errToast("Could not load websites from the backend.")))
	}
	return Render(c, views.WebsiteList(a.State.Websites()))
}

// handlePostsPartial reloads and re-renders the posts region. The website
// snapshot is passed along untouched; the publish dropdowns render from it.
func (a *App) handlePostsPartial(c echo.Context) error {
	if err := a.State.RefreshPosts(c.Request().Context()); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		websites, posts := a.State.Snapshot()
		return Render(c,
			views.PostList(posts, websites),
			views.ToastOOB(errToast("Could not load posts from the backend.")))
	}
	websites, posts := a.State.Snapshot()
	return Render(c, views.PostList(posts, websites))
}

// handleActivityPartial re-renders the recent-activity panel.
func (a *App) handleActivityPartial(c echo.Context) error {
	return Render(c, views.ActivityList(a.recentActivity(c)))
}

// handlePostDetail serves the preview page for one post, fetched fresh from
// the backend so the preview never shows a stale snapshot.
func (a *App) handlePostDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteCfg))
	}
	post, err := a.Backend.GetPost(c.Request().Context(), id)
	if err != nil {
		var se *backend.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteCfg))
		}
		return err
	}
	return Render(c, views.PostDetail(a.siteCfg, post, csrfToken(c)))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteCfg))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteCfg))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// recentActivity loads the latest journal entries as view models. Journal
// read failures degrade to an empty panel.
func (a *App) recentActivity(c echo.Context) []views.ActivityEntry {
	entries, err := a.Activity.Recent(20)
	if err != nil {
		c.Logger().Warnf("load activity: %v", err)
		return nil
	}
	out := make([]views.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, views.ActivityEntry{
			Action:  e.Action,
			Message: e.Message,
			OK:      e.OK,
			When:    e.Timestamp.Local().Format("Jan 2 15:04"),
		})
	}
	return out
}

func errToast(msg string) views.ToastMessage {
	return views.ToastMessage{Level: views.ToastError, Message: msg}
}

func successToast(msg string) views.ToastMessage {
	return views.ToastMessage{Level: views.ToastSuccess, Message: msg}
}

func infoToast(msg string) views.ToastMessage {
	return views.ToastMessage{Level: views.ToastInfo, Message: msg}
}
