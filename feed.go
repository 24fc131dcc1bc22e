package blogpilot

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/eringen/blogpilot/views"
	"github.com/labstack/echo/v4"
)

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves an RSS feed of generated articles. Published posts link
// to their live URL; drafts link to the dashboard preview.
func (a *App) handleFeed(c echo.Context) error {
	if err := a.State.RefreshPosts(c.Request().Context()); err != nil {
		c.Logger().Errorf("load posts: %v", err)
		// Fall through and serve the last snapshot.
	}
	return a.renderFeed(c, a.State.Posts())
}

func (a *App) renderFeed(c echo.Context, posts []views.Post) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := fmt.Sprintf("/posts/%d", p.ID)
		if p.Published && p.PublishedURL != "" {
			link = p.PublishedURL
		}
		pubDate := ""
		if t, ok := views.ParseCreatedAt(p.CreatedAt); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.MetaDescription,
			PubDate:     pubDate,
			GUID:        fmt.Sprintf("blogpilot-post-%d", p.ID),
		})
	}
	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        a.Config.BackendURL,
			Description: "Generated articles",
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(feed)
}
