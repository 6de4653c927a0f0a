package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eduncan911/podcast"
)

const (
	rumbleHost = "rumble.com"
	dateLayout = "2006-01-02T15:04:05-07:00"

	httpClientTimeout      = 10 * time.Second
	httpServerReadTimeout  = 5 * time.Second
	httpServerWriteTimeout = 300 * time.Second
)

var errBadLink = errors.New("bad link")

type Request struct {
	Channel     string
	ChannelPath string
}

// parseLink extracts the channel from a rumble.com link such as
// "rumble.com/c/Name/videos" or "https://rumble.com/Name".
func parseLink(link string) (Request, error) {
	var req Request

	u, err := url.Parse(link)
	if err != nil {
		return req, fmt.Errorf("%w: could not parse link", errBadLink)
	}

	if u.Scheme == "" {
		u, err = url.Parse("https://" + link)
		if err != nil {
			return req, fmt.Errorf("%w: could not parse link", errBadLink)
		}
	}

	slog.Debug("url", "url", fmt.Sprintf("%#v", u))

	if u.Host != rumbleHost {
		return req, fmt.Errorf("%w: link must use host %s", errBadLink, rumbleHost)
	}

	// Trim anything from link after channel name
	bits := strings.Split(u.Path, "/")
	switch {
	case len(bits) == 2:
		req.Channel = bits[1]
		req.ChannelPath = "/" + bits[1]
	case len(bits) > 2:
		if bits[1] == "c" {
			req.Channel = bits[2]
			req.ChannelPath = strings.Join(bits[:3], "/")
		} else {
			req.Channel = bits[1]
			req.ChannelPath = "/" + bits[1]
		}
	}

	if req.Channel == "" {
		return req, fmt.Errorf("%w: channel name could not be found in link", errBadLink)
	}

	return req, nil
}

// GetFeed fetches the channel page from baseURL (normally https://rumble.com)
// and turns it into a podcast feed.
func GetFeed(ctx context.Context, client *http.Client, baseURL string, cfg Config, r Request) (*podcast.Podcast, error) {

	ctx2, cancel2 := context.WithTimeout(ctx, cfg.ClientTimeout)
	defer cancel2()

	channelLink := baseURL + r.ChannelPath
	req, err := http.NewRequestWithContext(ctx2, http.MethodGet, channelLink, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned unexpected status %q", rumbleHost, res.Status)
	}

	ch, err := parseChannel(res.Body, cfg.MaxItems, cfg.MaxTextLength)
	if err != nil {
		return nil, fmt.Errorf("error parsing channel page: %w", err)
	}

	if ch.Title == "" {
		ch.Title = r.Channel
	}

	now := time.Now()

	p := podcast.New(
		ch.Title,
		channelLink,
		"Videos from "+ch.Title+" on "+rumbleHost,
		&now, // pubDate
		&now, // lastBuildDate
	)

	if ch.Thumbnail != "" {
		p.AddImage(ch.Thumbnail)
	}

	for _, i := range ch.Items {
		item, err := feedItem(i)
		if err != nil {
			return nil, err
		}
		if _, err := p.AddItem(item); err != nil {
			return nil, fmt.Errorf("error adding item: %w", err)
		}
	}

	slog.Info("feed", "url", channelLink, "item count", len(p.Items))

	return &p, nil
}

func feedItem(i Item) (podcast.Item, error) {
	publishTime := time.Time{}
	if i.PublishTime != "" {
		var err error
		publishTime, err = time.Parse(dateLayout, i.PublishTime)
		if err != nil {
			return podcast.Item{}, fmt.Errorf("error parsing publish time of %q: %w", i.Link, err)
		}
	}

	item := podcast.Item{
		Title:       i.Title,
		Link:        i.Link,
		Description: i.Description,
		PubDate:     &publishTime,
	}

	if i.Duration != "" {
		seconds, err := BadgeSeconds(i.Duration)
		if err != nil {
			// Error is non-fatal, just log
			slog.Warn("error parsing duration", "link", i.Link, "badge", i.Duration, "err", err)
		} else {
			item.AddDuration(int64(seconds))
		}
	}

	if i.ThumbnailSrc != "" {
		item.AddImage(i.ThumbnailSrc)
	}

	return item, nil
}
