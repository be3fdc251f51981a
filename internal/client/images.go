package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ImageURL resolves a single image id to its serving URL.
func (c *Client) ImageURL(ctx context.Context, imageID string) (string, error) {
	route := fmt.Sprintf("api/image/%s", url.PathEscape(imageID))
	req, err := c.newRequest(ctx, http.MethodGet, route, nil, authNone, "")
	if err != nil {
		c.logFailure("image_url", err)
		return "", err
	}

	var imageURL string
	if err := c.do(req, &imageURL); err != nil {
		c.logFailure("image_url", err)
		return "", err
	}

	return imageURL, nil
}

// ImageURLs resolves a batch of image ids in one round trip. The backend
// returns the URLs in input order.
func (c *Client) ImageURLs(ctx context.Context, imageIDs []string) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "api/image/urls", imageIDs, authNone, "")
	if err != nil {
		c.logFailure("image_urls", err)
		return nil, err
	}

	var urls []string
	if err := c.do(req, &urls); err != nil {
		c.logFailure("image_urls", err)
		return nil, err
	}

	return urls, nil
}
