package api

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/quill-social/cli/pkg/config"
	"github.com/quill-social/cli/pkg/logger"
)

// Gif is one search result from the GIF provider, reduced to what a post
// needs: a media URL.
type Gif struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MediaURL string `json:"mediaUrl"`
}

type giphyResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Images struct {
			FixedHeight struct {
				URL string `json:"url"`
			} `json:"fixed_height"`
		} `json:"images"`
	} `json:"data"`
}

// giphyClient talks to the third-party GIF API directly; the gateway client
// is reserved for the backend, so this keeps its own resty instance.
var giphyClient = resty.New()

// SearchGifs queries the GIF provider and maps results to media URLs
func SearchGifs(query string) ([]Gif, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	logger.Debug("Searching GIFs", "query", query)

	apiKey := config.GetString("giphy.api_key")
	if apiKey == "" {
		return nil, fmt.Errorf("no GIF API key configured (set giphy.api_key)")
	}

	var response giphyResponse

	resp, err := giphyClient.
		R().
		SetQueryParams(map[string]string{
			"api_key": apiKey,
			"q":       query,
			"limit":   fmt.Sprintf("%d", config.GetInt("giphy.limit")),
			"rating":  "g",
		}).
		SetResult(&response).
		Get(config.GetString("giphy.base_url"))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("GIF search failed: %s", resp.Status())
	}

	gifs := make([]Gif, 0, len(response.Data))
	for _, g := range response.Data {
		gifs = append(gifs, Gif{
			ID:       g.ID,
			Title:    g.Title,
			MediaURL: g.Images.FixedHeight.URL,
		})
	}

	return gifs, nil
}
