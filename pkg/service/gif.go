package service

import (
	"fmt"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/formatter"
	"github.com/quill-social/cli/pkg/output"
)

type GifService struct{}

// NewGifService creates a new GIF service
func NewGifService() *GifService {
	return &GifService{}
}

// Search looks up GIFs by keyword. The returned URLs can be attached to a
// post with 'quill post create --gif <url>'.
func (s *GifService) Search(query string) error {
	deps()

	gifs, err := api.SearchGifs(query)
	if err != nil {
		formatter.PrintError("GIF search failed: %v", err)
		return err
	}

	if len(gifs) == 0 {
		formatter.PrintInfo("No GIFs matched %q", query)
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", gifs)
	}

	rows := make([][]string, 0, len(gifs))
	for _, g := range gifs {
		title := g.Title
		if title == "" {
			title = g.ID
		}
		rows = append(rows, []string{title, g.MediaURL})
	}
	formatter.PrintTable([]string{"Title", "URL"}, rows)
	fmt.Println()
	formatter.PrintInfo("Attach one with: quill post create --gif <url>")
	return nil
}
