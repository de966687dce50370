package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"marvel/catalog/internal/domain"

	"github.com/fatih/color"
)

var heading = color.New(color.FgRed, color.Bold)

const descriptionWidth = 60

func renderComics(w io.Writer, comics *domain.Comics) error {
	heading.Fprintf(w, "Comics page %d (%d-%d of %d)\n",
		comics.Page(), comics.Offset+1, comics.Offset+comics.Count, comics.Total)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPAGES\tDESCRIPTION")
	for _, comic := range comics.Results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
			comic.ID, comic.Title, comic.PageCount, truncate(domain.PlainText(comic.Description), descriptionWidth))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if comics.HasNextPage() {
		fmt.Fprintf(w, "Next page: --page %d\n", comics.Page()+1)
	}
	return nil
}

func renderCharacters(w io.Writer, characters *domain.Characters) error {
	heading.Fprintf(w, "Characters page %d (%d found)\n", characters.Page(), characters.Total)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOMICS\tTHUMBNAIL")
	for _, character := range characters.Results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
			character.ID, character.Name, character.Comics.Available, character.Thumbnail.URL(domain.ImageStandardMedium))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if characters.HasNextPage() {
		fmt.Fprintf(w, "Next page: --page %d\n", characters.Page()+1)
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
