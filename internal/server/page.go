package server

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Interview Practice</title>
    <style>
      .qa-pair { border-bottom: 1px solid #ddd; padding: 0.5rem 0; }
      .qa-pair pre.evaluation { white-space: pre-wrap; margin: 0; }
    </style>
  </head>
  <body>
    <h1>Interview Practice</h1>
    <h2>Conversation History</h2>
`

const pageTail = `
  </body>
</html>`

// indexPage wraps the history view in the page shell.
func indexPage(view View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if err := view.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageTail)
		return err
	})
}
