// Package views renders the viewer page. Components are assembled with
// templ's ComponentFunc API; the page is a read-only projection of one
// PlanSnapshot with a small script that reloads on websocket patches.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/Ko-stant/floorplan-engine/internal/protocol"
)

const pageScript = `
const proto = location.protocol === "https:" ? "wss:" : "ws:";
const sock = new WebSocket(proto + "//" + location.host + "/ws");
sock.onmessage = () => location.reload();
`

// PlanPage renders the full viewer page for one snapshot.
func PlanPage(snapshot protocol.PlanSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html><head><title>Floor Plan</title>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<style>body{font-family:monospace;margin:2rem}pre{background:#f4f4f4;padding:1rem}</style>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head><body>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>Floor plan (%d regions)</h1>", snapshot.RegionsCount); err != nil {
			return err
		}
		if err := reportBlock(snapshot).Render(ctx, w); err != nil {
			return err
		}
		if err := planBlock(snapshot).Render(ctx, w); err != nil {
			return err
		}
		if err := warningsBlock(snapshot).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<script>%s</script>", pageScript); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func reportBlock(snapshot protocol.PlanSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h2>Chair counts</h2><pre>%s</pre>", templ.EscapeString(snapshot.Report))
		return err
	})
}

func planBlock(snapshot protocol.PlanSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h2>Plan</h2><pre>"); err != nil {
			return err
		}
		for _, line := range snapshot.Plan {
			if _, err := io.WriteString(w, templ.EscapeString(line)+"\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</pre>")
		return err
	})
}

func warningsBlock(snapshot protocol.PlanSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(snapshot.Warnings) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, "<h2>Warnings</h2><ul>"); err != nil {
			return err
		}
		for _, warning := range snapshot.Warnings {
			if _, err := fmt.Fprintf(w, "<li>%s</li>", templ.EscapeString(warning)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
