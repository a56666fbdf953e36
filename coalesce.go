package markup

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"pkt.systems/pslog"
)

// Payload is the display content of a render group. It is either a
// PlainPayload or a LinkPayload.
type Payload interface {
	payload()
}

// PlainPayload is merged, non-interactive styled text.
type PlainPayload struct {
	Text Text
}

// LinkPayload is an interactive unit: a label that opens URL when activated.
type LinkPayload struct {
	URL   string
	Label Text
}

func (PlainPayload) payload() {}
func (LinkPayload) payload()  {}

// RenderGroup is a display-ready unit produced by Coalesce.
type RenderGroup struct {
	ID      string
	Payload Payload
}

// Interactive reports whether the group carries a link.
func (g RenderGroup) Interactive() bool {
	_, ok := g.Payload.(LinkPayload)
	return ok
}

// Display returns the styled text of the group, the label for links.
func (g RenderGroup) Display() Text {
	switch p := g.Payload.(type) {
	case PlainPayload:
		return p.Text
	case LinkPayload:
		return p.Label
	default:
		return Text{}
	}
}

// Activate opens the group's link through opener. Plain groups, empty or
// malformed URLs and opener failures are no-ops.
func (g RenderGroup) Activate(ctx context.Context, opener Opener) {
	link, ok := g.Payload.(LinkPayload)
	if !ok || opener == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := pslog.Ctx(ctx).With("group", g.ID)
	raw := strings.TrimSpace(link.URL)
	if raw == "" {
		log.Debug("link activation skipped", "reason", "empty url")
		return
	}
	if _, err := url.Parse(raw); err != nil {
		log.Debug("link activation skipped", "url", raw, "err", err)
		return
	}
	if err := opener.Open(ctx, raw); err != nil {
		log.Debug("link activation failed", "url", raw, "err", err)
	}
}

// Coalesce folds spans into render groups. Adjacent plain spans merge into a
// single group; every interactive span becomes its own group. No two
// consecutive groups in the result are plain.
func Coalesce(spans []Span) []RenderGroup {
	if len(spans) == 0 {
		return nil
	}
	groups := make([]RenderGroup, 0, len(spans))
	for _, span := range spans {
		if span.Interactive() {
			groups = append(groups, newGroup(LinkPayload{URL: span.URL(), Label: span.Display()}))
			continue
		}
		text := span.Display()
		if n := len(groups); n > 0 {
			if prev, ok := groups[n-1].Payload.(PlainPayload); ok {
				groups[n-1] = newGroup(PlainPayload{Text: prev.Text.Concat(text)})
				continue
			}
		}
		groups = append(groups, newGroup(PlainPayload{Text: text}))
	}
	return groups
}

func newGroup(p Payload) RenderGroup {
	return RenderGroup{ID: uuid.NewString(), Payload: p}
}
