package markup

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Links returns the interactive groups in order.
func Links(groups []RenderGroup) []RenderGroup {
	var out []RenderGroup
	for _, g := range groups {
		if g.Interactive() {
			out = append(out, g)
		}
	}
	return out
}

// DescribeLinks formats one numbered line per interactive group, "1. label
// -> url", fitted to width when width is positive.
func DescribeLinks(groups []RenderGroup, width int) []string {
	links := Links(groups)
	lines := make([]string, 0, len(links))
	for i, g := range links {
		link := g.Payload.(LinkPayload)
		label := strings.TrimSpace(link.Label.String())
		target := link.URL
		if target == "" {
			target = "-"
		}
		head := strconv.Itoa(i+1) + ". "
		if width <= 0 {
			lines = append(lines, head+label+" -> "+target)
			continue
		}
		room := width - ansi.PrintableRuneWidth(head) - len(" -> ")
		urlRoom := room / 2
		if w := ansi.PrintableRuneWidth(target); w < urlRoom {
			urlRoom = w
		}
		target = fitURL(target, urlRoom)
		label = truncateWithEllipsis(label, room-ansi.PrintableRuneWidth(target))
		lines = append(lines, head+label+" -> "+target)
	}
	return lines
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if _, rest, ok := strings.Cut(url, "://"); ok && ansi.PrintableRuneWidth(rest) <= limit {
		return rest
	}
	return truncateWithEllipsis(url, limit)
}
