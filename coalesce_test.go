package markup

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type recordingOpener struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (o *recordingOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return o.err
}

func (o *recordingOpener) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.urls...)
}

func TestCoalesceIsolatesLinks(t *testing.T) {
	groups := Coalesce(Apply("see [site](http://example.com) now", []Rule{RuleBold, RuleLink}))
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Interactive() || groups[0].Display().String() != "see " {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	link, ok := groups[1].Payload.(LinkPayload)
	if !ok {
		t.Fatalf("expected link payload, got %T", groups[1].Payload)
	}
	if link.URL != "http://example.com" || link.Label.String() != "site" {
		t.Fatalf("unexpected link %+v", link)
	}
	if runs := link.Label.Runs(); len(runs) != 1 || runs[0].Effects != EffectLink {
		t.Fatalf("label runs = %+v", runs)
	}
	if groups[2].Interactive() || groups[2].Display().String() != " now" {
		t.Fatalf("unexpected last group %+v", groups[2])
	}
}

func TestCoalesceKeepsAdjacentLinksSeparate(t *testing.T) {
	groups := Parse("[a](http://alpha.com)[b](http://beta.org) tail", DefaultRules())
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if !groups[0].Interactive() || !groups[1].Interactive() || groups[2].Interactive() {
		t.Fatalf("unexpected group kinds")
	}
	urls := []string{groups[0].Payload.(LinkPayload).URL, groups[1].Payload.(LinkPayload).URL}
	if urls[0] != "http://alpha.com" || urls[1] != "http://beta.org" {
		t.Fatalf("unexpected urls %v", urls)
	}
}

func TestCoalesceNeverEmitsConsecutivePlainGroups(t *testing.T) {
	inputs := []string{
		"# Title\nsome **bold** and _it_ text",
		"**a** _b_ __c__ <https://golang.org/doc> **d** [e](http://example.org) f",
		"plain",
		"[only](http://only.com)",
	}
	for _, src := range inputs {
		groups := Parse(src, ExtendedRules())
		assertNoConsecutivePlain(t, groups)
		ids := make(map[string]struct{}, len(groups))
		for _, g := range groups {
			if g.ID == "" {
				t.Fatalf("group without id in %q", src)
			}
			if _, dup := ids[g.ID]; dup {
				t.Fatalf("duplicate group id %q", g.ID)
			}
			ids[g.ID] = struct{}{}
		}
	}
}

func TestCoalesceEmpty(t *testing.T) {
	if groups := Coalesce(nil); groups != nil {
		t.Fatalf("expected nil, got %+v", groups)
	}
}

func TestHyperlinkLabel(t *testing.T) {
	groups := Parse("<https://golang.org/doc>", DefaultRules())
	if len(groups) != 1 || !groups[0].Interactive() {
		t.Fatalf("unexpected groups %+v", groups)
	}
	link := groups[0].Payload.(LinkPayload)
	if link.Label.String() != "https://golang.org/doc" || link.URL != "https://golang.org/doc" {
		t.Fatalf("unexpected link %+v", link)
	}
}

func TestActivateOpensLinkURL(t *testing.T) {
	groups := Parse("see [site](http://example.com) now", DefaultRules())
	opener := &recordingOpener{}
	for _, g := range groups {
		g.Activate(context.Background(), opener)
	}
	if got := opener.opened(); len(got) != 1 || got[0] != "http://example.com" {
		t.Fatalf("opened %v", got)
	}
}

func TestActivateNoops(t *testing.T) {
	opener := &recordingOpener{}
	plain := Parse("just text", DefaultRules())[0]
	plain.Activate(context.Background(), opener)

	noURL := Parse("[label](nothing)", DefaultRules())[0]
	if !noURL.Interactive() || noURL.Payload.(LinkPayload).URL != "" {
		t.Fatalf("expected a link without url, got %+v", noURL)
	}
	noURL.Activate(context.Background(), opener)

	if got := opener.opened(); len(got) != 0 {
		t.Fatalf("opener called for %v", got)
	}

	link := Parse("[x](http://example.com)", DefaultRules())[0]
	link.Activate(context.Background(), nil)
	failing := &recordingOpener{err: errors.New("no browser")}
	link.Activate(context.Background(), failing)
	if got := failing.opened(); len(got) != 1 {
		t.Fatalf("expected one attempt, got %v", got)
	}
}

func TestActivateWithOpenerFunc(t *testing.T) {
	var got string
	link := Parse("[x](https://golang.org)", DefaultRules())[0]
	link.Activate(context.Background(), OpenerFunc(func(_ context.Context, url string) error {
		got = url
		return nil
	}))
	if got != "https://golang.org" {
		t.Fatalf("opened %q", got)
	}
}
