package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/markup"
	"pkt.systems/pslog"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/markup")
}

type options struct {
	themeName   string
	width       int
	osc8        string
	softWrap    bool
	listThemes  bool
	listRules   bool
	rulesPath   string
	extended    bool
	outPath     string
	boring      bool
	frontMatter bool
	links       bool
	open        int
	showVersion bool
}

func main() {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := pslog.Ctx(ctx)
	var opts options
	flags := pflag.NewFlagSet("markup", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the output width")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.listRules, "list-rules", false, "Print the active rule catalog as YAML")
	flags.StringVarP(&opts.rulesPath, "rules", "r", "", "YAML rule catalog replacing the built-in rules")
	flags.BoolVarP(&opts.extended, "extended", "x", false, "Add inline code and strikethrough to the built-in rules")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&opts.frontMatter, "front-matter", false, "Keep a leading front matter block")
	flags.BoolVarP(&opts.links, "links", "l", false, "List links instead of rendering")
	flags.IntVar(&opts.open, "open", 0, "Open the N-th link with the system handler instead of rendering")
	flags.BoolVarP(&opts.showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: markup [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	rules, err := resolveRules(opts.rulesPath, opts.extended)
	if err != nil {
		log.Error("load rules", "err", err)
		return 1
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			log.Warn("rule will never match", "rule", rule.ID, "err", err)
		}
	}
	if opts.listRules {
		data, err := markup.MarshalCatalog(rules)
		if err != nil {
			log.Error("list rules", "err", err)
			return 1
		}
		_, _ = stdout.Write(data)
		return 0
	}

	theme, ok := markup.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	if opts.boring {
		theme = boringTheme()
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}
	renderOpts := []markup.RenderOption{
		markup.WithOSC8(osc8),
		markup.WithSoftWrap(opts.softWrap),
		markup.WithFrontMatter(opts.frontMatter),
	}

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		log.Error("open input", "err", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	text, err := markup.ReadDocument(reader, renderOpts...)
	if err != nil {
		log.Error("read input", "err", err)
		return 1
	}
	groups := markup.Parse(text, rules)
	log.Debug("parsed document", "bytes", len(text), "groups", len(groups), "rules", len(rules))

	if opts.open > 0 {
		links := markup.Links(groups)
		if opts.open > len(links) {
			log.Error("open link", "n", opts.open, "links", len(links), "err", "no such link")
			return 1
		}
		links[opts.open-1].Activate(ctx, markup.SystemOpener{})
		return 0
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		log.Error("open output", "err", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	width := resolveWidth(opts.width, writer)

	if opts.links {
		for _, line := range markup.DescribeLinks(groups, width) {
			fmt.Fprintln(writer, line)
		}
		return 0
	}

	out := markup.NewANSIRenderer(writer, width, theme, renderOpts...)
	if err := out.WriteGroups(groups); err != nil {
		log.Error("render", "err", err)
		return 1
	}
	if err := out.Flush(); err != nil {
		log.Error("render", "err", err)
		return 1
	}
	return 0
}

func resolveRules(path string, extended bool) ([]markup.Rule, error) {
	if path != "" {
		return markup.LoadCatalogFile(normalizePath(path))
	}
	if extended {
		return markup.ExtendedRules(), nil
	}
	return markup.DefaultRules(), nil
}

func printThemes(w io.Writer) {
	for _, name := range markup.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return markup.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() markup.Theme {
	return markup.NewTheme("boring", markup.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	if dir := filepath.Dir(clean); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
