package markup

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a link target on behalf of an activated render group.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, url string) error

// Open calls f(ctx, url).
func (f OpenerFunc) Open(ctx context.Context, url string) error {
	return f(ctx, url)
}

// SystemOpener hands URLs to the desktop environment (open on macOS,
// rundll32 on Windows, xdg-open elsewhere).
type SystemOpener struct {
	// Command overrides the launcher binary. The URL is passed as the last
	// argument.
	Command string
}

// Open launches the system handler for url and waits for it to exit.
func (o SystemOpener) Open(ctx context.Context, url string) error {
	name, args := o.command()
	args = append(args, url)
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("open %s: %w: %s", url, err, out)
	}
	return nil
}

func (o SystemOpener) command() (string, []string) {
	if o.Command != "" {
		return o.Command, nil
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
