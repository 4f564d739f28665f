// Package router delivers dashboard routes selected in the palette: opening
// them in a browser, copying them to the clipboard, or printing them once the
// palette exits.
package router

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Router receives the absolute URL of a selected route.
type Router interface {
	Navigate(target string) error
}

// Copier places text on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Mode names a Router implementation.
type Mode string

const (
	ModeOpen  Mode = "open"
	ModeCopy  Mode = "copy"
	ModePrint Mode = "print"
)

// ParseMode validates a route mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeOpen, ModeCopy, ModePrint:
		return m, nil
	case "":
		return ModeOpen, nil
	default:
		return "", fmt.Errorf("unknown route mode %q (want open, copy or print)", s)
	}
}

// New returns the router for mode.
func New(mode Mode) Router {
	switch mode {
	case ModeCopy:
		return Clipboard{Copier: SystemClipboard{}}
	case ModePrint:
		return &Printer{}
	default:
		return Opener{}
	}
}

// Resolve joins route onto base. Absolute routes pass through untouched and an
// empty base leaves the route as given.
func Resolve(base, route string) (string, error) {
	route = strings.TrimSpace(route)
	if route == "" {
		return "", fmt.Errorf("empty route")
	}
	ref, err := url.Parse(route)
	if err != nil {
		return "", fmt.Errorf("parse route %q: %w", route, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return route, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse dashboard url %q: %w", base, err)
	}
	// Keep any path prefix on the base, e.g. https://host/dashboard.
	if strings.HasPrefix(ref.Path, "/") && baseURL.Path != "" && baseURL.Path != "/" {
		ref.Path = strings.TrimSuffix(baseURL.Path, "/") + ref.Path
	}
	return baseURL.ResolveReference(ref).String(), nil
}

// Opener launches the platform URL handler.
type Opener struct {
	// Start runs the handler; nil uses exec.Command(...).Start.
	Start func(name string, args ...string) error
}

func (o Opener) Navigate(target string) error {
	name, args := openCommand(runtime.GOOS, target)
	start := o.Start
	if start == nil {
		start = func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		}
	}
	if err := start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Clipboard copies the URL instead of opening it.
type Clipboard struct {
	Copier Copier
}

func (c Clipboard) Navigate(target string) error {
	copier := c.Copier
	if copier == nil {
		copier = SystemClipboard{}
	}
	if err := copier.Copy(target); err != nil {
		return fmt.Errorf("copy %s: %w", target, err)
	}
	return nil
}

// SystemClipboard writes through github.com/atotto/clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Printer records the URLs it receives so the caller can print them after the
// terminal is restored.
type Printer struct {
	mu   sync.Mutex
	urls []string
}

func (p *Printer) Navigate(target string) error {
	p.mu.Lock()
	p.urls = append(p.urls, target)
	p.mu.Unlock()
	return nil
}

// URLs returns the recorded URLs in order.
func (p *Printer) URLs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.urls...)
}

// Last returns the most recent URL.
func (p *Printer) Last() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.urls) == 0 {
		return "", false
	}
	return p.urls[len(p.urls)-1], true
}
