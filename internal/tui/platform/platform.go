// Package platform hands poster URLs to the desktop: the default browser or
// the system clipboard.
package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrNoClipboard = errors.New("no clipboard utility available")

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// ValidatePosterURL accepts absolute http(s) URLs only.
func ValidatePosterURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("movie has no poster URL")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", errors.New("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.New("invalid URL host")
	}
	return trimmed, nil
}

func OpenURLInBrowser(rawURL string) error {
	name, args := browserCommand(runtime.GOOS, rawURL)
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func browserCommand(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

// CopyURLToClipboard writes rawURL with whichever of pbcopy, xclip, xsel,
// wl-copy or the Windows API the clipboard package finds.
func CopyURLToClipboard(rawURL string) error {
	return copyWith(clipboard.Unsupported, writeClipboard, rawURL)
}

func copyWith(unsupported bool, write func(string) error, rawURL string) error {
	if unsupported {
		return ErrNoClipboard
	}
	if err := write(rawURL); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
