// Package open launches episode links with the system's default handler.
package open

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/epibrowse/epibrowse/constant"
)

// ErrNoLink is returned for the "#" placeholder and other unusable links.
var ErrNoLink = errors.New("no link to open")

// Validate checks that link is an absolute http or https URL.
func Validate(link string) error {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrNoLink, link)
	}
	return nil
}

// Start opens link without waiting for the handler to exit.
func Start(link string) error {
	if err := Validate(link); err != nil {
		return err
	}

	cmd, ok := command(link)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
