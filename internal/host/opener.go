package host

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/inspector/core"
)

var ErrNotSource = errors.New("location is not an editable source file")

// ExecOpener hands source locations to $EDITOR and links to the system browser.
// Draw passes run inside Update, so requests are queued and released by Drain.
type ExecOpener struct {
	Editor  string
	Browser string
	pending []tea.Cmd
}

func NewExecOpener() *ExecOpener {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	return &ExecOpener{Editor: editor, Browser: "xdg-open"}
}

func (o *ExecOpener) Open(loc core.SourceLocation) error {
	if loc.Binary() {
		return fmt.Errorf("open %s: %w", loc, ErrNotSource)
	}
	cmd := exec.Command(o.Editor, "+"+strconv.Itoa(loc.Line), loc.File)
	o.queue(loc.String(), cmd)
	return nil
}

func (o *ExecOpener) OpenURL(url string) error {
	if url == "" {
		return errors.New("open url: empty")
	}
	o.queue(url, exec.Command(o.Browser, url))
	return nil
}

func (o *ExecOpener) queue(what string, cmd *exec.Cmd) {
	o.pending = append(o.pending, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return openDoneMsg{What: what, Err: err}
	}))
}

// Drain returns and clears the queued open requests.
func (o *ExecOpener) Drain() []tea.Cmd {
	out := o.pending
	o.pending = nil
	return out
}
