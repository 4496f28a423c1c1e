package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/santiagomed/politica/fs"
	"github.com/santiagomed/politica/logger"
)

// CopyFeedbackDuration is how long the "copied" indicator stays on.
const CopyFeedbackDuration = 2 * time.Second

var ErrNoResult = errors.New("no generated policy")

type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Presenter runs the side-effecting actions on a generated policy.
type Presenter struct {
	clipboard Clipboard
	fs        *fs.FileSystem
	outputDir string
	logger    logger.Logger
}

func NewPresenter(cb Clipboard, fsys *fs.FileSystem, outputDir string, l logger.Logger) *Presenter {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Presenter{
		clipboard: cb,
		fs:        fsys,
		outputDir: outputDir,
		logger:    l,
	}
}

// Copy writes the generated text to the clipboard and raises the form's copied
// flag. The returned token is passed to Form.ResetCopied after CopyFeedbackDuration.
func (p *Presenter) Copy(f *Form) (uint64, error) {
	if f.View() != ViewText {
		return 0, ErrNoResult
	}
	if err := p.clipboard.WriteAll(f.Result()); err != nil {
		p.logger.Warn(fmt.Sprintf("Failed to copy policy to clipboard: %v", err))
		return 0, err
	}
	p.logger.Debug("Copied policy to clipboard")
	return f.MarkCopied(), nil
}

// Export saves the generated text as a .txt file named after the store.
func (p *Presenter) Export(f *Form) (string, error) {
	if f.View() != ViewText {
		return "", ErrNoResult
	}
	path, err := p.fs.ExportPolicy(p.outputDir, f.Request().StoreName, f.Result())
	if err != nil {
		p.logger.Warn(fmt.Sprintf("Failed to export policy: %v", err))
		return "", err
	}
	p.logger.Info(fmt.Sprintf("Exported policy to %s", path))
	return path, nil
}
