package site

import (
	"time"

	"github.com/vcrobe/nojs-docs/dom"
)

// CopyCode copies the text of the pre block inside button's .code-block and
// flashes "Copied!" on the button. Failures are logged.
func (c *Controller) CopyCode(button dom.Element) {
	c.mu.Lock()
	text, ok := c.codeText(button)
	c.mu.Unlock()
	if !ok {
		return
	}

	// The lock is not held here: in-memory writers call back synchronously.
	c.clip.WriteText(text, func(err error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.log.Error("failed to copy", "error", err)
			return
		}
		c.showCopied(button)
	})
}

func (c *Controller) codeText(button dom.Element) (string, bool) {
	if button == nil {
		return "", false
	}
	block := button.Closest(".code-block")
	if block == nil {
		c.log.Warn("copy button outside a code block")
		return "", false
	}
	pre := block.Query("pre")
	if pre == nil {
		c.log.Warn("code block without pre")
		return "", false
	}
	return pre.Text(), true
}

// showCopied swaps the button label for the feedback period. A second copy
// while the label is showing keeps the first restore.
func (c *Controller) showCopied(button dom.Element) {
	for _, fb := range c.copying {
		if fb.button.Same(button) {
			return
		}
	}
	fb := copyFeedback{button: button, original: button.Text()}
	c.copying = append(c.copying, fb)

	button.SetText(copiedLabel)
	button.SetStyle("background", copiedBackground)

	time.AfterFunc(c.cfg.CopyFeedback, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		fb.button.SetText(fb.original)
		fb.button.SetStyle("background", "")
		for i, active := range c.copying {
			if active.button.Same(fb.button) {
				c.copying = append(c.copying[:i], c.copying[i+1:]...)
				break
			}
		}
	})
}
