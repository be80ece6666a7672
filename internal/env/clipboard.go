package env

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported возвращается, если в системе нет доступного буфера обмена
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// SystemClipboard пишет в системный буфер обмена (xclip/xsel/wl-copy, pbcopy, Windows API)
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard хранит последний записанный текст в памяти
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	return nil
}

// Text возвращает последний записанный текст
func (c *MemoryClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.text
}
