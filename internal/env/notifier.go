package env

import (
	"fmt"
	"io"
	"sync"
)

// WriterNotifier выводит уведомления построчно в io.Writer
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintln(n.w, message)
}
