package usecase

import (
	"fmt"

	"go.uber.org/zap"
)

// CopyToClipboard копирует короткий URL в буфер обмена и уведомляет пользователя о результате.
// Пустой URL ничего не делает: кнопка копирования показывается только после успешной отправки.
func (u *URLUsecase) CopyToClipboard(shortenedURL string) error {
	if shortenedURL == "" {
		return ErrNothingToCopy
	}

	err := ErrClipboardUnavailable
	if u.env.Clipboard != nil {
		err = u.env.Clipboard.WriteText(shortenedURL)
	}
	u.metrics.ObserveCopy(err)

	if err != nil {
		u.logger.Error("failed to copy text", zap.String("short_url", shortenedURL), zap.Error(err))
		u.notify(CopyFailedMessage)
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	u.notify(CopiedMessage)
	return nil
}

func (u *URLUsecase) notify(message string) {
	if u.env.Notifier != nil {
		u.env.Notifier.Notify(message)
	}
}
