package imgapp

// ClipboardText retrieves text from the system clipboard of the open window.
// Returns empty string if no window is open or the clipboard holds no text.
func (a *App) ClipboardText() string {
	if a.window == nil {
		return ""
	}
	text, err := a.window.Clipboard().Text()
	if err != nil {
		a.logger.Debug("clipboard read failed", "err", err)
		return ""
	}
	return text
}

// SetClipboardText copies text to the system clipboard.
// Does nothing if no window is open.
func (a *App) SetClipboardText(text string) {
	if a.window == nil {
		return
	}
	a.window.Clipboard().SetText(text)
}
