package handlers

// HandlerBundle groups the HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Webhook *WebhookHandler
	Chat    *ChatHandler
	Admin   *AdminHandler
}
