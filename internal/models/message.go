package models

// IncomingMessage is the parsed form of one inbound WhatsApp webhook call.
// It lives for the duration of the request and is never persisted.
type IncomingMessage struct {
	Sender   string
	Body     string
	NumMedia int
	Media    []MediaItem
}

// MediaItem is one attachment slot of the inbound form: a fetchable URL plus
// the content type the transport declared for it.
type MediaItem struct {
	URL         string
	ContentType string
}
