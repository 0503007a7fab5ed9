package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/twilio/twilio-go/twiml"

	"github.com/LenatThomas/Resume-Handler/internal/models"
	"github.com/LenatThomas/Resume-Handler/internal/services"
)

const (
	// Greeting is the fixed reply to a message with no text and no media.
	Greeting = "Hello! How can I assist you today?"

	// UploadPlaceholder substitutes for an empty message body when an
	// attachment arrived, so the chat prompt is never blank.
	UploadPlaceholder = "User uploaded a resume."

	unsupportedDetail = "Unsupported file type. Please send a PDF or DOCX resume."
)

type WhatsAppHandler struct {
	fetcher   services.MediaFetcher
	processor services.ResumeProcessor
	responder services.Responder
}

func NewWhatsAppHandler(
	fetcher services.MediaFetcher,
	processor services.ResumeProcessor,
	responder services.Responder,
) *WhatsAppHandler {
	return &WhatsAppHandler{
		fetcher:   fetcher,
		processor: processor,
		responder: responder,
	}
}

// HandleMessage handles POST /whatsapp. Every outcome, including total
// failure below this layer, produces a 200 with a TwiML reply envelope.
func (h *WhatsAppHandler) HandleMessage(c *fiber.Ctx) error {
	msg := parseIncoming(c)
	reqID := uuid.New().String()

	log.Printf("📩 [%s] Received message from sender %s: %q", reqID, msg.Sender, msg.Body)
	log.Printf("📩 [%s] Number of media: %d", reqID, msg.NumMedia)

	if msg.Body == "" && msg.NumMedia == 0 {
		return replyWith(c, Greeting)
	}

	var status *models.Status
	if msg.NumMedia > 0 {
		status = h.processMedia(c.Context(), reqID, msg.Media[0])
	}

	message := msg.Body
	if message == "" {
		message = UploadPlaceholder
	}

	reply := h.responder.Reply(c.Context(), msg.Sender, message, status)
	return replyWith(c, reply)
}

// processMedia fetches the attachment and dispatches it by declared content
// type. Failures come back as status values, never as errors.
func (h *WhatsAppHandler) processMedia(ctx context.Context, reqID string, media models.MediaItem) *models.Status {
	data, err := h.fetcher.Fetch(ctx, media.URL)
	if err != nil {
		log.Printf("❌ [%s] Failed to fetch media: %v", reqID, err)
		return models.Failed(models.ErrFetch, fmt.Sprintf("failed to fetch media: %v", err))
	}

	format, ok := models.FormatFor(media.ContentType)
	if !ok {
		log.Printf("⚠️  [%s] Unsupported media type %q", reqID, media.ContentType)
		return models.Failed(models.ErrUnsupported, unsupportedDetail)
	}

	return h.processor.Process(ctx, data, format)
}

func parseIncoming(c *fiber.Ctx) *models.IncomingMessage {
	numMedia, err := strconv.Atoi(c.FormValue("NumMedia", "0"))
	if err != nil || numMedia < 0 {
		numMedia = 0
	}

	msg := &models.IncomingMessage{
		Sender:   c.FormValue("From"),
		Body:     strings.TrimSpace(c.FormValue("Body")),
		NumMedia: numMedia,
	}

	for i := 0; i < numMedia; i++ {
		msg.Media = append(msg.Media, models.MediaItem{
			URL:         c.FormValue(fmt.Sprintf("MediaUrl%d", i)),
			ContentType: c.FormValue(fmt.Sprintf("MediaContentType%d", i)),
		})
	}

	return msg
}

func replyWith(c *fiber.Ctx, text string) error {
	doc, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: text},
	})
	if err != nil {
		return fmt.Errorf("failed to render reply envelope: %w", err)
	}

	c.Set(fiber.HeaderContentType, "text/xml")
	return c.SendString(doc)
}
