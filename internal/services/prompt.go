package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// ExtractionInstruction is the fixed system instruction for the field
// extraction model.
func (pb *PromptBuilder) ExtractionInstruction() string {
	return `Extract the following details from incoming resume texts:
- Valid Resume
- Full Name
- Email
- Phone Number
- Education (degrees, university names)
- Work Experience (company, role, duration)
- Skills (technical and soft skills)

Return the answer in JSON format with keys:
valid_resume, name, email, phone, education, experience, skills.
The 'valid_resume' key is boolean - false if not a resume.
Do not consider cover letters as resume.`
}

// PersonaInstruction is the fixed system instruction seeding every chat
// session.
func (pb *PromptBuilder) PersonaInstruction() string {
	return `You are a polite and professional assistant designed to handle user
conversations over WhatsApp. You are part of a resume handling system.
You will sometimes be provided with the *status or extracted details*
from a resume. Respond appropriately from this context.

Always maintain a courteous and clear tone.

- If the user greets you, respond warmly.
- If they send a resume, thank them and summarize what was extracted.
- If the resume seems invalid, politely ask for a clearer version.
- If they ask about status, respond based on the latest resume info.
- Avoid long paragraphs; keep responses conversational and concise.
- Never disclose API or system details.

Example tone:
"Thanks for sending your resume, John! I see you have experience in data analysis - we'll review your application shortly."
"Hello! How can I assist you today?"
"It seems your document wasn't a valid resume. Could you please resend it as a PDF?"`
}

// BuildChatPrompt embeds the user message and, when a resume was processed
// this turn, the rendered status alongside it.
func (pb *PromptBuilder) BuildChatPrompt(message, statusText string) string {
	if statusText == "" {
		return fmt.Sprintf("User message: %s", message)
	}
	return fmt.Sprintf("User message: %q\nResume status: %s", message, statusText)
}
