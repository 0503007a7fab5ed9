package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LenatThomas/Resume-Handler/internal/models"
)

func TestBuildChatPromptWithoutStatus(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildChatPrompt("hello", "")

	assert.Equal(t, "User message: hello", prompt)
	assert.NotContains(t, prompt, "Resume status")
}

func TestBuildChatPromptEmbedsStatus(t *testing.T) {
	pb := NewPromptBuilder()
	status := models.Succeeded(&models.ExtractedResume{Valid: true, Name: "John"}, true)

	prompt := pb.BuildChatPrompt("User uploaded a resume.", status.Render())

	assert.Contains(t, prompt, `User message: "User uploaded a resume."`)
	assert.Contains(t, prompt, "Resume status:")
	assert.Contains(t, prompt, `"name": "John"`)
}

func TestExtractionInstructionNamesAllKeys(t *testing.T) {
	instruction := NewPromptBuilder().ExtractionInstruction()

	for _, key := range []string{"valid_resume", "name", "email", "phone", "education", "experience", "skills"} {
		assert.Contains(t, instruction, key)
	}
	assert.Contains(t, instruction, "cover letters")
}
