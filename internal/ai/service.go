package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const generationModel = "gemini-2.5-flash"

// Fallback texts returned when the service is unconfigured or failing. The
// rest of the app never depends on the service being reachable.
const (
	fallbackQuote        = "Believe in yourself and all that you are."
	errorQuote           = "Your health is an investment, not an expense."
	fallbackArticle      = "API Key not configured. Unable to fetch AI content."
	errorArticle         = "AI is busy right now, please try again in a moment."
	fallbackChat         = "I can't chat right now. Please check your API key."
	errorChat            = "I'm having a little trouble thinking right now. Could you ask that again?"
	quotePrompt          = "Generate a short, powerful, uplifting motivational quote specifically for women's health and empowerment. Do not use quotes, just the text."
	articlePromptPattern = "Write a helpful, empathetic, and informative article (about 300 words) based on this topic: %q. Use markdown formatting with clear headings, bullet points for key takeaways, and a comforting tone."
)

// ChatMessage is one turn of an article chat, role "user" or "model".
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := g.client.Models.GenerateContent(ctx, generationModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return response.Text(), nil
}

// ContentService wraps the text-generation backend. With an empty API key it
// runs in fallback-only mode.
type ContentService struct {
	backend generator
}

func NewContentService(ctx context.Context, apiKey string) (*ContentService, error) {
	if apiKey == "" {
		return &ContentService{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &ContentService{backend: &geminiGenerator{client: client}}, nil
}

// MotivationalQuote returns a short quote for the home view.
func (service *ContentService) MotivationalQuote(ctx context.Context) string {
	if service.backend == nil {
		return fallbackQuote
	}
	text, err := service.backend.Generate(ctx, quotePrompt)
	if err != nil {
		log.Printf("quote generation failed: %v", err)
		return errorQuote
	}
	return strings.TrimSpace(text)
}

// ArticleContent expands a catalog prompt into an article body.
func (service *ContentService) ArticleContent(ctx context.Context, prompt string) string {
	if service.backend == nil {
		return fallbackArticle
	}
	text, err := service.backend.Generate(ctx, fmt.Sprintf(articlePromptPattern, prompt))
	if err != nil {
		log.Printf("article generation failed: %v", err)
		return errorArticle
	}
	return text
}

// ChatReply answers a follow-up question about the article the user is
// reading, with the prior conversation flattened into the prompt.
func (service *ContentService) ChatReply(ctx context.Context, articleContext string, question string, history []ChatMessage) string {
	if service.backend == nil {
		return fallbackChat
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Context: You are a helpful, empathetic women's health assistant. The user is currently reading an article with the following prompt/topic: %q.\n\n", articleContext)
	prompt.WriteString("Chat History:\n")
	for _, message := range history {
		speaker := "Assistant"
		if message.Role == "user" {
			speaker = "User"
		}
		fmt.Fprintf(&prompt, "%s: %s\n", speaker, message.Text)
	}
	fmt.Fprintf(&prompt, "\nUser's new question: %s\nAssistant (provide a helpful, short answer):", question)

	text, err := service.backend.Generate(ctx, prompt.String())
	if err != nil {
		log.Printf("chat generation failed: %v", err)
		return errorChat
	}
	return strings.TrimSpace(text)
}
