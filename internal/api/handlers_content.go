package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shush-app/shush/internal/ai"
	"github.com/shush-app/shush/internal/catalog"
)

type chatInput struct {
	Question string           `json:"question"`
	History  []ai.ChatMessage `json:"history"`
}

// ListArticles returns the catalog grouped the way the home and library
// views display it.
func (handler *Handler) ListArticles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"main_categories":    catalog.MainCategories,
		"feature_articles":   catalog.FeatureArticles,
		"period_details":     catalog.PeriodDetails,
		"additional_library": catalog.AdditionalLibraryArticles,
	})
}

// GetArticle resolves a catalog record and generates its body. A failing or
// unconfigured AI service yields the static fallback text.
func (handler *Handler) GetArticle(c *fiber.Ctx) error {
	article, found := catalog.FindByID(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "article not found"})
	}

	body := handler.content.ArticleContent(c.Context(), article.Prompt)
	return c.JSON(fiber.Map{"article": article, "content": body})
}

// Quote returns the home view's motivational quote.
func (handler *Handler) Quote(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"quote": handler.content.MotivationalQuote(c.Context())})
}

// ArticleChat answers a follow-up question in the context of one article.
func (handler *Handler) ArticleChat(c *fiber.Ctx) error {
	article, found := catalog.FindByID(c.Params("id"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "article not found"})
	}

	var input chatInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(input.Question) == "" {
		return badRequest(c, "question is required")
	}

	reply := handler.content.ChatReply(c.Context(), article.Prompt, input.Question, input.History)
	return c.JSON(fiber.Map{"reply": reply})
}
