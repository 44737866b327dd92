package catalog

import "github.com/shush-app/shush/internal/models"

// The catalog is static, read-only content. The tracker never consumes it;
// it exists for the library and article views.

var MainCategories = []models.Article{
	{
		ID:          "period-1",
		Title:       "Period 101",
		Description: "Know when your periods gonna start. What happens during your period?",
		ImageURL:    "/period101.jpeg",
		Category:    "Menstruation",
		Prompt:      "Explain the menstrual cycle in a simple, friendly way for young women. Include phases and what to expect.",
	},
	{
		ID:          "nutrition-1",
		Title:       "Cycle Nutrition",
		Description: "Fuel your body right during every phase of your cycle.",
		ImageURL:    "/green.jpeg",
		Category:    "Nutrition",
		Prompt:      "How does nutrition affect the menstrual cycle? What foods are best for the follicular, ovulatory, luteal, and menstrual phases? Discuss seed cycling.",
	},
	{
		ID:          "pcos-1",
		Title:       "PCOD & PCOS",
		Description: "This is very common in women, know what happens during PCOD and PCOS",
		ImageURL:    "/pcos.jpg",
		Category:    "Conditions",
		Prompt:      "What is the difference between PCOD and PCOS? Explain symptoms, causes, and simple lifestyle changes.",
	},
	{
		ID:          "mental-health-women",
		Title:       "Anxiety & Hormones",
		Description: "Why you might feel anxious before your period and how to cope.",
		ImageURL:    "C.jpg",
		Category:    "Wellness",
		Prompt:      "Explain the link between hormones (progesterone/estrogen) and anxiety or mood swings in women. Provide coping strategies.",
	},
	{
		ID:          "gyno-1",
		Title:       "Gynecological Health",
		Description: "Your Gynecology check-ups are just as important as any other.",
		ImageURL:    "/gyno.jpg",
		Category:    "Health",
		Prompt:      "Why are regular gynecological check-ups important? What happens during a first visit?",
	},
	{
		ID:          "skincare-1",
		Title:       "Hormonal Acne",
		Description: "Understanding why breakouts happen and how to manage them.",
		ImageURL:    "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?auto=format&fit=crop&w=800&q=80",
		Category:    "Beauty",
		Prompt:      "Why does hormonal acne happen? How can skincare routines change throughout the menstrual cycle?",
	},
	{
		ID:          "sleep-1",
		Title:       "Sleep Hygiene",
		Description: "Rest is resistance. Improving sleep quality during your cycle.",
		ImageURL:    "sleep.jpeg",
		Category:    "Lifestyle",
		Prompt:      "How does the menstrual cycle affect sleep architecture? Tips for better sleep during the luteal phase.",
	},
	{
		ID:          "uti-health",
		Title:       "Intimate Hygiene",
		Description: "Best practices for keeping your intimate areas healthy.",
		ImageURL:    "/pc.jpg",
		Category:    "Health",
		Prompt:      "What are the best practices for vaginal hygiene? Debunk myths about douching and scented products. Discuss preventing UTIs.",
	},
	{
		ID:          "contraception-1",
		Title:       "Contraception",
		Description: "Empowering yourself with knowledge about birth control options.",
		ImageURL:    "/cont1.jpeg",
		Category:    "Education",
		Prompt:      "Provide a comprehensive overview of contraception methods: Pills, IUDs, Implants, and natural family planning. Discuss pros and cons.",
	},
}

var FeatureArticles = []models.Article{
	{
		ID:          "mental-health",
		Title:       "Mental Health",
		Description: "It helps determine how we handle stress, relate to others, and make healthy choices.",
		ImageURL:    "/mental2.jpg",
		Category:    "Wellness",
		Prompt:      "Discuss the importance of mental health for women, specifically focusing on stress management and self-care.",
	},
	{
		ID:          "sex-ed",
		Title:       "Sex Education",
		Description: "Sex education aims to teach people how to navigate matters concerning sex, sexuality, and sexual health.",
		ImageURL:    "Z.jpeg",
		Category:    "Education",
		Prompt:      "Provide a comprehensive, age-appropriate overview of sex education for young adults, focusing on consent, safety, and pleasure.",
	},
}

var PeriodDetails = []models.Article{
	{
		ID:          "what-is-period",
		Title:       "What are Period?",
		Description: "Periods or menstruation is a natural biological process in which blood and tissue from your uterus come out from your vagina.",
		ImageURL:    "/P.jpeg",
		Category:    "Menstruation",
		Prompt:      "Explain exactly what menstruation is biologically in simple terms.",
	},
	{
		ID:          "what-is-pms",
		Title:       "What is PMS?",
		Description: "Premenstrual Syndrome is a term used to describe a group of physical and behavioral changes.",
		ImageURL:    "/pms.jpg",
		Category:    "Menstruation",
		Prompt:      "What is PMS? List common physical and emotional symptoms and how to manage them.",
	},
	{
		ID:          "cramps",
		Title:       "Treating Cramps",
		Description: "During your menstrual period, your uterus contracts to help expel its lining. Hormone like substances trigger pain.",
		ImageURL:    "/cramp1.jpeg",
		Category:    "Menstruation",
		Prompt:      "Give 5 effective home remedies for treating period cramps.",
	},
	{
		ID:          "products",
		Title:       "Tampons or Pads?",
		Description: "If you're prone to waking up to sheets that resemble a crime scene, then the biggest pad with wings is probably best.",
		ImageURL:    "/tampons.jpg",
		Category:    "Hygiene",
		Prompt:      "Compare tampons, pads, and menstrual cups. Pros and cons of each.",
	},
	{
		ID:          "medical-help",
		Title:       "When to see a doctor?",
		Description: "While period pain usually ranges from a dull ache in the belly to painful cramps, how you experience period pains varies.",
		ImageURL:    "/doc.jpeg",
		Category:    "Health",
		Prompt:      "List red flags during a period that indicate a woman should see a doctor immediately.",
	},
	{
		ID:          "tracking",
		Title:       "Why Track?",
		Description: "If your periods are regular, tracking them will help you know when you ovulate and when to expect your next period.",
		ImageURL:    "/calender.jpg",
		Category:    "Wellness",
		Prompt:      "Why is tracking the menstrual cycle beneficial for health beyond just knowing when the next period is?",
	},
}

var AdditionalLibraryArticles = []models.Article{
	{
		ID:          "breast-health",
		Title:       "Breast Health 101",
		Description: "How to perform self-exams and what changes to look out for.",
		ImageURL:    "pin.jpeg",
		Category:    "Body",
		Prompt:      "Guide to breast health: How to do a self-exam, what is normal, and when to see a doctor. Discuss breast cancer awareness.",
	},
	{
		ID:          "body-image",
		Title:       "Body Positivity",
		Description: "Embracing your changing body through every phase of life with kindness.",
		ImageURL:    "/body1.jpeg",
		Category:    "Wellness",
		Prompt:      "Write an article about body neutrality and positivity. How to handle body image issues during bloating or hormonal changes.",
	},
	{
		ID:          "safe-sex",
		Title:       "Safe Sex Guide",
		Description: "Everything you need to know about protection, consent, and pleasure.",
		ImageURL:    "/ss.jpeg",
		Category:    "Sex Ed",
		Prompt:      "A comprehensive guide to safe sex. Discuss different types of protection against STIs and pregnancy, and emphasize the importance of consent.",
	},
	{
		ID:          "discharge-guide",
		Title:       "Vaginal Discharge",
		Description: "What is normal? Decoding the colors and consistency of your cycle.",
		ImageURL:    "/vag.jpeg",
		Category:    "Health",
		Prompt:      "Explain the different types of vaginal discharge throughout the menstrual cycle. What colors signify health vs infection?",
	},
	{
		ID:          "hair-removal",
		Title:       "Body Hair Choices",
		Description: "Shave, wax, or grow? It is completely your choice.",
		ImageURL:    "/choice.jpeg",
		Category:    "Beauty",
		Prompt:      "Discuss body hair removal myths and facts. Emphasize that body hair is natural and removal is a personal choice. Tips for safe shaving/waxing.",
	},
}

// All returns every catalog section flattened in display order.
func All() []models.Article {
	combined := make([]models.Article, 0, len(MainCategories)+len(FeatureArticles)+len(PeriodDetails)+len(AdditionalLibraryArticles))
	combined = append(combined, MainCategories...)
	combined = append(combined, FeatureArticles...)
	combined = append(combined, PeriodDetails...)
	combined = append(combined, AdditionalLibraryArticles...)
	return combined
}

// FindByID looks an article up across every section.
func FindByID(articleID string) (models.Article, bool) {
	for _, article := range All() {
		if article.ID == articleID {
			return article, true
		}
	}
	return models.Article{}, false
}
