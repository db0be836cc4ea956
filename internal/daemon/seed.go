package daemon

import (
	"gorm.io/gorm"

	"github.com/rs/zerolog/log"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/siteconfig"
	"github.com/gofolio/gofolio/internal/db/models"
)

// configSeed is one default site content entry.
type configSeed struct {
	key   string
	value string
	label string
	group string
}

var defaultContent = []configSeed{ //nolint:gochecknoglobals
	{key: "hero_title", value: "Hi, I build things for the web.", label: "Hero title", group: "hero"},
	{key: "hero_tagline", value: "Backend engineer with a soft spot for <em>simple</em> systems.", label: "Hero tagline", group: "hero"},
	{key: "about_bio", value: "<p>Write a short introduction about yourself here.</p>", label: "About bio", group: "about"},
	{key: "github_url", value: "", label: "GitHub profile URL", group: "social"},
	{key: "linkedin_url", value: "", label: "LinkedIn profile URL", group: "social"},
	{key: "email_public", value: "", label: "Public contact email", group: "social"},
	{key: "contact_intro", value: "<p>Want to work together? Drop me a line.</p>", label: "Contact page intro", group: "contact"},
	{key: "projects_intro", value: "", label: "Projects page intro", group: "projects"},
	{key: "blog_intro", value: "", label: "Blog page intro", group: "blog"},
	{key: "footer_text", value: "", label: "Footer text", group: "footer"},
}

// seed inserts starter content on an empty database so a fresh deployment
// renders a complete page instead of blank sections. Existing data is never
// overwritten.
func seed(_ *config.Config, db *gorm.DB) {
	var count int64

	db.Model(&models.SiteConfigEntry{}).Count(&count)
	if count == 0 {
		for _, entry := range defaultContent {
			if _, err := siteconfig.SetLabeled(db, entry.key, entry.value, entry.label, entry.group); err != nil {
				log.Error().Err(err).Str("key", entry.key).Msg("failed to seed site content")
			}
		}
	}

	db.Model(&models.Project{}).Count(&count)
	if count == 0 {
		db.Create(&models.Project{
			Title:            "Sample Project",
			Description:      "Replace this with a real project from the admin area.",
			ShortDescription: "A placeholder project.",
			Technologies:     "Go, Fiber, GORM",
			Category:         "Web",
			Featured:         true,
		})
	}

	db.Model(&models.Experience{}).Count(&count)
	if count == 0 {
		db.Create(&models.Experience{
			Role:       "Your Role",
			Company:    "Your Company",
			DateRange:  "2023 - Present",
			Highlights: `["Replace this entry from the admin area."]`,
		})
	}

	db.Model(&models.ImpactCard{}).Count(&count)
	if count == 0 {
		db.Create(&models.ImpactCard{
			Icon:        "&#9733;",
			Value:       "10",
			Suffix:      "+",
			Description: "Projects shipped to production.",
		})
	}

	db.Model(&models.SkillCluster{}).Count(&count)
	if count == 0 {
		db.Create(&models.SkillCluster{
			Icon:  "&#9881;",
			Title: "Backend",
			Tags:  "Go, SQL, Redis",
		})
	}

	db.Model(&models.LanguageItem{}).Count(&count)
	if count == 0 {
		db.Create(&models.LanguageItem{
			Name:  "English",
			Level: "Fluent",
		})
	}

	db.Model(&models.BlogPost{}).Count(&count)
	if count == 0 {
		db.Create(&models.BlogPost{
			Title:   "Hello, world",
			Slug:    "hello-world",
			Excerpt: "A first post to confirm everything works.",
			Content: "<p>Edit or delete this post from the admin area.</p>",
			// draft by default so the placeholder never goes public by
			// accident
			Published: false,
		})
	}
}
