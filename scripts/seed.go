package main

import (
	"fmt"
	"log"
	"time"

	"quill/internal/constants"
	"quill/internal/models"
	"quill/internal/utils"

	"github.com/gosimple/slug"
)

const (
	totalArticles = 500
	body          = `
# Load test article

This article was generated by the seed script for load and performance testing.

## Markdown features

### Lists

- item one
- item two
- item three

### Quote

> "Performance testing is how you find out what the site does under pressure."

### Code

` + "```go" + `
package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}
` + "```" + `

## Long-form filler

Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed non risus. Suspendisse lectus tortor, dignissim sit amet, adipiscing nec, ultricies sed, dolor. Cras elementum ultrices diam. Maecenas ligula massa, varius a, semper congue, euismod non, mi. Proin porttitor, orci nec nonummy molestie, enim est eleifend mi, non fermentum diam nisl sit amet erat. Duis semper. Duis arcu massa, scelerisque vitae, consequat in, pretium a, enim.
`
)

func main() {
	log.Println("Connecting to the database...")
	db, err := utils.InitDatabase("quill.db")
	if err != nil {
		log.Fatalf("Failed to initialize the database: %v", err)
	}

	log.Println("Clearing old article data...")
	if err := db.Exec("DELETE FROM articles").Error; err != nil {
		log.Fatalf("Failed to clear the articles table: %v", err)
	}
	if err := db.Exec("DELETE FROM articles_fts").Error; err != nil {
		log.Printf("Failed to clear the search index: %v", err)
	}
	if err := db.Exec("VACUUM").Error; err != nil {
		log.Printf("VACUUM failed: %v", err)
	}

	category := models.Category{Name: "Testing", Slug: "testing", Description: "Generated content"}
	if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
		log.Fatalf("Failed to create seed category: %v", err)
	}

	log.Printf("Generating %d articles...", totalArticles)

	for i := 1; i <= totalArticles; i++ {
		title := fmt.Sprintf("Load test article %d", i)
		content := fmt.Sprintf("This is the body of article %d.\n\n%s", i, body)

		htmlContent, err := utils.RenderMarkdown(content)
		if err != nil {
			log.Printf("Failed to render article %d: %v", i, err)
			continue
		}

		article := models.Article{
			Title:       title,
			Slug:        slug.Make(title),
			Excerpt:     utils.GenerateExcerpt(content, 200),
			Content:     content,
			ContentHTML: string(htmlContent),
			Category:    category.Slug,
			AuthorName:  "Seed Script",
			Status:      constants.StatusPublished,
			ReadTime:    utils.EstimateReadTime(content),
			PublishedAt: time.Now(),
		}

		if err := db.Create(&article).Error; err != nil {
			log.Printf("Failed to create article %d: %v", i, err)
			continue
		}

		if err := db.Exec(
			"INSERT INTO articles_fts(rowid, title, content) VALUES (?, ?, ?)",
			article.ID, article.Title, article.Content,
		).Error; err != nil {
			log.Printf("Failed to index article %d: %v", i, err)
		}

		if i%100 == 0 {
			log.Printf("Generated %d/%d articles...", i, totalArticles)
		}
	}

	log.Printf("Done. Generated %d articles.", totalArticles)
}
