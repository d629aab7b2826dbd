package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/benharosh/studio-cms/models"
)

const (
	fetchPage = `SELECT page_id, content_blocks, created_at, updated_at
		FROM pages
		WHERE page_id = $1;`

	savePage = `INSERT INTO pages (page_id, content_blocks)
		VALUES ($1, $2)
		ON CONFLICT (page_id)
		DO UPDATE SET content_blocks = EXCLUDED.content_blocks, updated_at = NOW();`

	createProject = `INSERT INTO projects (
			id,
			title,
			category,
			location,
			year,
			cover_image,
			description,
			materials,
			tags,
			gallery,
			published,
			slug
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at;`

	getProjectBySlug = `SELECT id, title, category, location, year, cover_image, description,
			materials, tags, gallery, published, slug, created_at, updated_at
		FROM projects
		WHERE slug = $1;`

	deleteProject = `DELETE FROM projects WHERE id = $1;`

	createCategory = `INSERT INTO categories (id, name, description, image_count)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;`

	listCategories = `SELECT id, name, description, image_count, created_at
		FROM categories
		ORDER BY name;`

	updateCategory = `UPDATE categories
		SET name = $2, description = $3, image_count = $4
		WHERE id = $1;`

	deleteCategory = `DELETE FROM categories WHERE id = $1;`

	fetchSettings = `SELECT value FROM settings WHERE name = $1;`

	saveSettings = `INSERT INTO settings (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`

	createMessage = `INSERT INTO contact_messages (id, full_name, phone, email, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;`

	listMessages = `SELECT id, full_name, phone, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC;`

	deleteMessage = `DELETE FROM contact_messages WHERE id = $1;`

	deleteMessagesBefore = `DELETE FROM contact_messages WHERE created_at < $1;`

	createImage = `INSERT INTO gallery (id, url, content_type, size)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;`

	listImages = `SELECT id, url, content_type, size, created_at
		FROM gallery
		ORDER BY created_at DESC;`

	deleteImage = `DELETE FROM gallery WHERE id = $1;`
)

// buildListProjectsQuery builds the dynamic project listing query from a
// filter. Zero-valued filter fields add no predicate.
func buildListProjectsQuery(filter models.ProjectFilter) (string, []any, error) {
	builder := sq.
		Select("id", "title", "category", "location", "year", "cover_image", "description",
			"materials", "tags", "gallery", "published", "slug", "created_at", "updated_at").
		From("projects").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	if filter.Tag != "" {
		tag, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Where(sq.Expr("tags @> ?", string(tag)))
	}

	if filter.PublishedOnly {
		builder = builder.Where(sq.Eq{"published": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateProjectQuery builds the full-row project update.
func buildUpdateProjectQuery(project models.Project, materials, tags, gallery []byte) (string, []any, error) {
	query, args, err := sq.
		Update("projects").
		Set("title", project.Title).
		Set("category", project.Category).
		Set("location", project.Location).
		Set("year", project.Year).
		Set("cover_image", project.CoverImage).
		Set("description", project.Description).
		Set("materials", materials).
		Set("tags", tags).
		Set("gallery", gallery).
		Set("published", project.Published).
		Set("slug", project.Slug).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": project.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
