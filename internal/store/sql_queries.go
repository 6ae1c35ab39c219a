package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash, avatar, bio)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, name, password_hash, avatar, bio, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, avatar, bio, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, avatar, bio, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	// postSelectColumns reads a post row aliased "p" joined with its author "u".
	postSelectColumns = `p.post_id, p.title, p.content, p.excerpt, p.category, p.tags, p.cover_image,
    p.status, p.read_time, p.views, p.created_at, p.updated_at,
    u.user_id, u.name, u.avatar, u.bio`

	getPostByID = `SELECT ` + postSelectColumns + `
    FROM posts p
    JOIN users u ON u.user_id = p.author_id
    WHERE p.post_id = $1;`

	createPost = `WITH inserted AS (
        INSERT INTO posts (author_id, title, content, excerpt, category, tags, cover_image, status, read_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING *
    )
    SELECT ` + postSelectColumns + `
    FROM inserted p
    JOIN users u ON u.user_id = p.author_id;`

	updatePost = `WITH updated AS (
        UPDATE posts
        SET title = $1, content = $2, excerpt = $3, category = $4, tags = $5,
            cover_image = $6, status = $7, read_time = $8, updated_at = NOW()
        WHERE post_id = $9 AND author_id = $10
        RETURNING *
    )
    SELECT ` + postSelectColumns + `
    FROM updated p
    JOIN users u ON u.user_id = p.author_id;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1 AND author_id = $2;`

	incrementPostViews = `UPDATE posts
    SET views = views + 1
    WHERE post_id = $1 AND status = 'published'
    RETURNING views;`

	// searchTagsCondition matches a pattern against any element of the JSONB
	// tags array.
	searchTagsCondition = `EXISTS (SELECT 1 FROM jsonb_array_elements_text(p.tags) AS t(tag) WHERE t.tag ILIKE ?)`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPostsQuery builds the page query for [models.PostFilter]: published
// posts only, newest first with the id as tie-breaker.
func buildListPostsQuery(ctx context.Context, filter models.PostFilter) (string, []any, error) {
	query, args, err := psql.
		Select(postSelectColumns).
		From("posts p").
		Join("users u ON u.user_id = p.author_id").
		Where(postFilterConditions(filter)).
		OrderBy("p.created_at DESC", "p.post_id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountPostsQuery counts every post matching filter, ignoring pagination.
func buildCountPostsQuery(ctx context.Context, filter models.PostFilter) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("posts p").
		Where(postFilterConditions(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func postFilterConditions(filter models.PostFilter) sq.And {
	conditions := sq.And{sq.Eq{"p.status": string(models.StatusPublished)}}

	if filter.Category != "" {
		conditions = append(conditions, sq.Eq{"p.category": filter.Category})
	}
	if filter.AuthorID != 0 {
		conditions = append(conditions, sq.Eq{"p.author_id": filter.AuthorID})
	}

	if terms := SearchTerms(filter.Search); len(terms) > 0 {
		anyTerm := make(sq.Or, 0, len(terms)*3)
		for _, term := range terms {
			pattern := "%" + escapeLike(term) + "%"
			anyTerm = append(anyTerm,
				sq.ILike{"p.title": pattern},
				sq.ILike{"p.content": pattern},
				sq.Expr(searchTagsCondition, pattern),
			)
		}
		conditions = append(conditions, anyTerm)
	}

	return conditions
}

// escapeLike escapes the LIKE wildcards so a search term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
