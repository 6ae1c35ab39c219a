package service

import "github.com/MKhiriev/go-blog/models"

// CanRead reports whether principal may see post: published posts are
// public, drafts are visible to their author only.
func CanRead(principal models.Principal, post models.Post) bool {
	return post.Status == models.StatusPublished || principal.Is(post.Author.ID)
}

// CanWrite reports whether principal may update or delete post.
func CanWrite(principal models.Principal, post models.Post) bool {
	return principal.Is(post.Author.ID)
}
