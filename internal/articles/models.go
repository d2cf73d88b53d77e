package articles

import (
	pub "github.com/simonmumina/codingeasypeasy-sub006/articles"
)

// The canonical model and request types live in the public articles package;
// this package carries the implementations behind them.
type (
	Article              = pub.Article
	TagCount             = pub.TagCount
	AuthorCount          = pub.AuthorCount
	CreateArticleRequest = pub.CreateArticleRequest
	UpdateArticleRequest = pub.UpdateArticleRequest
	DeleteArticleRequest = pub.DeleteArticleRequest
	ListFilter           = pub.ListFilter
	NotFoundError        = pub.NotFoundError
	SlugConflictError    = pub.SlugConflictError
	DateOrderError       = pub.DateOrderError
)
