package index

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLResolverConfig wires route names and parameter keys for corpus URLs.
type URLResolverConfig struct {
	Manager     *urlkit.RouteManager
	Group       string
	PostRoute   string
	TagRoute    string
	AuthorRoute string
	SlugParam   string
	TagParam    string
	AuthorParam string
}

// URLResolver builds public URLs for articles, tag pages, and author pages
// using a go-urlkit route manager. Group lookups panic inside urlkit when a
// name is unknown, so every lookup is recover-wrapped.
type URLResolver struct {
	manager     *urlkit.RouteManager
	groupPath   string
	postRoute   string
	tagRoute    string
	authorRoute string
	slugParam   string
	tagParam    string
	authorParam string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLResolver constructs a resolver with sensible defaults for unset keys.
func NewURLResolver(cfg URLResolverConfig) *URLResolver {
	if cfg.Group == "" {
		cfg.Group = "site"
	}
	if cfg.PostRoute == "" {
		cfg.PostRoute = "post"
	}
	if cfg.TagRoute == "" {
		cfg.TagRoute = "tag"
	}
	if cfg.AuthorRoute == "" {
		cfg.AuthorRoute = "author"
	}
	if cfg.SlugParam == "" {
		cfg.SlugParam = "slug"
	}
	if cfg.TagParam == "" {
		cfg.TagParam = "tag"
	}
	if cfg.AuthorParam == "" {
		cfg.AuthorParam = "author"
	}

	return &URLResolver{
		manager:     cfg.Manager,
		groupPath:   cfg.Group,
		postRoute:   cfg.PostRoute,
		tagRoute:    cfg.TagRoute,
		authorRoute: cfg.AuthorRoute,
		slugParam:   cfg.SlugParam,
		tagParam:    cfg.TagParam,
		authorParam: cfg.AuthorParam,

		groupCache: make(map[string]*urlkit.Group),
	}
}

// ArticleURL resolves the detail page URL for a slug. Returns "" without a
// manager so index builds degrade instead of failing.
func (r *URLResolver) ArticleURL(slug string) (string, error) {
	return r.build(r.postRoute, r.slugParam, slug)
}

// TagURL resolves the listing URL for a tag slug.
func (r *URLResolver) TagURL(tagSlug string) (string, error) {
	return r.build(r.tagRoute, r.tagParam, tagSlug)
}

// AuthorURL resolves the listing URL for an author key.
func (r *URLResolver) AuthorURL(author string) (string, error) {
	return r.build(r.authorRoute, r.authorParam, author)
}

func (r *URLResolver) build(route, param, value string) (string, error) {
	if r == nil || r.manager == nil {
		return "", nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	group, err := r.groupForPath(r.groupPath)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}

	url, err := builder.WithParam(param, value).Build()
	if err != nil {
		return "", fmt.Errorf("index: build %s url for %q: %w", route, value, err)
	}
	return url, nil
}

func (r *URLResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

// urlkit panics on unknown group or route names; named returns keep the
// recovered error visible to callers.
func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("index: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("index: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("index: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("index: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("index: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("index: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}
