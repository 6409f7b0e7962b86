// Package schema registers the fixtures the generator and server know about.
package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/constants"
	"github.com/yukikurage/demodb/internal/models/blog"
	"github.com/yukikurage/demodb/internal/models/jirakiller"
	"github.com/yukikurage/demodb/internal/models/test5"
	"github.com/yukikurage/demodb/internal/seeder"
)

// SeedFunc fills a migrated, empty store.
type SeedFunc func(ctx context.Context, db *gorm.DB, opts seeder.Options) (seeder.Summary, error)

// Variant is one fixture: its models, parents before children, and its seeder.
type Variant struct {
	Name   string
	Models []any
	Seed   SeedFunc
}

var variants = map[string]Variant{
	constants.VariantJiraKiller: {Name: constants.VariantJiraKiller, Models: jirakiller.All(), Seed: seeder.JiraKiller},
	constants.VariantTest5:      {Name: constants.VariantTest5, Models: test5.All(), Seed: seeder.Test5},
	constants.VariantBlog:       {Name: constants.VariantBlog, Models: blog.All(), Seed: seeder.Blog},
}

// Lookup returns the variant called name.
func Lookup(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown schema %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names lists the registered variant names in order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
