package store

import "strings"

// Collection describes one content table exposed through the record store.
// Table and column names are Go string literals only; request input is never
// spliced into SQL, it merely selects an entry from this registry.
type Collection struct {
	// Name is the public collection name used in API paths.
	Name string
	// Table is the backing table.
	Table string
	// Columns are the writable columns. Anything else in a save payload is
	// silently dropped so older admin UIs can post newer payloads and vice
	// versa.
	Columns []string
	// LinkPairs maps a link column to the visibility flag it controls.
	// A blank or null link forces its flag to false on every write.
	LinkPairs map[string]string

	columnSet map[string]bool
}

// linkPairs is the full link-column → visibility-flag mapping; each
// collection carries the subset whose columns it actually has.
var linkPairs = map[string]string{
	"source_code_link":       "source_code_visible",
	"demo_video_link":        "demo_video_visible",
	"live_demo_link":         "live_demo_visible",
	"certificate_link":       "certificate_visible",
	"certificate_image_path": "certificate_visible",
}

var collections = buildRegistry([]*Collection{
	{
		Name:  "skills",
		Table: "skills",
		Columns: []string{
			"title", "technologies", "display_order", "is_visible",
		},
	},
	{
		Name:  "projects",
		Table: "projects",
		Columns: []string{
			"title", "description", "technologies",
			"source_code_link", "demo_video_link", "live_demo_link",
			"display_order", "is_visible", "is_featured", "icon_class",
			"source_code_visible", "demo_video_visible", "live_demo_visible",
			"certificate_link", "certificate_visible", "project_image_path",
		},
	},
	{
		Name:  "internships",
		Table: "internships",
		Columns: []string{
			"title", "company", "period", "description", "technologies",
			"source_code_link", "demo_video_link", "live_demo_link",
			"display_order", "is_visible", "icon_class",
			"source_code_visible", "demo_video_visible", "live_demo_visible",
			"certificate_link", "certificate_visible",
		},
	},
	{
		Name:  "certifications",
		Table: "certifications",
		Columns: []string{
			"title", "issuer", "date_issued", "description",
			"certificate_image_path", "display_order", "is_visible",
			"icon_class", "certificate_visible", "verify_link",
		},
	},
	{
		Name:  "achievements",
		Table: "achievements",
		Columns: []string{
			"title", "role", "category", "description",
			"source_code_link", "demo_video_link", "live_demo_link",
			"display_order", "is_visible", "icon_class",
			"source_code_visible", "demo_video_visible", "live_demo_visible",
			"certificate_link", "certificate_visible",
		},
	},
	{
		Name:  "micro-saas",
		Table: "micro_saas",
		Columns: []string{
			"title", "subtitle", "role", "status", "description",
			"technologies", "icon_class", "color_gradient",
			"display_order", "is_visible",
			"source_code_link", "demo_video_link",
		},
	},
})

func buildRegistry(list []*Collection) map[string]*Collection {
	reg := make(map[string]*Collection, len(list))
	for _, c := range list {
		c.columnSet = make(map[string]bool, len(c.Columns))
		for _, col := range c.Columns {
			c.columnSet[col] = true
		}
		c.LinkPairs = make(map[string]string)
		for link, visible := range linkPairs {
			if c.columnSet[link] && c.columnSet[visible] {
				c.LinkPairs[link] = visible
			}
		}
		reg[c.Name] = c
	}
	return reg
}

// LookupCollection resolves a public collection name or its table-style alias
// ("micro_saas" for "micro-saas"). Unknown names return ErrInvalidCollection.
func LookupCollection(name string) (*Collection, error) {
	if c, ok := collections[name]; ok {
		return c, nil
	}
	if c, ok := collections[strings.ReplaceAll(name, "_", "-")]; ok {
		return c, nil
	}
	return nil, ErrInvalidCollection
}

// CollectionNames returns the public collection names in listing order.
func CollectionNames() []string {
	return []string{"skills", "projects", "internships", "certifications", "achievements", "micro-saas"}
}

// HasColumn reports whether col is writable for the collection.
func (c *Collection) HasColumn(col string) bool {
	return c.columnSet[col]
}
