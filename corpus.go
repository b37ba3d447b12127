package cmdref

import "strings"

// Corpus is the ordered collection of commands and platforms available to
// search. Order is significant: consumers key on position, not name.
type Corpus struct {
	Commands  []Command
	Platforms []Platform
}

// Lookup returns the first command whose name matches, ignoring case.
func (c *Corpus) Lookup(name string) (Command, bool) {
	if c == nil {
		return Command{}, false
	}
	for _, cmd := range c.Commands {
		if strings.EqualFold(cmd.Name, name) {
			return cmd, true
		}
	}
	return Command{}, false
}

// Platform returns the platform descriptor with the given id.
func (c *Corpus) Platform(id string) (Platform, bool) {
	if c == nil {
		return Platform{}, false
	}
	for _, p := range c.Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// PlatformsByCategory groups platform descriptors by category, preserving
// corpus order within each group. The returned category slice is in order of
// first appearance.
func (c *Corpus) PlatformsByCategory() (categories []string, groups map[string][]Platform) {
	groups = make(map[string][]Platform)
	if c == nil {
		return nil, groups
	}
	for _, p := range c.Platforms {
		if _, ok := groups[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}
	return categories, groups
}
