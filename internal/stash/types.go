package stash

// Tag is a named classification attached to scenes. Identity is the id; two
// tags are the same tag iff their ids match.
type Tag struct {
	ID   string
	Name string
}

// Scene is a single catalog entry as returned by the server.
type Scene struct {
	ID             string
	Title          string
	FallbackName   string
	ScreenshotPath string
	PreviewPath    string
	Tags           []Tag
}

const untitledPlaceholder = "Untitled"

// DisplayName returns the title when present, the first file's basename
// otherwise, and a literal placeholder when both are empty.
func (s Scene) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}
	if s.FallbackName != "" {
		return s.FallbackName
	}
	return untitledPlaceholder
}

// TagIDs returns the scene's tag ids as a set.
func (s Scene) TagIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.Tags))
	for _, tag := range s.Tags {
		ids[tag.ID] = struct{}{}
	}
	return ids
}
