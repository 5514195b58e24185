package host

import "strings"

const scenePrefix = "/scenes/"

// SceneRoute extracts the numeric scene id from a detail-page route such as
// "/scenes/42". It returns false for every other path, including scene list
// routes and non-numeric ids.
func SceneRoute(path string) (string, bool) {
	if !strings.HasPrefix(path, scenePrefix) {
		return "", false
	}
	id := strings.TrimPrefix(path, scenePrefix)
	if slash := strings.IndexByte(id, '/'); slash >= 0 {
		id = id[:slash]
	}
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}
