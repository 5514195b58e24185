package stash

import (
	"context"
	"fmt"
)

const findSceneQuery = `query FindScene($id: ID!) {
  findScene(id: $id) {
    id
    title
    tags { id name }
  }
}`

const findScenesQuery = `query FindScenes($filter: FindFilterType) {
  findScenes(filter: $filter) {
    count
    scenes {
      id
      title
      files { basename }
      paths { screenshot preview }
      tags { id name }
    }
  }
}`

type tagPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type scenePayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Files []struct {
		Basename string `json:"basename"`
	} `json:"files"`
	Paths struct {
		Screenshot string `json:"screenshot"`
		Preview    string `json:"preview"`
	} `json:"paths"`
	Tags []tagPayload `json:"tags"`
}

func (p scenePayload) toScene() Scene {
	scene := Scene{
		ID:             p.ID,
		Title:          p.Title,
		ScreenshotPath: p.Paths.Screenshot,
		PreviewPath:    p.Paths.Preview,
	}
	if len(p.Files) > 0 {
		scene.FallbackName = p.Files[0].Basename
	}
	scene.Tags = make([]Tag, 0, len(p.Tags))
	for _, tag := range p.Tags {
		scene.Tags = append(scene.Tags, Tag{ID: tag.ID, Name: tag.Name})
	}
	return scene
}

// FetchScene returns the scene with the given id, or ErrNotFound when the
// server reports no such scene.
func (c *Client) FetchScene(ctx context.Context, id string) (Scene, error) {
	var payload struct {
		FindScene *scenePayload `json:"findScene"`
	}
	vars := map[string]interface{}{"id": id}
	if err := c.query(ctx, findSceneQuery, vars, &payload); err != nil {
		return Scene{}, fmt.Errorf("fetch scene %s: %w", id, err)
	}
	if payload.FindScene == nil {
		return Scene{}, fmt.Errorf("fetch scene %s: %w", id, ErrNotFound)
	}
	return payload.FindScene.toScene(), nil
}

// FetchAllScenes returns the entire catalog. The filter requests the
// unpaginated set (per_page -1) because selection needs the full candidate
// pool.
func (c *Client) FetchAllScenes(ctx context.Context) ([]Scene, error) {
	var payload struct {
		FindScenes struct {
			Count  int            `json:"count"`
			Scenes []scenePayload `json:"scenes"`
		} `json:"findScenes"`
	}
	vars := map[string]interface{}{
		"filter": map[string]interface{}{"per_page": -1},
	}
	if err := c.query(ctx, findScenesQuery, vars, &payload); err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	scenes := make([]Scene, 0, len(payload.FindScenes.Scenes))
	for _, entry := range payload.FindScenes.Scenes {
		scenes = append(scenes, entry.toScene())
	}
	return scenes, nil
}
