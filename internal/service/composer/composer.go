package composer

import (
	"context"

	"github.com/sandevgo/eventdash/internal/core"
	"github.com/sandevgo/eventdash/pkg/log"
)

type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type ResourceGetter interface {
	Get(ctx context.Context, endpoint, token string) (core.Resource, error)
}

// Composer chains the Task -> Workspace -> RFXDocument reads into one
// EventAggregate. Every run acquires a fresh token; the chain is
// strictly sequential because each step needs the previous step's
// output, and any failure aborts the whole run.
type Composer struct {
	tokens    TokenSource
	resources ResourceGetter
}

func New(tokens TokenSource, resources ResourceGetter) *Composer {
	return &Composer{
		tokens:    tokens,
		resources: resources,
	}
}

func (c *Composer) Compose(ctx context.Context, taskID string) (core.EventAggregate, error) {
	logger := log.FromCtx(ctx)
	logger.Debug().Str("taskId", taskID).Msg("composing event")

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return core.EventAggregate{}, err
	}

	task, err := c.resources.Get(ctx, "Task/"+taskID, token)
	if err != nil {
		return core.EventAggregate{}, err
	}

	workspaceID := task.Str("workspaceId")
	if workspaceID == "" {
		return core.EventAggregate{}, &core.CompositionError{Reason: "workspaceId not found"}
	}

	workspace, err := c.resources.Get(ctx, "Workspace/"+workspaceID, token)
	if err != nil {
		return core.EventAggregate{}, err
	}

	docID := resolveDocumentID(workspace)
	if docID == "" {
		return core.EventAggregate{}, &core.CompositionError{Reason: "documentId not found"}
	}

	rfx, err := c.resources.Get(ctx, "RFXDocument/"+docID, token)
	if err != nil {
		return core.EventAggregate{}, err
	}

	logger.Debug().
		Str("workspaceId", workspaceID).
		Str("documentId", docID).
		Msg("event composed")

	return core.EventAggregate{
		Task:      task,
		Workspace: workspace,
		RFX:       rfx,
	}, nil
}

// resolveDocumentID locates the RFX document identifier: the direct
// rfxDocumentId/documentId fields win, otherwise the first documents[]
// entry with entityType "RFXDocument" is used.
func resolveDocumentID(workspace core.Resource) string {
	if id := workspace.Str("rfxDocumentId"); id != "" {
		return id
	}
	if id := workspace.Str("documentId"); id != "" {
		return id
	}

	docs, _ := workspace["documents"].([]any)
	for _, d := range docs {
		entry, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if entry["entityType"] == "RFXDocument" {
			if id, ok := entry["id"].(string); ok && id != "" {
				return id
			}
		}
	}
	return ""
}
