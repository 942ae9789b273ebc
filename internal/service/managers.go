package service

import (
	"context"
	"fmt"

	"contractapi/internal/repository"
)

// resolveManagerNames looks manager ids up one by one. A failed lookup keeps the raw
// id in place of the name and is reported as a failed outcome.
func resolveManagerNames(ctx context.Context, users repository.UserRepository, fx sideEffects, operation string, ids []string) ([]string, []Outcome) {
	names := make([]string, 0, len(ids))
	var outcomes []Outcome
	for _, id := range ids {
		u, err := users.FindByID(ctx, id)
		if err != nil || u.FullName == "" {
			if err == nil {
				err = fmt.Errorf("user %s has no name", id)
			}
			outcomes = append(outcomes, fx.failed(operation, "resolve_manager", fmt.Errorf("manager %s: %w", id, err)))
			names = append(names, id)
			continue
		}
		names = append(names, u.FullName)
	}
	return names, outcomes
}
