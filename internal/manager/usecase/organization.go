package usecase

import (
	"context"

	"github-manager/internal/auth"
	"github-manager/internal/manager"
	"github-manager/internal/model"
)

// GetOrganization fetches an organization profile from GitHub.
func (uc *implUseCase) GetOrganization(ctx context.Context, sc model.Scope, org string) (manager.OrganizationOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "organization"); err != nil {
		return manager.OrganizationOutput{}, err
	}

	profile, err := uc.gh.GetOrganization(ctx, org)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOrganization: %v", err)
		return manager.OrganizationOutput{}, err
	}

	return manager.OrganizationOutput{Organization: mapOrganization(profile)}, nil
}
