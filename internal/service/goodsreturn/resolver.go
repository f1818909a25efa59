package goodsreturn

import (
	"context"
	"fmt"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/repository"
	"golang.org/x/sync/errgroup"
)

var _ ContractorResolver = (*contractorResolver)(nil)

type contractorResolver struct {
	repo repository.ContractorRepository
}

func (r *contractorResolver) ResolveSeller(ctx context.Context, id int64) (domain.Contractor, error) {
	return r.resolve(ctx, id, domain.ContractorRoleSeller)
}

func (r *contractorResolver) ResolveClient(ctx context.Context, id, resellerID int64) (domain.Contractor, error) {
	c, err := r.resolve(ctx, id, domain.ContractorRoleClient)
	if err != nil {
		return domain.Contractor{}, err
	}
	if !c.IsCustomer() || c.ResellerID != resellerID {
		return domain.Contractor{}, fmt.Errorf("%w: client %d does not belong to reseller %d",
			errs.ErrContractorNotFound, id, resellerID)
	}
	return c, nil
}

func (r *contractorResolver) ResolveEmployee(ctx context.Context, id int64) (domain.Contractor, error) {
	return r.resolve(ctx, id, domain.ContractorRoleEmployee)
}

func (r *contractorResolver) resolve(ctx context.Context, id int64, role domain.ContractorRole) (domain.Contractor, error) {
	c, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contractor{}, err
	}
	c.Role = role
	return c, nil
}

func NewContractorResolver(repo repository.ContractorRepository) ContractorResolver {
	return &contractorResolver{repo: repo}
}

// parties 一次退货事件涉及的全部合作方
type parties struct {
	seller  domain.Contractor
	client  domain.Contractor
	creator domain.Contractor
	expert  domain.Contractor
}

// resolveParties 并发查询，任意一个失败就取消其余查询
func resolveParties(ctx context.Context, resolver ContractorResolver, evt domain.ReturnEvent) (parties, error) {
	var res parties
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		res.seller, err = resolver.ResolveSeller(ctx, evt.ResellerID)
		return err
	})
	eg.Go(func() error {
		var err error
		res.client, err = resolver.ResolveClient(ctx, evt.ClientID, evt.ResellerID)
		return err
	})
	eg.Go(func() error {
		var err error
		res.creator, err = resolver.ResolveEmployee(ctx, evt.CreatorID)
		return err
	})
	eg.Go(func() error {
		var err error
		res.expert, err = resolver.ResolveEmployee(ctx, evt.ExpertID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return parties{}, err
	}
	return res, nil
}
