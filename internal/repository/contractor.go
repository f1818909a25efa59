package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ego-component/egorm"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
	"github.com/olegtuta/refactoring/internal/repository/dao"
)

type contractorRepository struct {
	dao dao.ContractorDAO
}

func (r *contractorRepository) FindByID(ctx context.Context, id int64) (domain.Contractor, error) {
	entity, err := r.dao.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, egorm.ErrRecordNotFound) {
			return domain.Contractor{}, fmt.Errorf("%w: id = %d", errs.ErrContractorNotFound, id)
		}
		return domain.Contractor{}, err
	}
	return r.toDomain(entity), nil
}

func (r *contractorRepository) toDomain(c dao.Contractor) domain.Contractor {
	return domain.Contractor{
		ID:         c.ID,
		Type:       domain.ContractorType(c.Type),
		Role:       domain.ContractorRole(c.Role),
		Name:       c.Name,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Mobile:     c.Mobile,
		ResellerID: c.ResellerID,
	}
}

func NewContractorRepository(d dao.ContractorDAO) ContractorRepository {
	return &contractorRepository{dao: d}
}
