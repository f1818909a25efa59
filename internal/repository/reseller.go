package repository

import (
	"context"
	"errors"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/repository/cache"
	"github.com/olegtuta/refactoring/internal/repository/dao"
)

type resellerRepository struct {
	dao        dao.ResellerDAO
	localCache cache.ResellerSettingCache
	logger     *elog.Component
}

func (r *resellerRepository) GetSetting(ctx context.Context, resellerID int64) (domain.ResellerSetting, error) {
	setting, err := r.localCache.Get(ctx, resellerID)
	if err == nil {
		return setting, nil
	}

	entity, err := r.dao.GetSetting(ctx, resellerID)
	switch {
	case errors.Is(err, egorm.ErrRecordNotFound):
		// 没配置的经销商按空配置处理，发件人为空时不会发邮件
		setting = domain.ResellerSetting{ResellerID: resellerID}
	case err != nil:
		return domain.ResellerSetting{}, err
	default:
		setting = r.toDomain(entity)
	}

	if err1 := r.localCache.Set(ctx, setting); err1 != nil {
		r.logger.Warn("写入经销商配置本地缓存失败",
			elog.FieldErr(err1),
			elog.Int64("resellerID", resellerID))
	}
	return setting, nil
}

func (r *resellerRepository) FindEmployeeEmails(ctx context.Context, resellerID int64, permit string) ([]string, error) {
	return r.dao.FindEmployeeEmails(ctx, resellerID, permit)
}

func (r *resellerRepository) toDomain(s dao.ResellerSetting) domain.ResellerSetting {
	return domain.ResellerSetting{
		ResellerID:    s.ResellerID,
		Locale:        s.Locale,
		EmailFrom:     s.EmailFrom,
		SMSSignName:   s.SMSSignName,
		SMSTemplateID: s.SMSTemplateID,
	}
}

func NewResellerRepository(d dao.ResellerDAO, localCache cache.ResellerSettingCache) ResellerRepository {
	return &resellerRepository{
		dao:        d,
		localCache: localCache,
		logger:     elog.DefaultLogger,
	}
}
