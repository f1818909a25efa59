package ioc

import (
	"time"

	"github.com/ego-component/egorm"
	"github.com/olegtuta/refactoring/internal/repository"
	"github.com/olegtuta/refactoring/internal/repository/cache/local"
	"github.com/olegtuta/refactoring/internal/repository/dao"
	ca "github.com/patrickmn/go-cache"
)

const (
	defaultCacheExpiration = 10 * time.Minute
	cacheCleanupInterval   = 20 * time.Minute
)

func InitLocalCache() *ca.Cache {
	return ca.New(defaultCacheExpiration, cacheCleanupInterval)
}

func InitContractorRepository(db *egorm.Component) repository.ContractorRepository {
	return repository.NewContractorRepository(dao.NewContractorDAO(db))
}

func InitResellerRepository(db *egorm.Component, c *ca.Cache) repository.ResellerRepository {
	return repository.NewResellerRepository(dao.NewResellerDAO(db), local.NewLocalCache(c))
}
