package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/olegtuta/refactoring/internal/repository"
	"github.com/olegtuta/refactoring/internal/service/channel"
	"github.com/olegtuta/refactoring/internal/service/goodsreturn"
	"github.com/olegtuta/refactoring/internal/service/i18n"
)

func InitGoodsReturnService(
	contractors repository.ContractorRepository,
	resellers repository.ResellerRepository,
	renderer i18n.Renderer,
	providers Providers,
) goodsreturn.Service {
	return goodsreturn.NewService(
		goodsreturn.NewContractorResolver(contractors),
		resellers,
		renderer,
		channel.NewEmailChannel(providers.Email),
		channel.NewSMSChannel(providers.SMS, contractors, resellers),
		econf.GetDuration("goodsreturn.callTimeout"),
	)
}
