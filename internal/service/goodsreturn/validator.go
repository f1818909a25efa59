package goodsreturn

import (
	"fmt"

	"github.com/olegtuta/refactoring/internal/domain"
	"github.com/olegtuta/refactoring/internal/errs"
)

func validateEvent(evt domain.ReturnEvent) error {
	if evt.ResellerID == 0 || evt.NotificationType == 0 {
		return fmt.Errorf("%w: missing resellerId or notificationType", errs.ErrInvalidParameter)
	}
	return nil
}
