package shop

import (
	"io"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
)

type CheckoutService struct {
	shipping *ShippingService
	nower    mytime.Nower
	uuider   myuuid.UUIDer
	logger   mylog.Logger
	out      io.Writer
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewCheckoutService(shipping *ShippingService, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, out io.Writer) *CheckoutService {
	return &CheckoutService{
		shipping: shipping,
		nower:    nower,
		uuider:   uuider,
		logger:   logger,
		out:      out,
	}
}
