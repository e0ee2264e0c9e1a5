package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
)

func (s *webService) listCatalog(c context.Context) ([]ProductResponse, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all products")

	resp := []ProductResponse{}
	err := s.catalog.RunInTransaction(c, func(c context.Context) error {
		products, err := s.catalog.List(c)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		for _, p := range products {
			resp = append(resp, newProductResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *webService) customerSnapshot(c context.Context) (CustomerResponse, error) {
	var resp CustomerResponse
	err := s.catalog.RunInTransaction(c, func(c context.Context) error {
		resp = CustomerResponse{
			Name:    s.customer.Name,
			Balance: s.customer.Balance.StringFixed(2),
		}
		return nil
	})
	if err != nil {
		return CustomerResponse{}, err
	}
	return resp, nil
}

// order fills a fresh cart and checks it out. The catalog transaction makes this the
// only writer of products and customer until it returns.
func (s *webService) order(c context.Context, req OrderRequest) (Receipt, error) {
	s.logger.Log(c, s.customer.Name, mylog.SeverityInfo, "Place order with %d lines", len(req.Lines))

	var receipt Receipt
	err := s.catalog.RunInTransaction(c, func(c context.Context) error {
		cart := NewCart(s.nower)
		for _, line := range req.Lines {
			product, found, err := s.catalog.Get(c, line.Product)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
			if !found {
				return myerrors.NewNotFoundError(fmt.Errorf("product %s not found", line.Product))
			}

			err = cart.Add(product, line.Quantity)
			if err != nil {
				return toHTTPError(err)
			}
		}

		var err error
		receipt, err = s.checkout.Checkout(c, s.customer, cart)
		if err != nil {
			return toHTTPError(err)
		}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}

	return receipt, nil
}

func toHTTPError(err error) error {
	var (
		cartEmpty           *CartEmptyError
		invalidQuantity     *InvalidQuantityError
		insufficientBalance *InsufficientBalanceError
		expiredProduct      *ExpiredProductError
		outOfStock          *OutOfStockError
	)

	switch {
	case errors.As(err, &cartEmpty), errors.As(err, &invalidQuantity):
		return myerrors.NewInvalidInputError(err)
	case errors.As(err, &insufficientBalance):
		return myerrors.NewPaymentRequiredError(err)
	case errors.As(err, &outOfStock):
		return myerrors.NewConflictError(err)
	case errors.As(err, &expiredProduct):
		return myerrors.NewUnprocessableError(err)
	default:
		return myerrors.NewInternalError(err)
	}
}
