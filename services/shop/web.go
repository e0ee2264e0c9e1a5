package shop

import (
	"context"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
	"github.com/MarcGrol/shopcheckout/lib/myerrors"
	"github.com/MarcGrol/shopcheckout/lib/myhttp"
	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
)

type webService struct {
	catalog  mystore.Store[*Product]
	customer *Customer
	checkout *CheckoutService
	nower    mytime.Nower
	logger   mylog.Logger
	decoder  *formcodec.Decoder
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(catalog mystore.Store[*Product], customer *Customer, checkout *CheckoutService, nower mytime.Nower, logger mylog.Logger) *webService {
	return &webService{
		catalog:  catalog,
		customer: customer,
		checkout: checkout,
		nower:    nower,
		logger:   logger,
		decoder:  formcodec.NewDecoder(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/product", s.listProducts()).Methods("GET")
	router.HandleFunc("/customer", s.getCustomer()).Methods("GET")
	router.HandleFunc("/checkout", s.placeOrder()).Methods("POST")
}

func (s *webService) listProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		products, err := s.listCatalog(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) getCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		customer, err := s.customerSnapshot(c)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, customer)
	}
}

func (s *webService) placeOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
			return
		}

		req := OrderRequest{}
		err = s.decoder.Decode(&req, r.PostForm)
		if err != nil {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
			return
		}

		receipt, err := s.order(c, req)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, newReceiptResponse(receipt))
	}
}
