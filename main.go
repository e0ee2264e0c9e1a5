package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
	"github.com/MarcGrol/shopcheckout/lib/mystore"
	"github.com/MarcGrol/shopcheckout/lib/mytime"
	"github.com/MarcGrol/shopcheckout/lib/myuuid"
	"github.com/MarcGrol/shopcheckout/services/shop"
)

func main() {
	c := context.Background()

	shippingConfig, err := shippingConfigFromEnv()
	if err != nil {
		log.Fatalf("Error reading shipping config: %s", err)
	}

	balance, err := decimalFromEnv("CUSTOMER_BALANCE", decimal.NewFromInt(1000))
	if err != nil {
		log.Fatalf("Error reading customer balance: %s", err)
	}
	customer := shop.NewCustomer(getenv("CUSTOMER_NAME", "Eva"), balance)

	catalog, cleanup, err := mystore.New[*shop.Product](c)
	if err != nil {
		log.Fatalf("Error creating catalog store: %s", err)
	}
	defer cleanup()

	nower := mytime.RealNower{}
	err = seedCatalog(c, catalog, nower.Now())
	if err != nil {
		log.Fatalf("Error seeding catalog: %s", err)
	}

	checkoutService := shop.NewCheckoutService(shop.NewShippingService(shippingConfig), nower, myuuid.RealUUIDer{}, mylog.New("checkout"), os.Stdout)

	router := mux.NewRouter()
	webService := shop.NewWebService(catalog, customer, checkoutService, nower, mylog.New("shop"))
	webService.RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func shippingConfigFromEnv() (shop.ShippingConfig, error) {
	config := shop.DefaultShippingConfig()

	var err error
	config.FlatFee, err = decimalFromEnv("SHIPPING_FLAT_FEE", config.FlatFee)
	if err != nil {
		return config, err
	}
	config.RatePerKg, err = decimalFromEnv("SHIPPING_RATE_PER_KG", config.RatePerKg)
	if err != nil {
		return config, err
	}

	return config, nil
}

func decimalFromEnv(name string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid value for %s: %s", name, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid value for %s: must not be negative", name)
	}
	return d, nil
}

func getenv(name string, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	return value
}

func seedCatalog(c context.Context, catalog mystore.Store[*shop.Product], now time.Time) error {
	products := []*shop.Product{
		shop.NewExpiringShippableProduct("Cheese", decimal.RequireFromString("12.50"), 20, now.AddDate(0, 0, 14), 0.4),
		shop.NewExpiringProduct("Biscuits", decimal.RequireFromString("2.25"), 50, now.AddDate(0, 3, 0)),
		shop.NewShippableProduct("TV", decimal.NewFromInt(400), 5, 8.5),
		shop.NewProduct("Scratch card", decimal.NewFromInt(5), 100),
	}
	for _, p := range products {
		err := catalog.Put(c, p.Name, p)
		if err != nil {
			return err
		}
	}
	return nil
}

func startWebServerBlocking(router *mux.Router) {
	port := getenv("PORT", "8080")

	log.Printf("Starting webserver on port %s (try http://localhost:%s/product)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
