package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	pricefomatter "github.com/x-xyz/ipmarket/base/price_fomatter"
	"github.com/x-xyz/ipmarket/service/ledger"
	listing_usecase "github.com/x-xyz/ipmarket/stores/listing/usecase"
)

func setup() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}
}

func main() {
	setup()
	defer log.Sync()

	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	ledgerClient := ledger.NewClient(&ledger.ClientCfg{
		HttpClient: http.Client{},
		BaseURL:    viper.GetString("ledger.baseURL"),
		Timeout:    viper.GetDuration("ledger.timeout"),
	})

	// sweeping only talks to the ledger
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Ledger:         ledgerClient,
		PriceFormatter: pricefomatter.NewPriceFormatter(nil),
	})

	s := newSweeper(listing)

	done := make(chan struct{})
	go func() {
		defer close(done)
		context.WithField("interval", s.interval).Info("sweeper started")
		s.run(context)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
	<-done
	log.Log().Info("sweeper stopped")
}
