package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/database/mongoclient"
	"github.com/x-xyz/ipmarket/base/database/redisclient"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/metrics"
	pricefomatter "github.com/x-xyz/ipmarket/base/price_fomatter"
	bValidator "github.com/x-xyz/ipmarket/base/validator"
	"github.com/x-xyz/ipmarket/domain/keys"
	mmiddleware "github.com/x-xyz/ipmarket/middleware"
	"github.com/x-xyz/ipmarket/service/cache"
	"github.com/x-xyz/ipmarket/service/cache/provider/compound"
	"github.com/x-xyz/ipmarket/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/ipmarket/service/cache/provider/redis"
	"github.com/x-xyz/ipmarket/service/ledger"
	"github.com/x-xyz/ipmarket/service/query"
	"github.com/x-xyz/ipmarket/service/redis"
	auth_delivery "github.com/x-xyz/ipmarket/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/ipmarket/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/ipmarket/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/ipmarket/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/ipmarket/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/ipmarket/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/ipmarket/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/ipmarket/stores/listing/repository"
	listing_usecase "github.com/x-xyz/ipmarket/stores/listing/usecase"
	nft_delivery "github.com/x-xyz/ipmarket/stores/nft/delivery/http"
	nft_usecase "github.com/x-xyz/ipmarket/stores/nft/usecase"
)

func init() {
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
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  corsOrigins(),
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: viper.GetDuration("http.timeout"),
	}))
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnect(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
	if err := listing_repository.EnsureIndexes(context, q); err != nil {
		context.WithField("err", err).Panic("failed to ensure bid receipt indexes")
	}

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retries:        3,
		},
	)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache, viper.GetInt("cache.httpLocalSizeMB"))

	// init ledger client
	context.Info("init ledger client")
	ledgerClient := ledger.NewClient(&ledger.ClientCfg{
		HttpClient: http.Client{},
		BaseURL:    viper.GetString("ledger.baseURL"),
		Timeout:    viper.GetDuration("ledger.timeout"),
	})

	decimals := make(map[string]int32)
	for symbol := range viper.GetStringMap("currencies") {
		decimals[symbol] = viper.GetInt32(fmt.Sprintf("currencies.%s", symbol))
	}
	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{
		Decimals: decimals,
	})

	metadataCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("cache.nftMetadataTtl"),
		Pfx: keys.PfxNftMetadata,
		Cache: compound.NewCompound(
			primitive.NewPrimitive(keys.PfxNftMetadata, viper.GetInt("cache.nftMetadataLocalSizeMB")),
			redisProvider.NewRedis(redisCache),
		),
	})

	// repositories
	hcRepo := hc_repo.New(q, redisCache)
	bidReceiptRepo := listing_repository.NewBidReceiptRepo(q)

	// usecases
	hc := hc_usecase.New(hcRepo, ledgerClient)
	auth := auth_usecase.New(viper.GetString("jwt.secret"), viper.GetDuration("jwt.ttl"))
	nft := nft_usecase.New(ledgerClient, metadataCache)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Ledger:         ledgerClient,
		NftUC:          nft,
		BidReceiptRepo: bidReceiptRepo,
		RedisCache:     redisCache,
		PriceFormatter: priceFormatter,
		Validate:       bValidator.New(),
		BidGuardTTL:    viper.GetDuration("listing.bidGuardTtl"),
		RecentBids:     viper.GetInt64("listing.recentBids"),
	})

	auth_middleware := auth_middleware.New(auth, viper.GetStringSlice("admin.principals"))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth_middleware)
	listing_delivery.New(e, listing, auth_middleware)
	nft_delivery.New(e, nft, mmiddleware.CacheHttp(viper.GetDuration("cache.nftMetadataHttpTtl")))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("http.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func corsOrigins() []string {
	if origins := viper.GetStringSlice("http.corsOrigins"); len(origins) > 0 {
		return origins
	}
	return []string{"*"}
}
