package main

import (
	"context"
	"flag"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg/csvparser"
	"github.com/c2001-33332835/onboard-navigation/pkg/engine/routing"
	"github.com/c2001-33332835/onboard-navigation/pkg/http"
	"github.com/c2001-33332835/onboard-navigation/pkg/http/usecases"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/logger"
	"github.com/c2001-33332835/onboard-navigation/pkg/spatialindex"
	"github.com/c2001-33332835/onboard-navigation/pkg/util"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

var (
	searchRadiusKM = flag.Float64("search_radius_km", 200, "snap radius for coordinate-based route queries, in km")
	useRateLimit   = flag.Bool("rate_limit", false, "enable per-client rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	registry := location.NewRegistry()
	if err := csvparser.LoadFile(viper.GetString("DATASET_PATH"), registry, logger); err != nil {
		panic(err)
	}

	var fleetConfig []vehicle.Config
	if err := viper.UnmarshalKey("vehicles", &fleetConfig); err != nil {
		panic(err)
	}
	fleet, err := vehicle.FleetFromConfig(fleetConfig)
	if err != nil {
		panic(err)
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(registry, logger)

	routingEngine := routing.NewEngine(registry, logger)

	api := http.NewServer(logger)

	navigationService := usecases.NewNavigationService(logger, registry, routingEngine,
		rtree, fleet, *searchRadiusKM)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx, logger, *useRateLimit, navigationService)

	signal := http.GracefulShutdown()

	logger.Info("Onboard Navigation Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
