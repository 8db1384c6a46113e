package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	helper "github.com/c2001-33332835/onboard-navigation/pkg/http/router/routerhelper"
)

type navigationAPI struct {
	navigationService NavigationService
	log               *zap.Logger
}

func New(navigationService NavigationService, log *zap.Logger) *navigationAPI {
	return &navigationAPI{
		navigationService: navigationService,
		log:               log,
	}
}

func (api *navigationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/route", api.shortestPath)
	group.GET("/routeByCoord", api.shortestPathByCoord)
	group.GET("/fastestVehicle", api.fastestVehicle)
	group.GET("/vehicles", api.fleet)
	group.GET("/cities", api.cities)
}

func (api *navigationAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func (api *navigationAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()

	request.Vehicle, err = strconv.Atoi(query.Get("vehicle"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("vehicle is required and must be a valid fleet index"))
		return
	}
	request.FromID = query.Get("from_id")
	request.ToID = query.Get("to_id")

	if !api.validateRequest(w, r, request) {
		return
	}

	t, hours, err := api.navigationService.ShortestPath(request.Vehicle, request.FromID, request.ToID)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newRouteResponse(t, hours)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) shortestPathByCoord(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestPathByCoordRequest
		err     error
	)

	query := r.URL.Query()

	request.Vehicle, err = strconv.Atoi(query.Get("vehicle"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("vehicle is required and must be a valid fleet index"))
		return
	}
	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}
	request.DestinationLat, err = strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lat is required and must be a valid float"))
		return
	}
	request.DestinationLon, err = strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lon is required and must be a valid float"))
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	t, hours, err := api.navigationService.ShortestPathByCoord(request.Vehicle,
		request.OriginLat, request.OriginLon, request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newRouteResponse(t, hours)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) fastestVehicle(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request fastestVehicleRequest

	rawIDs := r.URL.Query().Get("city_ids")
	if rawIDs != "" {
		request.CityIDs = strings.Split(rawIDs, ",")
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	vehicleName, hours, t, err := api.navigationService.FastestVehicle(request.CityIDs)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": newFastestVehicleResponse(vehicleName, hours, t)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) fleet(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": fleetResponse{Vehicles: api.navigationService.Fleet()}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) cities(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	country := query.Get("country")
	if country == "" {
		api.BadRequestResponse(w, r, errors.New("country is required"))
		return
	}
	var capitalTypes []string
	if raw := query.Get("capital_types"); raw != "" {
		capitalTypes = strings.Split(raw, ",")
	}

	cities, err := api.navigationService.CitiesOf(country, capitalTypes)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newCityResponses(cities)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
