// Command navigator is the interactive onboard navigation wizard: it loads a
// world of countries and cities, keeps a vehicle fleet, and plans trips either
// automatically (shortest path) or manually.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/c2001-33332835/onboard-navigation/pkg"
	"github.com/c2001-33332835/onboard-navigation/pkg/csvparser"
	"github.com/c2001-33332835/onboard-navigation/pkg/engine/routing"
	"github.com/c2001-33332835/onboard-navigation/pkg/location"
	"github.com/c2001-33332835/onboard-navigation/pkg/logger"
	"github.com/c2001-33332835/onboard-navigation/pkg/trip"
	"github.com/c2001-33332835/onboard-navigation/pkg/vehicle"
)

var datasetPath = flag.String("dataset", "", "path to a worldcities CSV; empty loads the built-in demo world")

type wizard struct {
	in       *bufio.Reader
	registry *location.Registry
	engine   *routing.Engine
	fleet    []vehicle.Vehicle
	trips    []*trip.Trip
}

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	var registry *location.Registry
	if *datasetPath == "" {
		registry = location.NewExampleRegistry()
	} else {
		registry = location.NewRegistry()
		if err := csvparser.LoadFile(*datasetPath, registry, log); err != nil {
			fmt.Fprintf(os.Stderr, "loading dataset: %v\n", err)
			os.Exit(1)
		}
	}

	w := &wizard{
		in:       bufio.NewReader(os.Stdin),
		registry: registry,
		engine:   routing.NewEngine(registry, zap.NewNop()),
		fleet:    vehicle.NewExampleFleet(),
	}
	w.run()
}

func (w *wizard) run() {
	for {
		fmt.Println()
		fmt.Println("=== Onboard Navigation ===")
		fmt.Println(" 1) List countries")
		fmt.Println(" 2) List cities of a country")
		fmt.Println(" 3) List vehicles")
		fmt.Println(" 4) Add a vehicle")
		fmt.Println(" 5) Plan a trip automatically (shortest path)")
		fmt.Println(" 6) Plan a trip manually")
		fmt.Println(" 7) Find the fastest vehicle for a trip")
		fmt.Println(" 0) Exit")

		switch w.readInt("Select an option: ") {
		case 1:
			w.listCountries()
		case 2:
			w.listCities()
		case 3:
			w.listVehicles()
		case 4:
			w.addVehicle()
		case 5:
			w.planAutomaticTrip()
		case 6:
			w.planManualTrip()
		case 7:
			w.fastestVehicle()
		case 0:
			fmt.Println("Goodbye.")
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (w *wizard) readLine(prompt string) string {
	fmt.Print(prompt)
	line, err := w.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (w *wizard) readInt(prompt string) int {
	for {
		raw := w.readLine(prompt)
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("%q is not a number, try again.\n", raw)
			continue
		}
		return n
	}
}

func (w *wizard) readPositiveInt(prompt string) int {
	for {
		n := w.readInt(prompt)
		if n > 0 {
			return n
		}
		fmt.Println("The value must be positive, try again.")
	}
}

func (w *wizard) listCountries() {
	for _, country := range w.registry.Countries() {
		fmt.Printf("%s (%s): %d cities\n", country.Name(), country.ISO3(), len(country.GetCities()))
	}
}

func (w *wizard) listCities() {
	name := w.readLine("Country name: ")
	country, ok := w.registry.GetCountry(name)
	if !ok {
		fmt.Printf("Country %q is not registered.\n", name)
		return
	}
	for _, city := range country.GetCities() {
		capital := city.CapitalType().String()
		if capital == "" {
			capital = "unspecified"
		}
		fmt.Printf("%s [%s] id=%s\n", city, capital, city.ID())
	}
}

func (w *wizard) listVehicles() {
	for i, v := range w.fleet {
		fmt.Printf("%d) %s\n", i+1, v)
	}
}

func (w *wizard) addVehicle() {
	fmt.Println(" 1) DirectVehicle: one speed, any two cities")
	fmt.Println(" 2) CountryLinkedVehicle: in-country speed, plus primary capitals across borders")
	fmt.Println(" 3) RangeLimitedVehicle: fixed time below a range limit")

	var (
		v   vehicle.Vehicle
		err error
	)
	switch w.readInt("Vehicle type: ") {
	case 1:
		v, err = vehicle.NewDirectVehicle(w.readPositiveInt("Speed (km/h): "))
	case 2:
		v, err = vehicle.NewCountryLinkedVehicle(
			w.readPositiveInt("In-country speed (km/h): "),
			w.readPositiveInt("Cross-country speed (km/h): "))
	case 3:
		v, err = vehicle.NewRangeLimitedVehicle(
			w.readPositiveInt("Travel time (h): "),
			w.readPositiveInt("Maximum distance (km): "))
	default:
		fmt.Println("Unknown vehicle type.")
		return
	}
	if err != nil {
		fmt.Printf("Could not create vehicle: %v\n", err)
		return
	}
	w.fleet = append(w.fleet, v)
	fmt.Printf("Added %s\n", v)
}

func (w *wizard) selectCity(role string) (*location.City, bool) {
	countryName := w.readLine(fmt.Sprintf("%s country: ", role))
	country, ok := w.registry.GetCountry(countryName)
	if !ok {
		fmt.Printf("Country %q is not registered.\n", countryName)
		return nil, false
	}
	cityName := w.readLine(fmt.Sprintf("%s city: ", role))
	city, ok := country.GetCity(cityName)
	if !ok {
		fmt.Printf("No city %q in %s.\n", cityName, country)
		return nil, false
	}
	return city, true
}

func (w *wizard) selectVehicle() (vehicle.Vehicle, bool) {
	if len(w.fleet) == 0 {
		fmt.Println("The fleet is empty; add a vehicle first.")
		return nil, false
	}
	w.listVehicles()
	index := w.readInt("Vehicle number: ")
	if index < 1 || index > len(w.fleet) {
		fmt.Println("No such vehicle.")
		return nil, false
	}
	return w.fleet[index-1], true
}

func (w *wizard) planAutomaticTrip() {
	from, ok := w.selectCity("Departure")
	if !ok {
		return
	}
	to, ok := w.selectCity("Arrival")
	if !ok {
		return
	}
	v, ok := w.selectVehicle()
	if !ok {
		return
	}

	t, found := w.engine.FindShortestPath(v, from, to)
	if !found {
		fmt.Printf("There is no route from %s to %s with %s.\n", from, to, v)
		return
	}
	w.trips = append(w.trips, t)
	fmt.Printf("Trip: %s\n", t)
	fmt.Printf("Duration with %s: %.0f hours\n", v, t.TotalTravelTime(v))
}

func (w *wizard) planManualTrip() {
	from, ok := w.selectCity("Departure")
	if !ok {
		return
	}
	t := trip.New(from)
	for {
		if w.readLine("Add another city? (y/n): ") != "y" {
			break
		}
		city, ok := w.selectCity("Next")
		if !ok {
			continue
		}
		t.AddNextCity(city)
	}
	if len(t.Cities()) < 2 {
		fmt.Println("A trip needs at least two cities; discarded.")
		return
	}
	w.trips = append(w.trips, t)
	fmt.Printf("Trip: %s\n", t)
}

func (w *wizard) fastestVehicle() {
	if len(w.trips) == 0 {
		fmt.Println("No trips planned yet.")
		return
	}
	for i, t := range w.trips {
		fmt.Printf("%d) %s\n", i+1, t)
	}
	index := w.readInt("Trip number: ")
	if index < 1 || index > len(w.trips) {
		fmt.Println("No such trip.")
		return
	}
	t := w.trips[index-1]

	fastest, hours := t.FindFastestVehicle(w.fleet)
	if fastest == nil || pkg.IsInf(hours) {
		fmt.Println("No vehicle in the fleet can complete this trip.")
		return
	}
	fmt.Printf("The trip %s takes %.0f hours with %s\n", t, hours, fastest)
}
