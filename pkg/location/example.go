package location

// NewExampleRegistry builds the small demo world used by the wizard's demo
// mode and the tests: Australia and Japan with their best-known cities.
func NewExampleRegistry() *Registry {
	r := NewRegistry()

	mustCountry(r, "Australia", "AUS")
	mustCity(r, "Melbourne", "-37.8136", "144.9631", "Australia", "admin", "1036533631")
	mustCity(r, "Canberra", "-35.2931", "149.1269", "Australia", "primary", "1036142029")
	mustCity(r, "Sydney", "-33.865", "151.2094", "Australia", "admin", "1036074917")

	mustCountry(r, "Japan", "JPN")
	mustCity(r, "Tokyo", "35.6839", "139.7744", "Japan", "primary", "1392685764")

	return r
}

func mustCountry(r *Registry, name, iso3 string) *Country {
	country, err := r.RegisterCountry(name, iso3)
	if err != nil {
		panic(err)
	}
	return country
}

func mustCity(r *Registry, name, lat, lon, country, capitalType, id string) *City {
	city, err := r.RegisterCity(name, lat, lon, country, capitalType, id)
	if err != nil {
		panic(err)
	}
	return city
}
