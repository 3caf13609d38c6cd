package domain

import "fmt"

// TenantProfile carries the estimation defaults of a tenant.
type TenantProfile struct {
	Name          string
	Currency      string
	HorizonDays   int
	InflationRate float64
	DemandFactor  float64
}

func (p TenantProfile) String() string {
	return fmt.Sprintf("tenant:%s", p.Name)
}

// Apply fills the zero fields of opts with the profile defaults.
func (p TenantProfile) Apply(opts Options) Options {
	if opts.Currency == "" {
		opts.Currency = p.Currency
	}
	if opts.Horizon == 0 {
		opts.Horizon = p.HorizonDays
	}
	if opts.InflationRate == 0 {
		opts.InflationRate = p.InflationRate
	}
	if opts.DemandFactor == 0 {
		opts.DemandFactor = p.DemandFactor
	}
	return opts
}
