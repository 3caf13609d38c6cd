package config

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

var ErrProfileNotFound = errors.New("profile not found")

// Registry resolves the estimation defaults of a tenant. Keys of the DEFAULT
// section apply to every tenant unless the tenant section overrides them.
//
//	[DEFAULT]
//	currency = USD
//
//	[acme]
//	horizon_days = 60
//	inflation_rate = 0.04
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, tenant string) (domain.TenantProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// NewStaticRegistry serves only the DEFAULT profile built from defaults, for
// deployments without a profiles file.
func NewStaticRegistry(defaults domain.TenantProfile) Registry {
	cfg := ini.Empty()
	section := cfg.Section(ini.DefaultSection)
	section.Key("currency").SetValue(defaults.Currency)
	section.Key("horizon_days").SetValue(fmt.Sprint(defaults.HorizonDays))
	section.Key("inflation_rate").SetValue(fmt.Sprint(defaults.InflationRate))
	section.Key("demand_factor").SetValue(fmt.Sprint(defaults.DemandFactor))
	return &staticRegistry{cfgRegistry{cfg: cfg}}
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, tenant string) (domain.TenantProfile, error) {
	section, err := cr.cfg.GetSection(tenant)
	if err != nil {
		return domain.TenantProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, tenant)
	}
	return readProfile(tenant, section, cr.cfg.Section(ini.DefaultSection)), nil
}

type staticRegistry struct {
	cfgRegistry
}

// GetProfile answers every tenant with the defaults.
func (sr *staticRegistry) GetProfile(_ context.Context, tenant string) (domain.TenantProfile, error) {
	defaults := sr.cfg.Section(ini.DefaultSection)
	return readProfile(tenant, defaults, defaults), nil
}

func readProfile(name string, section, defaults *ini.Section) domain.TenantProfile {
	key := func(k string) *ini.Key {
		if section.HasKey(k) {
			return section.Key(k)
		}
		return defaults.Key(k)
	}
	return domain.TenantProfile{
		Name:          name,
		Currency:      key("currency").String(),
		HorizonDays:   key("horizon_days").MustInt(0),
		InflationRate: key("inflation_rate").MustFloat64(0),
		DemandFactor:  key("demand_factor").MustFloat64(0),
	}
}
