package services

import (
	"sort"
	"strings"
)

type SupplierFilterConfig struct {
	Query string `json:"query"`

	// Port matches against the normalized port rows when a supplier has
	// them, otherwise against the legacy semicolon-delimited port string.
	Port      string `json:"port,omitempty"`
	PortExact bool   `json:"port_exact,omitempty"`

	// Delivery-mode flags; only normalized port rows carry modes, so any
	// active flag excludes suppliers that still use the legacy string.
	Truck  bool `json:"truck,omitempty"`
	Barge  bool `json:"barge,omitempty"`
	ExPipe bool `json:"ex_pipe,omitempty"`

	FuelType       string `json:"fuel_type,omitempty"`
	Region         string `json:"region,omitempty"`
	Classification string `json:"classification,omitempty"`

	SortBy string `json:"sort_by,omitempty"`
}

func FilterSuppliers(summaries []*SupplierSummary, cfg SupplierFilterConfig) []*SupplierSummary {
	out := make([]*SupplierSummary, 0, len(summaries))
	for _, s := range summaries {
		if !supplierQueryPredicate(s, cfg.Query) {
			continue
		}
		if !supplierPortPredicate(s, cfg) {
			continue
		}
		if !supplierFuelTypePredicate(s, cfg.FuelType) {
			continue
		}
		if !supplierRegionPredicate(s, cfg.Region) {
			continue
		}
		if cfg.Classification != "" && !strings.EqualFold(strings.TrimSpace(cfg.Classification), strings.TrimSpace(s.Classification)) {
			continue
		}
		out = append(out, s)
	}

	cmp := SupplierComparatorFor(cfg.SortBy)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

func supplierQueryPredicate(s *SupplierSummary, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystacks := []string{
		s.Name, s.Email, s.Phone, s.Website, s.Ports, s.FuelTypes,
		s.Regions, s.Classification, s.Notes,
	}
	for _, c := range s.Contacts {
		haystacks = append(haystacks, c.Name, c.Email)
	}
	for _, p := range s.PortList {
		haystacks = append(haystacks, p.Name)
	}
	for _, h := range haystacks {
		if h != "" && strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

func supplierPortPredicate(s *SupplierSummary, cfg SupplierFilterConfig) bool {
	port := strings.ToLower(strings.TrimSpace(cfg.Port))
	modeFiltered := cfg.Truck || cfg.Barge || cfg.ExPipe
	if port == "" && !modeFiltered {
		return true
	}

	if len(s.PortList) > 0 {
		for _, p := range s.PortList {
			name := strings.ToLower(strings.TrimSpace(p.Name))
			if port != "" {
				if cfg.PortExact && name != port {
					continue
				}
				if !cfg.PortExact && !strings.Contains(name, port) {
					continue
				}
			}
			if cfg.Truck && !p.Truck {
				continue
			}
			if cfg.Barge && !p.Barge {
				continue
			}
			if cfg.ExPipe && !p.ExPipe {
				continue
			}
			return true
		}
		return false
	}

	// Legacy free-text list carries no delivery modes.
	if modeFiltered {
		return false
	}
	for _, entry := range strings.Split(s.Ports, ";") {
		name := strings.ToLower(strings.TrimSpace(entry))
		if name == "" {
			continue
		}
		if cfg.PortExact {
			if name == port {
				return true
			}
		} else if strings.Contains(name, port) {
			return true
		}
	}
	return false
}

func supplierFuelTypePredicate(s *SupplierSummary, fuelType string) bool {
	q := strings.ToLower(strings.TrimSpace(fuelType))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.FuelTypes), q)
}

func supplierRegionPredicate(s *SupplierSummary, region string) bool {
	q := strings.ToLower(strings.TrimSpace(region))
	if q == "" {
		return true
	}
	for _, entry := range strings.Split(s.Regions, ";") {
		if strings.ToLower(strings.TrimSpace(entry)) == q {
			return true
		}
	}
	return false
}
