package internal

import (
	"testing"

	"github.com/kcmvp/archunit"
)

func TestArchitecture(t *testing.T) {
	domain := archunit.Packages("domain", []string{".../internal/domain/..."})
	ports := archunit.Packages("ports", []string{".../internal/ports"})
	adapters := archunit.Packages("adapters", []string{".../internal/adapters/..."})
	inputs := archunit.Packages("inputs", []string{".../internal/adapters/input/..."})
	outputs := archunit.Packages("outputs", []string{".../internal/adapters/output/..."})

	// Rule 1: Domain should not depend on adapters
	if err := domain.ShouldNotReferLayers(adapters); err != nil {
		t.Errorf("Architecture violation: Domain depends on Adapters: %v", err)
	}

	// Rule 2: Ports stay free of adapters
	if err := ports.ShouldNotReferLayers(adapters); err != nil {
		t.Errorf("Architecture violation: Ports depend on Adapters: %v", err)
	}

	// Rule 3: Driving adapters only reach driven ones through the domain
	if err := inputs.ShouldNotReferLayers(outputs); err != nil {
		t.Errorf("Architecture violation: input adapters depend on output adapters: %v", err)
	}
}

func TestDomainPackages(t *testing.T) {
	for _, pkg := range []string{"catalog", "locale", "translator", "service", "mission"} {
		layer := archunit.Packages(pkg, []string{".../internal/domain/" + pkg})
		if len(layer.Packages()) == 0 {
			t.Errorf("No %s package found in domain", pkg)
		}
	}
}
