package catalog

import (
	"testing"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackages() []Package {
	return []Package{
		{Name: "Starter", MinDeposit: dec(50), MaxDeposit: decStr("999.99"), DailyRate: decStr("1")},
		{Name: "Silver", MinDeposit: dec(1000), MaxDeposit: decStr("4999.99"), DailyRate: decStr("1.5")},
		{Name: "Gold", MinDeposit: dec(5000), MaxDeposit: dec(20000), DailyRate: dec(2)},
	}
}

func TestNew(t *testing.T) {
	type tcase struct {
		name     string
		packages []Package
		wantErr  bool
	}

	cases := []tcase{
		{
			name:     "valid catalog",
			packages: validPackages(),
		}, {
			name:     "empty list",
			packages: nil,
			wantErr:  true,
		}, {
			name: "missing name",
			packages: []Package{
				{MinDeposit: dec(50), MaxDeposit: dec(100), DailyRate: dec(1)},
			},
			wantErr: true,
		}, {
			name: "inverted range",
			packages: []Package{
				{Name: "Broken", MinDeposit: dec(100), MaxDeposit: dec(50), DailyRate: dec(1)},
			},
			wantErr: true,
		}, {
			name: "overlapping ranges",
			packages: []Package{
				{Name: "A", MinDeposit: dec(50), MaxDeposit: dec(1000), DailyRate: dec(1)},
				{Name: "B", MinDeposit: dec(1000), MaxDeposit: dec(5000), DailyRate: dec(2)},
			},
			wantErr: true,
		}, {
			name: "rate drops for bigger deposit",
			packages: []Package{
				{Name: "A", MinDeposit: dec(50), MaxDeposit: dec(999), DailyRate: dec(2)},
				{Name: "B", MinDeposit: dec(1000), MaxDeposit: dec(5000), DailyRate: dec(1)},
			},
			wantErr: true,
		}, {
			name: "non-positive rate",
			packages: []Package{
				{Name: "A", MinDeposit: dec(50), MaxDeposit: dec(999), DailyRate: dec(0)},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.packages)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFindPackageFor(t *testing.T) {
	c, err := New(validPackages())
	require.NoError(t, err)

	type tcase struct {
		name     string
		amount   decimal.Decimal
		wantName string
		wantErr  error
	}

	cases := []tcase{
		{name: "lower bound", amount: dec(50), wantName: "Starter"},
		{name: "inside range", amount: dec(500), wantName: "Starter"},
		{name: "upper bound", amount: decStr("999.99"), wantName: "Starter"},
		{name: "next tier", amount: dec(1000), wantName: "Silver"},
		{name: "gap between tiers falls through to next", amount: decStr("999.995"), wantErr: domain.ErrNoMatchingPackage},
		{name: "above top max stays in top tier", amount: dec(100000), wantName: "Gold"},
		{name: "below minimum", amount: dec(49), wantErr: domain.ErrNoMatchingPackage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pkg, findErr := c.FindPackageFor(tc.amount)
			if tc.wantErr != nil {
				assert.ErrorIs(t, findErr, tc.wantErr)
				return
			}
			require.NoError(t, findErr)
			assert.Equal(t, tc.wantName, pkg.Name)
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	packages := c.Packages()
	require.Len(t, packages, 4)
	assert.Equal(t, "Starter", packages[0].Name)
	assert.Equal(t, "Diamond", packages[3].Name)

	// верхняя граница каталога открыта.
	pkg, err := c.FindPackageFor(dec(5_000_000_000))
	require.NoError(t, err)
	assert.Equal(t, "Diamond", pkg.Name)
}
