// Package catalog хранит статичную таблицу инвестиционных пакетов: диапазон депозита
// и дневную ставку. Загружается один раз на старте, в рантайме только читается.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/shopspring/decimal"
)

type Package struct {
	Name       string          `json:"name"`
	MinDeposit decimal.Decimal `json:"minDeposit"`
	MaxDeposit decimal.Decimal `json:"maxDeposit"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
}

type Catalog struct {
	packages []Package
}

// New создает каталог из списка пакетов. Каталог валидируется: пустой список,
// перепутанные границы, пересекающиеся диапазоны и падающая с ростом депозита ставка
// считаются ошибкой конфигурации, а не данными которые нужно молча чинить.
func New(packages []Package) (*Catalog, error) {
	if len(packages) == 0 {
		return nil, fmt.Errorf("catalog: %w: empty package list", domain.ErrNoMatchingPackage)
	}

	sorted := make([]Package, len(packages))
	copy(sorted, packages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinDeposit.LessThan(sorted[j].MinDeposit)
	})

	for i, p := range sorted {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog: package #%d has no name", i)
		}
		if p.MinDeposit.IsNegative() || p.MaxDeposit.LessThan(p.MinDeposit) {
			return nil, fmt.Errorf("catalog: package %s has invalid deposit range [%s, %s]",
				p.Name, p.MinDeposit, p.MaxDeposit)
		}
		if !p.DailyRate.IsPositive() {
			return nil, fmt.Errorf("catalog: package %s has non-positive daily rate %s", p.Name, p.DailyRate)
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if !p.MinDeposit.GreaterThan(prev.MaxDeposit) {
			return nil, fmt.Errorf("catalog: packages %s and %s have overlapping ranges", prev.Name, p.Name)
		}
		if p.DailyRate.LessThan(prev.DailyRate) {
			return nil, fmt.Errorf("catalog: package %s has lower rate than cheaper package %s", p.Name, prev.Name)
		}
	}

	return &Catalog{packages: sorted}, nil
}

// LoadFile читает каталог из JSON файла.
func LoadFile(path string) (*Catalog, error) {
	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("catalog: read %s: %s", path, readErr.Error())
	}
	var packages []Package
	if jsonErr := json.Unmarshal(raw, &packages); jsonErr != nil {
		return nil, fmt.Errorf("catalog: parse %s: %s", path, jsonErr.Error())
	}
	return New(packages)
}

// Default возвращает встроенный каталог на случай когда файл пакетов не задан.
func Default() *Catalog {
	c, err := New([]Package{
		{Name: "Starter", MinDeposit: dec(50), MaxDeposit: decStr("999.99"), DailyRate: decStr("1")},
		{Name: "Silver", MinDeposit: dec(1000), MaxDeposit: decStr("4999.99"), DailyRate: decStr("1.5")},
		{Name: "Gold", MinDeposit: dec(5000), MaxDeposit: decStr("19999.99"), DailyRate: decStr("2")},
		{Name: "Diamond", MinDeposit: dec(20000), MaxDeposit: dec(1_000_000_000), DailyRate: decStr("2.5")},
	})
	if err != nil {
		// встроенные данные, ошибка тут - баг.
		panic(err)
	}
	return c
}

// FindPackageFor возвращает пакет в чей диапазон [minDeposit, maxDeposit] попадает amount.
// Сумма выше максимума самого дорогого пакета попадает в него же (верхняя граница каталога
// открыта). Сумма ниже минимального порога возвращает domain.ErrNoMatchingPackage.
func (c *Catalog) FindPackageFor(amount decimal.Decimal) (*Package, error) {
	for i := range c.packages {
		p := c.packages[i]
		if amount.GreaterThanOrEqual(p.MinDeposit) && amount.LessThanOrEqual(p.MaxDeposit) {
			return &p, nil
		}
	}

	top := c.packages[len(c.packages)-1]
	if amount.GreaterThan(top.MaxDeposit) {
		return &top, nil
	}

	return nil, fmt.Errorf("amount %s: %w", amount, domain.ErrNoMatchingPackage)
}

// Packages возвращает копию списка пакетов отсортированную по возрастанию minDeposit.
func (c *Catalog) Packages() []Package {
	out := make([]Package, len(c.packages))
	copy(out, c.packages)
	return out
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decStr(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
